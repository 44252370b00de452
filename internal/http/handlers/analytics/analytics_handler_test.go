package analytics_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/http/handlers/analytics"
	"devpulse/internal/http/handlers/mocks"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(h *analytics.AnalyticsHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/analytics/developer/{github_id}/efficiency-trend", h.DeveloperTrend)
	r.Get("/analytics/developer/{github_id}/flagged-commits-count", h.FlaggedCommitsByDeveloper)
	r.Get("/analytics/repository/{repo_id}/efficiency-trend", h.RepoTrend)
	r.Get("/analytics/repository/{repo_id}/flagged-commits-count", h.FlaggedCommitsByRepo)
	r.Get("/analytics/repository/{repo_id}/flagged-prs-count", h.FlaggedPRs)
	r.Get("/compare-efficiency", h.CompareEfficiency)
	return r
}

func TestAnalyticsHandler_DeveloperTrend_DefaultDays(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	expected := []api.TrendPoint{{Date: "2026-08-30", AvgEfficiency: 0.7}}
	mockService.On("TrendForDeveloper", mock.Anything, "octocat", 30).Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/developer/octocat/efficiency-trend", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.TrendPoint
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, expected, resp)
}

func TestAnalyticsHandler_DeveloperTrend_CustomDays(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	mockService.On("TrendForDeveloper", mock.Anything, "octocat", 7).Return([]api.TrendPoint{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/developer/octocat/efficiency-trend?days=7", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyticsHandler_DeveloperTrend_BadDaysFallsBackToDefault(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	mockService.On("TrendForDeveloper", mock.Anything, "octocat", 30).Return([]api.TrendPoint{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/developer/octocat/efficiency-trend?days=banana", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyticsHandler_RepoTrend_InvalidID(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/analytics/repository/not-a-uuid/efficiency-trend", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestAnalyticsHandler_FlaggedCommitsByRepo(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	repoID := uuid.New()
	mockService.On("FlaggedCommitsByRepo", mock.Anything, repoID).
		Return(&api.FlaggedCommitsResponse{FlaggedCommits: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/repository/"+repoID.String()+"/flagged-commits-count", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.FlaggedCommitsResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 3, resp.FlaggedCommits)
}

func TestAnalyticsHandler_FlaggedPRs_InternalError(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	repoID := uuid.New()
	mockService.On("FlaggedPRs", mock.Anything, repoID).Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/analytics/repository/"+repoID.String()+"/flagged-prs-count", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestAnalyticsHandler_CompareEfficiency_Success(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	expected := &api.CompareEfficiencyResponse{
		Developer1:  "octocat",
		Efficiency1: 0.8,
		Developer2:  "hubot",
		Efficiency2: 0.6,
	}
	mockService.On("CompareEfficiency", mock.Anything, "octocat", "hubot").Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/compare-efficiency?dev1=octocat&dev2=hubot", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.CompareEfficiencyResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp)
}

func TestAnalyticsHandler_CompareEfficiency_MissingParams(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/compare-efficiency?dev1=octocat", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CompareEfficiency", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsHandler_CompareEfficiency_DeveloperNotFound(t *testing.T) {
	mockService := mocks.NewMockAnalyticsService(t)
	h := analytics.NewAnalyticsHandler(handlers.NewLogger(), mockService)

	mockService.On("CompareEfficiency", mock.Anything, "octocat", "ghost").Return(nil, repo.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/compare-efficiency?dev1=octocat&dev2=ghost", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
