package commit_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/http/handlers/commit"
	"devpulse/internal/http/handlers/mocks"
	"devpulse/internal/models"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCommitHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockCommitService(t)
	h := commit.NewCommitHandler(handlers.NewLogger(), mockService)

	repoID := uuid.New()
	summary := models.Summary{"intent": "fix"}
	reqBody := commit.CreateCommitRequest{
		RepoID:     repoID.String(),
		CommitHash: "abc1234",
		Summary:    summary,
		Efficiency: 0.8,
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/commits", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.CommitSchema{
		ID:         uuid.NewString(),
		RepoID:     repoID.String(),
		CommitHash: "abc1234",
		Summary:    summary,
		Efficiency: 0.8,
	}
	mockService.On("Create", mock.Anything, repoID, "abc1234", summary, 0.8).Return(expected, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.CommitSchema
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp)
}

func TestCommitHandler_Create_RepoNotFound(t *testing.T) {
	mockService := mocks.NewMockCommitService(t)
	h := commit.NewCommitHandler(handlers.NewLogger(), mockService)

	repoID := uuid.New()
	reqBody := commit.CreateCommitRequest{
		RepoID:     repoID.String(),
		CommitHash: "abc1234",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/commits", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, repoID, "abc1234", models.Summary(nil), 0.0).
		Return(nil, repo.ErrNotFound)

	h.Create(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestCommitHandler_Create_InvalidRepoID(t *testing.T) {
	mockService := mocks.NewMockCommitService(t)
	h := commit.NewCommitHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(commit.CreateCommitRequest{
		RepoID:     "not-a-uuid",
		CommitHash: "abc1234",
	})
	req := httptest.NewRequest(http.MethodPost, "/commits", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// AnalyzeStored

func newAnalyzeRouter(h *commit.CommitHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/analyze-commit/{commit_hash}", h.AnalyzeStored)
	return r
}

func TestCommitHandler_AnalyzeStored_Success(t *testing.T) {
	mockService := mocks.NewMockCommitService(t)
	h := commit.NewCommitHandler(handlers.NewLogger(), mockService)

	expected := &api.CommitAnalysisResponse{
		CommitHash: "abc1234",
		Summary:    models.Summary{"intent": "fix"},
		Efficiency: 0.2,
		Flagged:    true,
	}
	mockService.On("AnalyzeStored", mock.Anything, "abc1234").Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/analyze-commit/abc1234", nil)
	w := httptest.NewRecorder()
	newAnalyzeRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.CommitAnalysisResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp)
}

func TestCommitHandler_AnalyzeStored_NotFound(t *testing.T) {
	mockService := mocks.NewMockCommitService(t)
	h := commit.NewCommitHandler(handlers.NewLogger(), mockService)

	mockService.On("AnalyzeStored", mock.Anything, "missing").Return(nil, repo.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/analyze-commit/missing", nil)
	w := httptest.NewRecorder()
	newAnalyzeRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
