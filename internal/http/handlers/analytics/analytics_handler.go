package analytics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"devpulse/internal/http/api"
	"devpulse/internal/lib/sl"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

const defaultTrendDays = 30

type analyticsService interface {
	TrendForDeveloper(ctx context.Context, githubID string, days int) ([]api.TrendPoint, error)
	TrendForRepo(ctx context.Context, repoID uuid.UUID, days int) ([]api.TrendPoint, error)
	FlaggedCommitsByRepo(ctx context.Context, repoID uuid.UUID) (*api.FlaggedCommitsResponse, error)
	FlaggedCommitsByDeveloper(ctx context.Context, githubID string) (*api.FlaggedCommitsResponse, error)
	FlaggedPRs(ctx context.Context, repoID uuid.UUID) (*api.FlaggedPRsResponse, error)
	CompareEfficiency(ctx context.Context, githubID1, githubID2 string) (*api.CompareEfficiencyResponse, error)
}

type AnalyticsHandler struct {
	log     *slog.Logger
	service analyticsService
}

func NewAnalyticsHandler(log *slog.Logger, s analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:     log,
		service: s,
	}
}

func (h *AnalyticsHandler) DeveloperTrend(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.DeveloperTrend"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	githubID := chi.URLParam(r, "github_id")
	if githubID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "github_id is required"))
		return
	}

	resp, err := h.service.TrendForDeveloper(r.Context(), githubID, trendDays(r))
	if err != nil {
		log.Error("error while building developer efficiency trend", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalyticsHandler) RepoTrend(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.RepoTrend"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repoID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	resp, err := h.service.TrendForRepo(r.Context(), repoID, trendDays(r))
	if err != nil {
		log.Error("error while building repository efficiency trend", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalyticsHandler) FlaggedCommitsByRepo(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.FlaggedCommitsByRepo"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repoID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	resp, err := h.service.FlaggedCommitsByRepo(r.Context(), repoID)
	if err != nil {
		log.Error("error while counting flagged commits", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalyticsHandler) FlaggedCommitsByDeveloper(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.FlaggedCommitsByDeveloper"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	githubID := chi.URLParam(r, "github_id")
	if githubID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "github_id is required"))
		return
	}

	resp, err := h.service.FlaggedCommitsByDeveloper(r.Context(), githubID)
	if err != nil {
		log.Error("error while counting flagged commits", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalyticsHandler) FlaggedPRs(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.FlaggedPRs"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repoID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	resp, err := h.service.FlaggedPRs(r.Context(), repoID)
	if err != nil {
		log.Error("error while counting flagged pull requests", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalyticsHandler) CompareEfficiency(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.CompareEfficiency"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	dev1 := r.URL.Query().Get("dev1")
	dev2 := r.URL.Query().Get("dev2")
	if dev1 == "" || dev2 == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "dev1 and dev2 are required"))
		return
	}

	resp, err := h.service.CompareEfficiency(r.Context(), dev1, dev2)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("developer not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "developer not found"))
			return
		}
		log.Error("error while comparing developers", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func trendDays(r *http.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultTrendDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return defaultTrendDays
	}
	return days
}
