package commit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/lib/sl"
	"devpulse/internal/models"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type commitService interface {
	Create(ctx context.Context, repoID uuid.UUID, commitHash string, summary models.Summary, efficiency float64) (*api.CommitSchema, error)
	Get(ctx context.Context, commitID uuid.UUID) (*api.CommitSchema, error)
	List(ctx context.Context, skip, limit int) ([]api.CommitSchema, error)
	AnalyzeStored(ctx context.Context, commitHash string) (*api.CommitAnalysisResponse, error)
}

type CommitHandler struct {
	log     *slog.Logger
	service commitService
}

func NewCommitHandler(log *slog.Logger, s commitService) *CommitHandler {
	return &CommitHandler{
		log:     log,
		service: s,
	}
}

type CreateCommitRequest struct {
	RepoID     string         `json:"repo_id"     validate:"required,uuid"`
	CommitHash string         `json:"commit_hash" validate:"required"`
	Summary    models.Summary `json:"summary"`
	Efficiency float64        `json:"efficiency"`
}

func (h *CommitHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.commit.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateCommitRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	repoID, err := uuid.Parse(input.RepoID)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repo id"))
		return
	}

	resp, err := h.service.Create(ctx, repoID, input.CommitHash, input.Summary, input.Efficiency)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("repository not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "repository not found"))
			return
		}
		log.Error("error while creating commit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("commit created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *CommitHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.commit.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	commitID, err := uuid.Parse(chi.URLParam(r, "commit_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid commit id"))
		return
	}

	resp, err := h.service.Get(r.Context(), commitID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("commit not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "commit not found"))
			return
		}
		log.Error("error while retrieving commit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *CommitHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.commit.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit := handlers.Pagination(r)

	resp, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("error while listing commits", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

// AnalyzeStored serves the stored-commit analysis view, the flag is
// recomputed from the persisted efficiency.
func (h *CommitHandler) AnalyzeStored(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.commit.AnalyzeStored"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	commitHash := chi.URLParam(r, "commit_hash")
	if commitHash == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "commit_hash is required"))
		return
	}

	resp, err := h.service.AnalyzeStored(r.Context(), commitHash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("commit not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "commit not found"))
			return
		}
		log.Error("error while analyzing stored commit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
