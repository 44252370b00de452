package pullrequest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/lib/sl"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type pullRequestService interface {
	Create(ctx context.Context, repositoryID uuid.UUID, commitHash, prURL, status string) (*api.PullRequestSchema, error)
	Get(ctx context.Context, prID uuid.UUID) (*api.PullRequestSchema, error)
	GetByCommit(ctx context.Context, commitHash string) (*api.PullRequestSchema, error)
	List(ctx context.Context, skip, limit int) ([]api.PullRequestSchema, error)
}

type PrHandler struct {
	log     *slog.Logger
	service pullRequestService
}

func NewPrHandler(log *slog.Logger, s pullRequestService) *PrHandler {
	return &PrHandler{
		log:     log,
		service: s,
	}
}

type CreatePullRequestRequest struct {
	RepositoryID string `json:"repository_id" validate:"required,uuid"`
	CommitHash   string `json:"commit_hash"   validate:"required"`
	PrURL        string `json:"pr_url"        validate:"required"`
	Status       string `json:"status"`
}

func (h *PrHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pullrequest.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreatePullRequestRequest

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

	repositoryID, err := uuid.Parse(input.RepositoryID)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	resp, err := h.service.Create(ctx, repositoryID, input.CommitHash, input.PrURL, input.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("repository not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "repository not found"))
			return
		}
		log.Error("error while creating pull request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("pull request created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *PrHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pullrequest.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prID, err := uuid.Parse(chi.URLParam(r, "pr_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid pull request id"))
		return
	}

	resp, err := h.service.Get(r.Context(), prID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("pull request not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "pull request not found"))
			return
		}
		log.Error("error while retrieving pull request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

// GetByCommit looks up the pull request opened for a flagged commit.
func (h *PrHandler) GetByCommit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pullrequest.GetByCommit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	commitHash := chi.URLParam(r, "commit_hash")
	if commitHash == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "commit hash is required"))
		return
	}

	resp, err := h.service.GetByCommit(r.Context(), commitHash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("pull request not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "pull request not found"))
			return
		}
		log.Error("error while retrieving pull request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *PrHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pullrequest.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit := handlers.Pagination(r)

	resp, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("error while listing pull requests", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
