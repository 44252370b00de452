package repos

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

type repositoryService interface {
	Create(ctx context.Context, githubRepoID string, ownerID uuid.UUID) (*api.RepositorySchema, error)
	Get(ctx context.Context, repoID uuid.UUID) (*api.RepositorySchema, error)
	List(ctx context.Context, skip, limit int) ([]api.RepositorySchema, error)
}

type RepositoryHandler struct {
	log     *slog.Logger
	service repositoryService
}

func NewRepositoryHandler(log *slog.Logger, s repositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		log:     log,
		service: s,
	}
}

type CreateRepositoryRequest struct {
	GithubRepoID string `json:"github_repo_id" validate:"required"`
	OwnerID      string `json:"owner_id"       validate:"required,uuid"`
}

func (h *RepositoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repos.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateRepositoryRequest

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

	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid owner id"))
		return
	}

	resp, err := h.service.Create(ctx, input.GithubRepoID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("owner not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "owner not found"))
		case errors.Is(err, repo.ErrRepoExists):
			log.Error("repository exists", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeRepoExists, err.Error()))
		default:
			log.Error("error while creating repository", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("repository created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *RepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repos.Get"
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

	resp, err := h.service.Get(r.Context(), repoID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("repository not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "repository not found"))
			return
		}
		log.Error("error while retrieving repository", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *RepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repos.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit := handlers.Pagination(r)

	resp, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("error while listing repositories", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
