package developer

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
)

type developerService interface {
	Save(ctx context.Context, githubID string, averageEfficiency float64) (*api.DeveloperSchema, error)
	Get(ctx context.Context, githubID string) (*api.DeveloperSchema, error)
	List(ctx context.Context, skip, limit int) ([]api.DeveloperSchema, error)
}

type DeveloperHandler struct {
	log     *slog.Logger
	service developerService
}

func NewDeveloperHandler(log *slog.Logger, s developerService) *DeveloperHandler {
	return &DeveloperHandler{
		log:     log,
		service: s,
	}
}

type CreateDeveloperRequest struct {
	GithubID          string  `json:"github_id" validate:"required"`
	AverageEfficiency float64 `json:"average_efficiency"`
}

func (h *DeveloperHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.developer.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateDeveloperRequest

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

	resp, err := h.service.Save(ctx, input.GithubID, input.AverageEfficiency)
	if err != nil {
		log.Error("error while saving developer", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("developer saved successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *DeveloperHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.developer.Get"
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

	resp, err := h.service.Get(r.Context(), githubID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("developer not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "developer not found"))
			return
		}
		log.Error("error while retrieving developer", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *DeveloperHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.developer.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit := handlers.Pagination(r)

	resp, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("error while listing developers", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
