package progress

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

type progressService interface {
	CreateImage(ctx context.Context, repositoryID uuid.UUID, imageURL string) (*api.ProgressImageSchema, error)
	GetImage(ctx context.Context, imageID uuid.UUID) (*api.ProgressImageSchema, error)
	ListImages(ctx context.Context, skip, limit int) ([]api.ProgressImageSchema, error)

	CreateReport(ctx context.Context, repositoryID uuid.UUID, report string) (*api.ProgressReportSchema, error)
	LatestReport(ctx context.Context, repositoryID uuid.UUID) (*api.ProgressReportSchema, error)
	ListReports(ctx context.Context, repositoryID uuid.UUID, skip, limit int) ([]api.ProgressReportSchema, error)
}

type ProgressHandler struct {
	log     *slog.Logger
	service progressService
}

func NewProgressHandler(log *slog.Logger, s progressService) *ProgressHandler {
	return &ProgressHandler{
		log:     log,
		service: s,
	}
}

type CreateImageRequest struct {
	RepositoryID string `json:"repository_id" validate:"required,uuid"`
	ImageURL     string `json:"image_url"     validate:"required"`
}

func (h *ProgressHandler) CreateImage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.CreateImage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateImageRequest

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

	resp, err := h.service.CreateImage(ctx, repositoryID, input.ImageURL)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("repository not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "repository not found"))
			return
		}
		log.Error("error while creating progress image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("progress image created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *ProgressHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.GetImage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	imageID, err := uuid.Parse(chi.URLParam(r, "image_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid image id"))
		return
	}

	resp, err := h.service.GetImage(r.Context(), imageID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("image not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "image not found"))
			return
		}
		log.Error("error while retrieving progress image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *ProgressHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.ListImages"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit := handlers.Pagination(r)

	resp, err := h.service.ListImages(r.Context(), skip, limit)
	if err != nil {
		log.Error("error while listing progress images", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

type CreateReportRequest struct {
	Report string `json:"report" validate:"required"`
}

func (h *ProgressHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.CreateReport"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	repositoryID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	var input CreateReportRequest

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

	resp, err := h.service.CreateReport(ctx, repositoryID, input.Report)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("repository not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "repository not found"))
			return
		}
		log.Error("error while creating progress report", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("progress report created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *ProgressHandler) LatestReport(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.LatestReport"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repositoryID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	resp, err := h.service.LatestReport(r.Context(), repositoryID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("no progress report found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "no progress report found"))
			return
		}
		log.Error("error while retrieving progress report", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *ProgressHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.ListReports"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repositoryID, err := uuid.Parse(chi.URLParam(r, "repo_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid repository id"))
		return
	}

	skip, limit := handlers.Pagination(r)
	if limit > 10 && r.URL.Query().Get("limit") == "" {
		limit = 10
	}

	resp, err := h.service.ListReports(r.Context(), repositoryID, skip, limit)
	if err != nil {
		log.Error("error while listing progress reports", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
