package analyze

import (
	"context"
	"log/slog"
	"net/http"

	"devpulse/internal/ai"
	"devpulse/internal/http/api"
	"devpulse/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type commitAnalyzer interface {
	AnalyzeCommit(ctx context.Context, repoName, commitHash, diff string) ai.Result
}

// AnalyzeHandler exposes the analyzer directly, nothing is persisted here.
type AnalyzeHandler struct {
	log      *slog.Logger
	analyzer commitAnalyzer
}

func NewAnalyzeHandler(log *slog.Logger, analyzer commitAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:      log,
		analyzer: analyzer,
	}
}

type AnalyzeRequest struct {
	Repo       string `json:"repo"        validate:"required"`
	CommitHash string `json:"commit_hash" validate:"required"`
	Diff       string `json:"diff"        validate:"required"`
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analyze.Analyze"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input AnalyzeRequest

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

	result := h.analyzer.AnalyzeCommit(r.Context(), input.Repo, input.CommitHash, input.Diff)

	log.Info("commit analyzed",
		slog.String("repo", input.Repo),
		slog.Float64("efficiency", result.Efficiency),
		slog.Bool("flagged", result.Flagged),
	)

	render.JSON(w, r, api.AnalyzeResponse{
		Repo:       input.Repo,
		CommitHash: input.CommitHash,
		Summary:    result.Summary,
		Efficiency: result.Efficiency,
		Flagged:    result.Flagged,
		Analysis: api.AnalysisResult{
			Summary:    result.Summary,
			Efficiency: result.Efficiency,
			Flagged:    result.Flagged,
		},
	})
}
