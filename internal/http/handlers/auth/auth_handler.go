package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"devpulse/internal/auth"
	"devpulse/internal/http/api"
	mw "devpulse/internal/http/middleware"
	"devpulse/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type authService interface {
	LoginURL() string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchGithubUser(ctx context.Context, accessToken string) (*auth.GithubUser, error)
	CreateToken(githubID string) (string, error)
}

type developerSaver interface {
	Save(ctx context.Context, githubID string, averageEfficiency float64) (*api.DeveloperSchema, error)
}

type AuthHandler struct {
	log        *slog.Logger
	service    authService
	developers developerSaver
}

func NewAuthHandler(log *slog.Logger, s authService, developers developerSaver) *AuthHandler {
	return &AuthHandler{
		log:        log,
		service:    s,
		developers: developers,
	}
}

// Login redirects the browser to the provider's consent page.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.service.LoginURL(), http.StatusTemporaryRedirect)
}

// Callback finishes the OAuth dance: code is exchanged for an access token,
// the profile is fetched, the developer row is upserted and a signed bearer
// token is returned.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Callback"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "code is required"))
		return
	}

	accessToken, err := h.service.ExchangeCode(ctx, code)
	if err != nil {
		log.Error("failed to exchange authorization code", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid authorization code"))
		return
	}

	ghUser, err := h.service.FetchGithubUser(ctx, accessToken)
	if err != nil {
		log.Error("failed to fetch github profile", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	githubID := strconv.FormatInt(ghUser.ID, 10)

	if _, err := h.developers.Save(ctx, githubID, 0.0); err != nil {
		log.Error("failed to upsert developer", sl.Err(err), slog.String("github_id", githubID))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	token, err := h.service.CreateToken(githubID)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user authenticated", slog.String("github_id", githubID), slog.String("login", ghUser.Login))

	render.JSON(w, r, api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Protected is a smoke endpoint for the auth middleware.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"msg": "Hello, " + mw.Subject(r.Context()) + "! You are authenticated.",
	})
}
