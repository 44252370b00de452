package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"devpulse/internal/ai"
	authsvc "devpulse/internal/auth"
	gh "devpulse/internal/github"
	"devpulse/internal/http/handlers"
	analyticsh "devpulse/internal/http/handlers/analytics"
	analyzeh "devpulse/internal/http/handlers/analyze"
	authh "devpulse/internal/http/handlers/auth"
	commith "devpulse/internal/http/handlers/commit"
	developerh "devpulse/internal/http/handlers/developer"
	progressh "devpulse/internal/http/handlers/progress"
	prh "devpulse/internal/http/handlers/pullrequest"
	reposh "devpulse/internal/http/handlers/repos"
	userh "devpulse/internal/http/handlers/user"
	webhookh "devpulse/internal/http/handlers/webhook"
	mw "devpulse/internal/http/middleware"
	"devpulse/internal/lib/config"
	"devpulse/internal/lib/sl"
	"devpulse/internal/notify"
	repo "devpulse/internal/repository"
	"devpulse/internal/service/analytics"
	"devpulse/internal/service/commit"
	"devpulse/internal/service/developer"
	"devpulse/internal/service/progress"
	"devpulse/internal/service/pullrequest"
	"devpulse/internal/service/repos"
	"devpulse/internal/service/user"
	"devpulse/internal/service/webhook"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	ctx := context.Background()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting DevPulse backend", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(dsn); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	repoRepo := repo.NewRepositoryRepo(db, trmsqlx.DefaultCtxGetter)
	commitRepo := repo.NewCommitRepo(db, trmsqlx.DefaultCtxGetter)
	developerRepo := repo.NewDeveloperRepo(db, trmsqlx.DefaultCtxGetter)
	prRepo := repo.NewPullRequestRepo(db, trmsqlx.DefaultCtxGetter)
	progressRepo := repo.NewProgressRepo(db, trmsqlx.DefaultCtxGetter)
	analyticsRepo := repo.NewAnalyticsRepo(db)

	userService := user.NewUserService(trManager, userRepo)
	repoService := repos.NewRepositoryService(trManager, repoRepo, userRepo)
	commitService := commit.NewCommitService(trManager, commitRepo, repoRepo)
	developerService := developer.NewDeveloperService(trManager, developerRepo)
	prService := pullrequest.NewPullRequestService(trManager, prRepo, repoRepo)
	progressService := progress.NewProgressService(trManager, progressRepo, repoRepo)
	analyticsService := analytics.NewAnalyticsService(trManager, analyticsRepo, developerRepo)

	authService := authsvc.NewService(cfg.GitHub, cfg.JWT)
	ghClient := gh.NewClient(cfg.GitHub.BotToken, log)

	var generator ai.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = ai.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Error("failed to init gemini client, analysis will degrade to fallback", sl.Err(err))
			generator = nil
		}
	} else {
		log.Warn("GEMINI_API_KEY is not set, analysis will degrade to fallback")
	}
	analyzer := ai.New(log, generator)

	var pusher webhook.Pusher
	if cfg.Firebase.CredentialsPath != "" {
		notifier, err := notify.New(ctx, cfg.Firebase.CredentialsPath, log)
		if err != nil {
			log.Error("failed to init firebase messaging, push notifications disabled", sl.Err(err))
		} else {
			pusher = notifier
		}
	} else {
		log.Warn("FIREBASE_CRED_PATH is not set, push notifications disabled")
	}

	webhookService := webhook.NewWebhookService(
		log, ghClient, analyzer, commitRepo, prRepo, repoRepo, userRepo, pusher,
	)

	userHandler := userh.NewUserHandler(log, userService)
	repoHandler := reposh.NewRepositoryHandler(log, repoService)
	commitHandler := commith.NewCommitHandler(log, commitService)
	developerHandler := developerh.NewDeveloperHandler(log, developerService)
	prHandler := prh.NewPrHandler(log, prService)
	progressHandler := progressh.NewProgressHandler(log, progressService)
	analyticsHandler := analyticsh.NewAnalyticsHandler(log, analyticsService)
	analyzeHandler := analyzeh.NewAnalyzeHandler(log, analyzer)
	authHandler := authh.NewAuthHandler(log, authService, developerService)
	webhookHandler := webhookh.NewWebhookHandler(log, cfg.GitHub.ClientSecret, webhookService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/", handlers.Root())
	router.Get("/health", handlers.Healthcheck())

	router.Get("/auth/github/login", authHandler.Login)
	router.Get("/auth/github/callback", authHandler.Callback)
	router.Post("/webhook/github", webhookHandler.HandlePush)

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(authService))

		r.Get("/protected", authHandler.Protected)
	})

	router.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Get("/{user_id}", userHandler.Get)
	})

	router.Route("/repositories", func(r chi.Router) {
		r.Post("/", repoHandler.Create)
		r.Get("/", repoHandler.List)
		r.Get("/{repo_id}", repoHandler.Get)

		r.Post("/{repo_id}/progress-report", progressHandler.CreateReport)
		r.Get("/{repo_id}/progress-report", progressHandler.LatestReport)
		r.Get("/{repo_id}/progress-reports", progressHandler.ListReports)
	})

	router.Route("/commits", func(r chi.Router) {
		r.Post("/", commitHandler.Create)
		r.Get("/", commitHandler.List)
		r.Get("/{commit_id}", commitHandler.Get)
	})

	router.Route("/developers", func(r chi.Router) {
		r.Post("/", developerHandler.Create)
		r.Get("/", developerHandler.List)
		r.Get("/{github_id}", developerHandler.Get)
	})

	router.Route("/progress-images", func(r chi.Router) {
		r.Post("/", progressHandler.CreateImage)
		r.Get("/", progressHandler.ListImages)
		r.Get("/{image_id}", progressHandler.GetImage)
	})

	router.Route("/pull-requests", func(r chi.Router) {
		r.Post("/", prHandler.Create)
		r.Get("/", prHandler.List)
		r.Get("/by-commit/{commit_hash}", prHandler.GetByCommit)
		r.Get("/{pr_id}", prHandler.Get)
	})

	router.Post("/analyze", analyzeHandler.Analyze)
	router.Get("/analyze-commit/{commit_hash}", commitHandler.AnalyzeStored)

	router.Route("/analytics", func(r chi.Router) {
		r.Get("/developer/{github_id}/efficiency-trend", analyticsHandler.DeveloperTrend)
		r.Get("/developer/{github_id}/flagged-commits-count", analyticsHandler.FlaggedCommitsByDeveloper)
		r.Get("/repository/{repo_id}/efficiency-trend", analyticsHandler.RepoTrend)
		r.Get("/repository/{repo_id}/flagged-commits-count", analyticsHandler.FlaggedCommitsByRepo)
		r.Get("/repository/{repo_id}/flagged-prs-count", analyticsHandler.FlaggedPRs)
	})
	router.Get("/compare-efficiency", analyticsHandler.CompareEfficiency)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case envLocal:
		fallthrough
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return log
}
