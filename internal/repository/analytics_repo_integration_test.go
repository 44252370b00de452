//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"devpulse/internal/models"
	repo "devpulse/internal/repository"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(ctx context.Context, t *testing.T) *sqlx.DB {
	t.Helper()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("devpulse-test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://../../migrations", connStr)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	return db
}

func seedCommit(ctx context.Context, t *testing.T, commits *repo.CommitRepo, repoID uuid.UUID, hash string, efficiency float64, date string) {
	t.Helper()

	var summary models.Summary
	if date != "" {
		summary = models.Summary{"intent": "change", "date": date}
	}

	_, err := commits.Create(ctx, &models.Commit{
		RepoID:     repoID,
		CommitHash: hash,
		Summary:    summary,
		Efficiency: efficiency,
	})
	require.NoError(t, err)
}

func TestAnalyticsRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db := setupTestDatabase(ctx, t)

	users := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	repositories := repo.NewRepositoryRepo(db, trmsqlx.DefaultCtxGetter)
	commits := repo.NewCommitRepo(db, trmsqlx.DefaultCtxGetter)
	prs := repo.NewPullRequestRepo(db, trmsqlx.DefaultCtxGetter)
	analytics := repo.NewAnalyticsRepo(db)

	ownerID, err := users.Create(ctx, &models.User{
		GithubID:    "99001122",
		AccessToken: "gho_token",
	})
	require.NoError(t, err)

	repoID, err := repositories.Create(ctx, &models.Repository{
		GithubRepoID: "123456",
		OwnerID:      ownerID,
	})
	require.NoError(t, err)

	dayOne := time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02")
	dayTwo := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	stale := time.Now().UTC().AddDate(0, 0, -40).Format("2006-01-02")

	seedCommit(ctx, t, commits, repoID, "aaa0001", 0.2, dayOne)
	seedCommit(ctx, t, commits, repoID, "aaa0002", 0.6, dayOne)
	seedCommit(ctx, t, commits, repoID, "aaa0003", 0.49, dayTwo)
	seedCommit(ctx, t, commits, repoID, "aaa0004", 0.5, dayTwo)
	// outside the 30-day window / without a dated summary
	seedCommit(ctx, t, commits, repoID, "aaa0005", 0.9, stale)
	seedCommit(ctx, t, commits, repoID, "aaa0006", 0.9, "")

	t.Run("flagged commits counted strictly below threshold", func(t *testing.T) {
		count, err := analytics.FlaggedCommitsCountByRepo(ctx, repoID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("flagged commits by developer spans owned repositories", func(t *testing.T) {
		count, err := analytics.FlaggedCommitsCountByDeveloper(ctx, "99001122")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("repo trend is grouped by day, averaged and ascending", func(t *testing.T) {
		points, err := analytics.EfficiencyTrendForRepo(ctx, repoID, 30)
		require.NoError(t, err)
		require.Len(t, points, 2)

		assert.Equal(t, dayOne, points[0].Day.Format("2006-01-02"))
		assert.InDelta(t, 0.4, points[0].AvgEfficiency, 1e-9)
		assert.Equal(t, dayTwo, points[1].Day.Format("2006-01-02"))
		assert.InDelta(t, 0.495, points[1].AvgEfficiency, 1e-9)
	})

	t.Run("developer trend matches repo trend for the owner", func(t *testing.T) {
		points, err := analytics.EfficiencyTrendForDeveloper(ctx, "99001122", 30)
		require.NoError(t, err)
		require.Len(t, points, 2)

		assert.True(t, points[0].Day.Before(points[1].Day))
	})

	t.Run("flagged pr count follows stored pull requests", func(t *testing.T) {
		count, err := analytics.FlaggedPRsCount(ctx, repoID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		_, err = prs.Create(ctx, &models.PullRequest{
			RepositoryID: repoID,
			CommitHash:   "aaa0001",
			PrURL:        "https://github.com/octocat/hello/pull/1",
		})
		require.NoError(t, err)

		count, err = analytics.FlaggedPRsCount(ctx, repoID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
