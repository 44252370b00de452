package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"devpulse/internal/lib"
	"devpulse/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AnalyticsRepo struct {
	db *sqlx.DB
}

func NewAnalyticsRepo(db *sqlx.DB) *AnalyticsRepo {
	return &AnalyticsRepo{
		db: db,
	}
}

// EfficiencyTrendForDeveloper averages commit efficiency per day over the
// trailing window. The day comes from the summary's embedded date field,
// commits without that field are excluded.
func (r *AnalyticsRepo) EfficiencyTrendForDeveloper(ctx context.Context, githubID string, days int) ([]*models.TrendPoint, error) {
	const op = "analytics_repo.EfficiencyTrendForDeveloper"

	query := `
		SELECT (c.summary->>'date')::date AS day, AVG(c.efficiency) AS avg_efficiency
		FROM commits c
		JOIN repositories r ON c.repo_id = r.id
		JOIN users u ON r.owner_id = u.id
		WHERE u.github_id = $1
		  AND c.summary->>'date' IS NOT NULL
		  AND c.summary->>'date' >= $2
		GROUP BY day
		ORDER BY day;
	`

	var points []*models.TrendPoint
	err := r.db.SelectContext(ctx, &points, query, githubID, sinceDate(days))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TrendPoint{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return points, nil
}

func (r *AnalyticsRepo) EfficiencyTrendForRepo(ctx context.Context, repoID uuid.UUID, days int) ([]*models.TrendPoint, error) {
	const op = "analytics_repo.EfficiencyTrendForRepo"

	query := `
		SELECT (c.summary->>'date')::date AS day, AVG(c.efficiency) AS avg_efficiency
		FROM commits c
		WHERE c.repo_id = $1
		  AND c.summary->>'date' IS NOT NULL
		  AND c.summary->>'date' >= $2
		GROUP BY day
		ORDER BY day;
	`

	var points []*models.TrendPoint
	err := r.db.SelectContext(ctx, &points, query, repoID, sinceDate(days))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TrendPoint{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return points, nil
}

// FlaggedCommitsCountByRepo counts commits strictly below the flag threshold.
func (r *AnalyticsRepo) FlaggedCommitsCountByRepo(ctx context.Context, repoID uuid.UUID) (int, error) {
	const op = "analytics_repo.FlaggedCommitsCountByRepo"

	query := `
		SELECT COUNT(*)
		FROM commits
		WHERE efficiency < $1 AND repo_id = $2;
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, FlaggedThreshold, repoID)
	if err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

// FlaggedCommitsCountByDeveloper scopes the count to all repositories owned
// by the user with the given external github id.
func (r *AnalyticsRepo) FlaggedCommitsCountByDeveloper(ctx context.Context, githubID string) (int, error) {
	const op = "analytics_repo.FlaggedCommitsCountByDeveloper"

	query := `
		SELECT COUNT(*)
		FROM commits c
		JOIN repositories r ON c.repo_id = r.id
		JOIN users u ON r.owner_id = u.id
		WHERE c.efficiency < $1 AND u.github_id = $2;
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, FlaggedThreshold, githubID)
	if err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

// FlaggedPRsCount counts pull request rows for the repository. Every stored
// pull request stems from a flagged commit.
func (r *AnalyticsRepo) FlaggedPRsCount(ctx context.Context, repoID uuid.UUID) (int, error) {
	const op = "analytics_repo.FlaggedPRsCount"

	query := `
		SELECT COUNT(*)
		FROM pull_requests
		WHERE repository_id = $1;
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, repoID)
	if err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

func sinceDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
}
