package repo

import (
	"context"
	"database/sql"
	"errors"

	"devpulse/internal/lib"
	"devpulse/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type DeveloperRepository interface {
	Save(ctx context.Context, developer *models.Developer) (string, error)
	GetByGithubID(ctx context.Context, githubID string) (*models.Developer, error)
	List(ctx context.Context, skip, limit int) ([]*models.Developer, error)
}

type DeveloperRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewDeveloperRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *DeveloperRepo {
	return &DeveloperRepo{
		db:     db,
		getter: c,
	}
}

// Save upserts the developer record, github_id is the primary key.
func (r *DeveloperRepo) Save(ctx context.Context, developer *models.Developer) (string, error) {
	const op = "developer_repo.Save"

	query := `
		INSERT INTO developers (github_id, average_efficiency)
		VALUES ($1, $2)
		ON CONFLICT (github_id) DO UPDATE SET
			average_efficiency = EXCLUDED.average_efficiency
		RETURNING github_id;
	`

	var githubID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, developer.GithubID, developer.AverageEfficiency).Scan(&githubID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return githubID, nil
}

func (r *DeveloperRepo) GetByGithubID(ctx context.Context, githubID string) (*models.Developer, error) {
	const op = "developer_repo.GetByGithubID"

	query := `
		SELECT github_id, average_efficiency
		FROM developers
		WHERE github_id = $1;
	`

	var developer models.Developer
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &developer, query, githubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &developer, nil
}

func (r *DeveloperRepo) List(ctx context.Context, skip, limit int) ([]*models.Developer, error) {
	const op = "developer_repo.List"

	query := `
		SELECT github_id, average_efficiency
		FROM developers
		ORDER BY github_id
		OFFSET $1 LIMIT $2;
	`

	var developers []*models.Developer
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &developers, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Developer{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return developers, nil
}
