package repo

import (
	"context"
	"database/sql"
	"errors"

	"devpulse/internal/lib"
	"devpulse/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type RepositoryRepository interface {
	Create(ctx context.Context, repository *models.Repository) (uuid.UUID, error)
	GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error)
	GetByGithubRepoID(ctx context.Context, githubRepoID string) (*models.Repository, error)
	List(ctx context.Context, skip, limit int) ([]*models.Repository, error)
}

type RepositoryRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewRepositoryRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *RepositoryRepo {
	return &RepositoryRepo{
		db:     db,
		getter: c,
	}
}

func (r *RepositoryRepo) Create(ctx context.Context, repository *models.Repository) (uuid.UUID, error) {
	const op = "repo_repo.Create"

	query := `
		INSERT INTO repositories (id, github_repo_id, owner_id, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var repoID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), repository.GithubRepoID, repository.OwnerID).Scan(&repoID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == uniqueViolationCode {
				return uuid.Nil, ErrRepoExists
			}
		}
		return uuid.Nil, lib.Err(op, err)
	}

	return repoID, nil
}

func (r *RepositoryRepo) GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error) {
	const op = "repo_repo.GetById"

	query := `
		SELECT id, github_repo_id, owner_id, created_at
		FROM repositories
		WHERE id = $1;
	`

	var repository models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &repository, query, repoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &repository, nil
}

func (r *RepositoryRepo) GetByGithubRepoID(ctx context.Context, githubRepoID string) (*models.Repository, error) {
	const op = "repo_repo.GetByGithubRepoID"

	query := `
		SELECT id, github_repo_id, owner_id, created_at
		FROM repositories
		WHERE github_repo_id = $1;
	`

	var repository models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &repository, query, githubRepoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &repository, nil
}

func (r *RepositoryRepo) List(ctx context.Context, skip, limit int) ([]*models.Repository, error) {
	const op = "repo_repo.List"

	query := `
		SELECT id, github_repo_id, owner_id, created_at
		FROM repositories
		ORDER BY created_at
		OFFSET $1 LIMIT $2;
	`

	var repositories []*models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &repositories, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Repository{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return repositories, nil
}
