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
)

const StatusOpen = "open"

type PullRequestRepository interface {
	Create(ctx context.Context, pr *models.PullRequest) (uuid.UUID, error)
	GetById(ctx context.Context, prID uuid.UUID) (*models.PullRequest, error)
	GetByCommitHash(ctx context.Context, commitHash string) (*models.PullRequest, error)
	List(ctx context.Context, skip, limit int) ([]*models.PullRequest, error)
}

type PullRequestRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPullRequestRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PullRequestRepo {
	return &PullRequestRepo{
		db:     db,
		getter: c,
	}
}

func (r *PullRequestRepo) Create(ctx context.Context, pr *models.PullRequest) (uuid.UUID, error) {
	const op = "pull_request_repo.Create"

	status := pr.Status
	if status == "" {
		status = StatusOpen
	}

	query := `
		INSERT INTO pull_requests (id, repository_id, commit_hash, pr_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id;
	`

	var prID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), pr.RepositoryID, pr.CommitHash, pr.PrURL, status).
		Scan(&prID)
	if err != nil {
		return uuid.Nil, lib.Err(op, err)
	}

	return prID, nil
}

func (r *PullRequestRepo) GetById(ctx context.Context, prID uuid.UUID) (*models.PullRequest, error) {
	const op = "pull_request_repo.GetById"

	query := `
		SELECT id, repository_id, commit_hash, pr_url, status, created_at
		FROM pull_requests
		WHERE id = $1;
	`

	var pr models.PullRequest
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &pr, query, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &pr, nil
}

func (r *PullRequestRepo) GetByCommitHash(ctx context.Context, commitHash string) (*models.PullRequest, error) {
	const op = "pull_request_repo.GetByCommitHash"

	query := `
		SELECT id, repository_id, commit_hash, pr_url, status, created_at
		FROM pull_requests
		WHERE commit_hash = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var pr models.PullRequest
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &pr, query, commitHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &pr, nil
}

func (r *PullRequestRepo) List(ctx context.Context, skip, limit int) ([]*models.PullRequest, error) {
	const op = "pull_request_repo.List"

	query := `
		SELECT id, repository_id, commit_hash, pr_url, status, created_at
		FROM pull_requests
		ORDER BY created_at
		OFFSET $1 LIMIT $2;
	`

	var prs []*models.PullRequest
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &prs, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.PullRequest{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return prs, nil
}
