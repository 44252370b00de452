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

type CommitRepository interface {
	Create(ctx context.Context, commit *models.Commit) (uuid.UUID, error)
	GetById(ctx context.Context, commitID uuid.UUID) (*models.Commit, error)
	GetByHash(ctx context.Context, commitHash string) (*models.Commit, error)
	List(ctx context.Context, skip, limit int) ([]*models.Commit, error)
}

type CommitRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewCommitRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *CommitRepo {
	return &CommitRepo{
		db:     db,
		getter: c,
	}
}

func (r *CommitRepo) Create(ctx context.Context, commit *models.Commit) (uuid.UUID, error) {
	const op = "commit_repo.Create"

	query := `
		INSERT INTO commits (id, repo_id, commit_hash, summary, efficiency, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id;
	`

	var commitID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), commit.RepoID, commit.CommitHash, commit.Summary, commit.Efficiency).
		Scan(&commitID)
	if err != nil {
		return uuid.Nil, lib.Err(op, err)
	}

	return commitID, nil
}

func (r *CommitRepo) GetById(ctx context.Context, commitID uuid.UUID) (*models.Commit, error) {
	const op = "commit_repo.GetById"

	query := `
		SELECT id, repo_id, commit_hash, summary, efficiency, created_at
		FROM commits
		WHERE id = $1;
	`

	var commit models.Commit
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &commit, query, commitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &commit, nil
}

// GetByHash returns the most recent commit with the given hash. The hash is
// not unique across repositories.
func (r *CommitRepo) GetByHash(ctx context.Context, commitHash string) (*models.Commit, error) {
	const op = "commit_repo.GetByHash"

	query := `
		SELECT id, repo_id, commit_hash, summary, efficiency, created_at
		FROM commits
		WHERE commit_hash = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var commit models.Commit
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &commit, query, commitHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &commit, nil
}

func (r *CommitRepo) List(ctx context.Context, skip, limit int) ([]*models.Commit, error) {
	const op = "commit_repo.List"

	query := `
		SELECT id, repo_id, commit_hash, summary, efficiency, created_at
		FROM commits
		ORDER BY created_at
		OFFSET $1 LIMIT $2;
	`

	var commits []*models.Commit
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &commits, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Commit{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return commits, nil
}
