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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (uuid.UUID, error)
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (uuid.UUID, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (id, github_id, access_token, fcm_token, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id;
	`

	var userID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), user.GithubID, user.AccessToken, user.FcmToken).Scan(&userID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == uniqueViolationCode {
				return uuid.Nil, ErrUserExists
			}
		}
		return uuid.Nil, lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetById(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `
		SELECT id, github_id, access_token, fcm_token, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByGithubID(ctx context.Context, githubID string) (*models.User, error) {
	const op = "user_repo.GetByGithubID"

	query := `
		SELECT id, github_id, access_token, fcm_token, created_at
		FROM users
		WHERE github_id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, githubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `
		SELECT id, github_id, access_token, fcm_token, created_at
		FROM users
		ORDER BY created_at
		OFFSET $1 LIMIT $2;
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}
