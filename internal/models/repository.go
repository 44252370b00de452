package models

import (
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	ID           uuid.UUID  `db:"id"`
	GithubRepoID string     `db:"github_repo_id"`
	OwnerID      uuid.UUID  `db:"owner_id"`
	CreatedAt    *time.Time `db:"created_at"`
}
