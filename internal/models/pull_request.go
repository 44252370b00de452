package models

import (
	"time"

	"github.com/google/uuid"
)

type PullRequest struct {
	ID           uuid.UUID  `db:"id"`
	RepositoryID uuid.UUID  `db:"repository_id"`
	CommitHash   string     `db:"commit_hash"`
	PrURL        string     `db:"pr_url"`
	Status       string     `db:"status"`
	CreatedAt    *time.Time `db:"created_at"`
}
