package models

import (
	"time"

	"github.com/google/uuid"
)

type ProgressImage struct {
	ID           uuid.UUID  `db:"id"`
	RepositoryID uuid.UUID  `db:"repository_id"`
	ImageURL     string     `db:"image_url"`
	CreatedAt    *time.Time `db:"created_at"`
}

type ProgressReport struct {
	ID           uuid.UUID  `db:"id"`
	RepositoryID uuid.UUID  `db:"repository_id"`
	Report       string     `db:"report"`
	CreatedAt    *time.Time `db:"created_at"`
}
