package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `db:"id"`
	GithubID    string     `db:"github_id"`
	AccessToken string     `db:"access_token"`
	FcmToken    *string    `db:"fcm_token"`
	CreatedAt   *time.Time `db:"created_at"`
}
