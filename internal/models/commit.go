package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Commit struct {
	ID         uuid.UUID  `db:"id"`
	RepoID     uuid.UUID  `db:"repo_id"`
	CommitHash string     `db:"commit_hash"`
	Summary    Summary    `db:"summary"`
	Efficiency float64    `db:"efficiency"`
	CreatedAt  *time.Time `db:"created_at"`
}

// Summary is the semi-structured AI summary stored in a jsonb column.
// Known keys: intent, changes, observations and optionally date.
type Summary map[string]any

func (s Summary) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *Summary) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("summary: cannot scan %T", src)
	}

	return json.Unmarshal(data, s)
}
