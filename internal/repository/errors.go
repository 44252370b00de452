package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrUserExists = errors.New("user with this github id already exists")
	ErrRepoExists = errors.New("repository with this github id already exists")
)

// FlaggedThreshold is the efficiency score below which a commit counts as
// flagged. The flag itself is never persisted, it is recomputed on demand.
const FlaggedThreshold = 0.5
