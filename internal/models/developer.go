package models

// Developer is keyed directly by the external github id, it is distinct
// from User (the OAuth-linked account that owns repositories).
type Developer struct {
	GithubID          string  `db:"github_id"`
	AverageEfficiency float64 `db:"average_efficiency"`
}
