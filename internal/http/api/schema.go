package api

import (
	"time"

	"devpulse/internal/models"
)

type UserSchema struct {
	ID       string  `json:"id"`
	GithubID string  `json:"github_id"`
	FcmToken *string `json:"fcm_token,omitempty"`
}

type RepositorySchema struct {
	ID           string `json:"id"`
	GithubRepoID string `json:"github_repo_id"`
	OwnerID      string `json:"owner_id"`
}

type CommitSchema struct {
	ID         string         `json:"id"`
	RepoID     string         `json:"repo_id"`
	CommitHash string         `json:"commit_hash"`
	Summary    models.Summary `json:"summary"`
	Efficiency float64        `json:"efficiency"`
}

type DeveloperSchema struct {
	GithubID          string  `json:"github_id"`
	AverageEfficiency float64 `json:"average_efficiency"`
}

type ProgressImageSchema struct {
	ID           string `json:"id"`
	RepositoryID string `json:"repository_id"`
	ImageURL     string `json:"image_url"`
}

type PullRequestSchema struct {
	ID           string     `json:"id"`
	RepositoryID string     `json:"repository_id"`
	CommitHash   string     `json:"commit_hash"`
	PrURL        string     `json:"pr_url"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type ProgressReportSchema struct {
	ID           string     `json:"id"`
	RepositoryID string     `json:"repository_id"`
	Report       string     `json:"report"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// AnalysisResult is the summary/efficiency/flag triple the AI node produces.
type AnalysisResult struct {
	Summary    models.Summary `json:"summary"`
	Efficiency float64        `json:"efficiency"`
	Flagged    bool           `json:"flagged"`
}

type AnalyzeResponse struct {
	Repo       string         `json:"repo"`
	CommitHash string         `json:"commit_hash"`
	Summary    models.Summary `json:"summary"`
	Efficiency float64        `json:"efficiency"`
	Flagged    bool           `json:"flagged"`
	Analysis   AnalysisResult `json:"analysis"`
}

// CommitAnalysisResponse is the stored-commit view with the flag recomputed
// from the persisted efficiency.
type CommitAnalysisResponse struct {
	CommitHash string         `json:"commit_hash"`
	Summary    models.Summary `json:"summary"`
	Efficiency float64        `json:"efficiency"`
	Flagged    bool           `json:"flagged"`
}

type TrendPoint struct {
	Date          string  `json:"date"`
	AvgEfficiency float64 `json:"avg_efficiency"`
}

type FlaggedCommitsResponse struct {
	FlaggedCommits int `json:"flagged_commits"`
}

type FlaggedPRsResponse struct {
	FlaggedPRs int `json:"flagged_prs"`
}

type CompareEfficiencyResponse struct {
	Developer1  string  `json:"developer_1"`
	Efficiency1 float64 `json:"efficiency_1"`
	Developer2  string  `json:"developer_2"`
	Efficiency2 float64 `json:"efficiency_2"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type WebhookAck struct {
	Msg string `json:"msg"`
}
