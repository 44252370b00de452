package webhook

import (
	"context"
	"log/slog"
	"strconv"

	"devpulse/internal/ai"
	"devpulse/internal/lib/sl"
	"devpulse/internal/models"

	"github.com/google/uuid"
)

// PushEvent mirrors the subset of the provider's push payload this service
// consumes.
type PushEvent struct {
	Repository PushRepository `json:"repository"`
	Commits    []PushCommit   `json:"commits"`
}

type PushRepository struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type PushCommit struct {
	ID string `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SourceHost
type SourceHost interface {
	GetCommitDiff(ctx context.Context, repoFullName, sha string) (string, error)
	CreatePullRequestForCommit(ctx context.Context, repoFullName, sha, message string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Analyzer
type Analyzer interface {
	AnalyzeCommit(ctx context.Context, repoName, commitHash, diff string) ai.Result
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CommitSaver
type CommitSaver interface {
	Create(ctx context.Context, commit *models.Commit) (uuid.UUID, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PrSaver
type PrSaver interface {
	Create(ctx context.Context, pr *models.PullRequest) (uuid.UUID, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepoResolver
type RepoResolver interface {
	GetByGithubRepoID(ctx context.Context, githubRepoID string) (*models.Repository, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OwnerGetter
type OwnerGetter interface {
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Pusher
type Pusher interface {
	SendPush(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}

// WebhookService is the one place where diff fetching, AI analysis,
// persistence, PR creation and notification compose. Deliberately
// non-transactional: a persisted commit is not rolled back when a later
// step fails.
type WebhookService struct {
	log          *slog.Logger
	source       SourceHost
	analyzer     Analyzer
	commits      CommitSaver
	prs          PrSaver
	repositories RepoResolver
	owners       OwnerGetter
	pusher       Pusher
}

func NewWebhookService(
	log *slog.Logger,
	source SourceHost,
	analyzer Analyzer,
	commits CommitSaver,
	prs PrSaver,
	repositories RepoResolver,
	owners OwnerGetter,
	pusher Pusher,
) *WebhookService {
	return &WebhookService{
		log:          log,
		source:       source,
		analyzer:     analyzer,
		commits:      commits,
		prs:          prs,
		repositories: repositories,
		owners:       owners,
		pusher:       pusher,
	}
}

// ProcessPush handles one push delivery. Commits are processed sequentially,
// a failing step for one commit never aborts the remaining ones.
func (s *WebhookService) ProcessPush(ctx context.Context, ev PushEvent) {
	log := s.log.With(slog.String("repo", ev.Repository.FullName))

	repository, err := s.repositories.GetByGithubRepoID(ctx, strconv.FormatInt(ev.Repository.ID, 10))
	if err != nil {
		log.Warn("push for unregistered repository, skipping delivery", sl.Err(err))
		return
	}

	for _, commit := range ev.Commits {
		diff, err := s.source.GetCommitDiff(ctx, ev.Repository.FullName, commit.ID)
		if err != nil {
			log.Error("failed to fetch diff, continuing with empty diff", sl.Err(err))
			diff = ""
		}

		result := s.analyzer.AnalyzeCommit(ctx, ev.Repository.FullName, commit.ID, diff)

		_, err = s.commits.Create(ctx, &models.Commit{
			RepoID:     repository.ID,
			CommitHash: commit.ID,
			Summary:    result.Summary,
			Efficiency: result.Efficiency,
		})
		if err != nil {
			log.Error("failed to persist commit", sl.Err(err), slog.String("commit", commit.ID))
			continue
		}

		if result.Flagged {
			s.handleFlagged(ctx, log, repository, ev.Repository.FullName, commit.ID)
		}
	}
}

// handleFlagged opens a review PR and notifies the repository owner. Any
// failure here is logged and swallowed so the remaining commits of the
// delivery still get processed.
func (s *WebhookService) handleFlagged(ctx context.Context, log *slog.Logger, repository *models.Repository, repoFullName, commitHash string) {
	prURL, err := s.source.CreatePullRequestForCommit(ctx, repoFullName, commitHash, "AI flagged this commit for review.")
	if err != nil {
		log.Error("failed to create pull request for flagged commit", sl.Err(err), slog.String("commit", commitHash))
		return
	}

	if _, err := s.prs.Create(ctx, &models.PullRequest{
		RepositoryID: repository.ID,
		CommitHash:   commitHash,
		PrURL:        prURL,
		Status:       "open",
	}); err != nil {
		log.Error("failed to persist pull request", sl.Err(err), slog.String("commit", commitHash))
		return
	}

	if s.pusher == nil {
		return
	}

	owner, err := s.owners.GetById(ctx, repository.OwnerID)
	if err != nil {
		log.Error("failed to load repository owner", sl.Err(err))
		return
	}
	if owner.FcmToken == nil || *owner.FcmToken == "" {
		return
	}

	_, err = s.pusher.SendPush(ctx,
		*owner.FcmToken,
		"AI-Flagged Commit: PR Created",
		"A PR was created for flagged commit "+shortHash(commitHash)+" in "+repoFullName+".",
		map[string]string{"pr_url": prURL},
	)
	if err != nil {
		log.Error("failed to send push notification", sl.Err(err))
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
