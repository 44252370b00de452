package webhook_test

import (
	"context"
	"errors"
	"testing"

	"devpulse/internal/ai"
	"devpulse/internal/lib/sl"
	"devpulse/internal/models"
	repo "devpulse/internal/repository"
	"devpulse/internal/service/mocks"
	"devpulse/internal/service/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func pushEvent(commits ...string) webhook.PushEvent {
	ev := webhook.PushEvent{
		Repository: webhook.PushRepository{ID: 42, FullName: "octocat/hello"},
	}
	for _, c := range commits {
		ev.Commits = append(ev.Commits, webhook.PushCommit{ID: c})
	}
	return ev
}

func okResult(efficiency float64, flagged bool) ai.Result {
	return ai.Result{
		Summary:    models.Summary{"intent": "test"},
		Efficiency: efficiency,
		Flagged:    flagged,
	}
}

func TestWebhookService_ProcessPush_SavesCommit(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)

	repository := &models.Repository{ID: uuid.New(), GithubRepoID: "42"}
	repositories.On("GetByGithubRepoID", ctx, "42").Return(repository, nil).Once()
	source.On("GetCommitDiff", ctx, "octocat/hello", "abc1234").Return("+added line", nil).Once()
	analyzer.On("AnalyzeCommit", ctx, "octocat/hello", "abc1234", "+added line").
		Return(okResult(0.9, false)).Once()
	commits.On("Create", ctx, mock.MatchedBy(func(c *models.Commit) bool {
		return c.RepoID == repository.ID && c.CommitHash == "abc1234" && c.Efficiency == 0.9
	})).Return(uuid.New(), nil).Once()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, nil)
	s.ProcessPush(ctx, pushEvent("abc1234"))
}

func TestWebhookService_ProcessPush_UnregisteredRepoSkipsDelivery(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)

	repositories.On("GetByGithubRepoID", ctx, "42").Return(nil, repo.ErrNotFound).Once()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, nil)
	s.ProcessPush(ctx, pushEvent("abc1234"))

	source.AssertNotCalled(t, "GetCommitDiff", mock.Anything, mock.Anything, mock.Anything)
	commits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookService_ProcessPush_DiffErrorContinuesWithEmptyDiff(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)

	repository := &models.Repository{ID: uuid.New(), GithubRepoID: "42"}
	repositories.On("GetByGithubRepoID", ctx, "42").Return(repository, nil).Once()
	source.On("GetCommitDiff", ctx, "octocat/hello", "abc1234").Return("", errors.New("api down")).Once()
	analyzer.On("AnalyzeCommit", ctx, "octocat/hello", "abc1234", "").
		Return(okResult(0.8, false)).Once()
	commits.On("Create", ctx, mock.Anything).Return(uuid.New(), nil).Once()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, nil)
	s.ProcessPush(ctx, pushEvent("abc1234"))
}

func TestWebhookService_ProcessPush_FlaggedCreatesPRAndNotifies(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)
	pusher := mocks.NewPusher(t)

	ownerID := uuid.New()
	repository := &models.Repository{ID: uuid.New(), GithubRepoID: "42", OwnerID: ownerID}
	fcmToken := "fcm-token"
	owner := &models.User{ID: ownerID, GithubID: "octocat", FcmToken: &fcmToken}

	repositories.On("GetByGithubRepoID", ctx, "42").Return(repository, nil).Once()
	source.On("GetCommitDiff", ctx, "octocat/hello", "deadbeef123").Return("-good\n+bad", nil).Once()
	analyzer.On("AnalyzeCommit", ctx, "octocat/hello", "deadbeef123", "-good\n+bad").
		Return(okResult(0.2, true)).Once()
	commits.On("Create", ctx, mock.Anything).Return(uuid.New(), nil).Once()
	source.On("CreatePullRequestForCommit", ctx, "octocat/hello", "deadbeef123", "AI flagged this commit for review.").
		Return("https://github.com/octocat/hello/pull/1", nil).Once()
	prs.On("Create", ctx, mock.MatchedBy(func(pr *models.PullRequest) bool {
		return pr.RepositoryID == repository.ID &&
			pr.CommitHash == "deadbeef123" &&
			pr.PrURL == "https://github.com/octocat/hello/pull/1" &&
			pr.Status == "open"
	})).Return(uuid.New(), nil).Once()
	owners.On("GetById", ctx, ownerID).Return(owner, nil).Once()
	pusher.On("SendPush", ctx, fcmToken,
		"AI-Flagged Commit: PR Created",
		"A PR was created for flagged commit deadbee in octocat/hello.",
		map[string]string{"pr_url": "https://github.com/octocat/hello/pull/1"},
	).Return("msg-id", nil).Once()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, pusher)
	s.ProcessPush(ctx, pushEvent("deadbeef123"))
}

func TestWebhookService_ProcessPush_PRFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)

	repository := &models.Repository{ID: uuid.New(), GithubRepoID: "42"}
	repositories.On("GetByGithubRepoID", ctx, "42").Return(repository, nil).Once()
	source.On("GetCommitDiff", ctx, "octocat/hello", mock.Anything).Return("diff", nil).Twice()
	analyzer.On("AnalyzeCommit", ctx, "octocat/hello", mock.Anything, "diff").
		Return(okResult(0.1, true)).Twice()
	commits.On("Create", ctx, mock.Anything).Return(uuid.New(), nil).Twice()
	source.On("CreatePullRequestForCommit", ctx, "octocat/hello", mock.Anything, mock.Anything).
		Return("", errors.New("no bot token")).Twice()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, nil)
	s.ProcessPush(ctx, pushEvent("aaa1111", "bbb2222"))

	prs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookService_ProcessPush_OwnerWithoutTokenGetsNoPush(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewSourceHost(t)
	analyzer := mocks.NewAnalyzer(t)
	commits := mocks.NewCommitSaver(t)
	prs := mocks.NewPrSaver(t)
	repositories := mocks.NewRepoResolver(t)
	owners := mocks.NewOwnerGetter(t)
	pusher := mocks.NewPusher(t)

	ownerID := uuid.New()
	repository := &models.Repository{ID: uuid.New(), GithubRepoID: "42", OwnerID: ownerID}
	owner := &models.User{ID: ownerID, GithubID: "octocat"}

	repositories.On("GetByGithubRepoID", ctx, "42").Return(repository, nil).Once()
	source.On("GetCommitDiff", ctx, "octocat/hello", "abc1234").Return("diff", nil).Once()
	analyzer.On("AnalyzeCommit", ctx, "octocat/hello", "abc1234", "diff").
		Return(okResult(0.2, true)).Once()
	commits.On("Create", ctx, mock.Anything).Return(uuid.New(), nil).Once()
	source.On("CreatePullRequestForCommit", ctx, "octocat/hello", "abc1234", mock.Anything).
		Return("https://github.com/octocat/hello/pull/2", nil).Once()
	prs.On("Create", ctx, mock.Anything).Return(uuid.New(), nil).Once()
	owners.On("GetById", ctx, ownerID).Return(owner, nil).Once()

	s := webhook.NewWebhookService(sl.NewDiscardLogger(), source, analyzer, commits, prs, repositories, owners, pusher)
	s.ProcessPush(ctx, pushEvent("abc1234"))

	pusher.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
