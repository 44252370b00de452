package commit_test

import (
	"context"
	"errors"
	"testing"

	"devpulse/internal/models"
	repo "devpulse/internal/repository"
	c "devpulse/internal/service/commit"
	"devpulse/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func passthroughTRM(t *testing.T, ctx context.Context) *mocks.MockManager {
	t.Helper()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Return(nil).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			_ = fn(ctx)
		}).
		Maybe()

	return mockTRM
}

func TestCommitService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockCommits := mocks.NewCommitProvider(t)
	mockRepos := mocks.NewRepoGetter(t)

	repoID := uuid.New()
	commitID := uuid.New()
	summary := models.Summary{"intent": "fix"}

	mockRepos.On("GetById", ctx, repoID).Return(&models.Repository{ID: repoID}, nil).Once()
	mockCommits.On("Create", ctx, mock.MatchedBy(func(cm *models.Commit) bool {
		return cm.RepoID == repoID && cm.CommitHash == "abc1234" && cm.Efficiency == 0.8
	})).Return(commitID, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	service := c.NewCommitService(mockTRM, mockCommits, mockRepos)
	resp, err := service.Create(ctx, repoID, "abc1234", summary, 0.8)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, commitID.String(), resp.ID)
	assert.Equal(t, repoID.String(), resp.RepoID)
	assert.Equal(t, summary, resp.Summary)
}

func TestCommitService_Create_RepoMissing(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockCommits := mocks.NewCommitProvider(t)
	mockRepos := mocks.NewRepoGetter(t)

	repoID := uuid.New()
	mockRepos.On("GetById", ctx, repoID).Return(nil, repo.ErrNotFound).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			assert.True(t, errors.Is(err, repo.ErrNotFound))
		}).
		Return(repo.ErrNotFound).
		Once()

	service := c.NewCommitService(mockTRM, mockCommits, mockRepos)
	resp, err := service.Create(ctx, repoID, "abc1234", nil, 0.8)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
	mockCommits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommitService_AnalyzeStored_FlaggedBelowThreshold(t *testing.T) {
	ctx := context.Background()

	mockCommits := mocks.NewCommitProvider(t)
	mockRepos := mocks.NewRepoGetter(t)

	stored := &models.Commit{
		ID:         uuid.New(),
		CommitHash: "abc1234",
		Summary:    models.Summary{"intent": "hack"},
		Efficiency: 0.2,
	}
	mockCommits.On("GetByHash", ctx, "abc1234").Return(stored, nil).Once()

	service := c.NewCommitService(passthroughTRM(t, ctx), mockCommits, mockRepos)
	resp, err := service.AnalyzeStored(ctx, "abc1234")

	assert.NoError(t, err)
	assert.True(t, resp.Flagged)
	assert.Equal(t, 0.2, resp.Efficiency)
	assert.Equal(t, stored.Summary, resp.Summary)
}

func TestCommitService_AnalyzeStored_NotFlaggedAtThreshold(t *testing.T) {
	ctx := context.Background()

	mockCommits := mocks.NewCommitProvider(t)
	mockRepos := mocks.NewRepoGetter(t)

	stored := &models.Commit{
		ID:         uuid.New(),
		CommitHash: "abc1234",
		Summary:    models.Summary{"intent": "fine"},
		Efficiency: 0.5,
	}
	mockCommits.On("GetByHash", ctx, "abc1234").Return(stored, nil).Once()

	service := c.NewCommitService(passthroughTRM(t, ctx), mockCommits, mockRepos)
	resp, err := service.AnalyzeStored(ctx, "abc1234")

	assert.NoError(t, err)
	assert.False(t, resp.Flagged)
}

func TestCommitService_AnalyzeStored_NilSummaryFallback(t *testing.T) {
	ctx := context.Background()

	mockCommits := mocks.NewCommitProvider(t)
	mockRepos := mocks.NewRepoGetter(t)

	stored := &models.Commit{
		ID:         uuid.New(),
		CommitHash: "abc1234",
		Efficiency: 0.9,
	}
	mockCommits.On("GetByHash", ctx, "abc1234").Return(stored, nil).Once()

	service := c.NewCommitService(passthroughTRM(t, ctx), mockCommits, mockRepos)
	resp, err := service.AnalyzeStored(ctx, "abc1234")

	assert.NoError(t, err)
	assert.Equal(t, models.Summary{"summary": "No summary available."}, resp.Summary)
}
