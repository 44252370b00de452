package commit

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	repo "devpulse/internal/repository"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CommitProvider
type CommitProvider interface {
	Create(ctx context.Context, commit *models.Commit) (uuid.UUID, error)
	GetById(ctx context.Context, commitID uuid.UUID) (*models.Commit, error)
	GetByHash(ctx context.Context, commitHash string) (*models.Commit, error)
	List(ctx context.Context, skip, limit int) ([]*models.Commit, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepoGetter
type RepoGetter interface {
	GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error)
}

type CommitService struct {
	trm          service.TransactionManager
	commits      CommitProvider
	repositories RepoGetter
}

func NewCommitService(trm service.TransactionManager, commits CommitProvider, repositories RepoGetter) *CommitService {
	return &CommitService{
		trm:          trm,
		commits:      commits,
		repositories: repositories,
	}
}

func (s *CommitService) Create(ctx context.Context, repoID uuid.UUID, commitHash string, summary models.Summary, efficiency float64) (*api.CommitSchema, error) {
	commit := &models.Commit{
		RepoID:     repoID,
		CommitHash: commitHash,
		Summary:    summary,
		Efficiency: efficiency,
	}

	resp := &api.CommitSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repositories.GetById(ctx, repoID); err != nil {
			return err
		}

		commitID, err := s.commits.Create(ctx, commit)
		if err != nil {
			return err
		}

		commit.ID = commitID
		*resp = toCommitSchema(commit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *CommitService) Get(ctx context.Context, commitID uuid.UUID) (*api.CommitSchema, error) {
	resp := &api.CommitSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		commit, err := s.commits.GetById(ctx, commitID)
		if err != nil {
			return err
		}

		*resp = toCommitSchema(commit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *CommitService) List(ctx context.Context, skip, limit int) ([]api.CommitSchema, error) {
	resp := []api.CommitSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		commits, err := s.commits.List(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, c := range commits {
			resp = append(resp, toCommitSchema(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AnalyzeStored looks up a persisted commit by hash and recomputes the flag
// from its stored efficiency. The flag is never persisted.
func (s *CommitService) AnalyzeStored(ctx context.Context, commitHash string) (*api.CommitAnalysisResponse, error) {
	resp := &api.CommitAnalysisResponse{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		commit, err := s.commits.GetByHash(ctx, commitHash)
		if err != nil {
			return err
		}

		summary := commit.Summary
		if summary == nil {
			summary = models.Summary{"summary": "No summary available."}
		}

		resp.CommitHash = commitHash
		resp.Summary = summary
		resp.Efficiency = commit.Efficiency
		resp.Flagged = commit.Efficiency < repo.FlaggedThreshold
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toCommitSchema(c *models.Commit) api.CommitSchema {
	return api.CommitSchema{
		ID:         c.ID.String(),
		RepoID:     c.RepoID.String(),
		CommitHash: c.CommitHash,
		Summary:    c.Summary,
		Efficiency: c.Efficiency,
	}
}
