package pullrequest

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PrProvider
type PrProvider interface {
	Create(ctx context.Context, pr *models.PullRequest) (uuid.UUID, error)
	GetById(ctx context.Context, prID uuid.UUID) (*models.PullRequest, error)
	GetByCommitHash(ctx context.Context, commitHash string) (*models.PullRequest, error)
	List(ctx context.Context, skip, limit int) ([]*models.PullRequest, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepoGetter
type RepoGetter interface {
	GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error)
}

type PullRequestService struct {
	trm          service.TransactionManager
	prs          PrProvider
	repositories RepoGetter
}

func NewPullRequestService(trm service.TransactionManager, prs PrProvider, repositories RepoGetter) *PullRequestService {
	return &PullRequestService{
		trm:          trm,
		prs:          prs,
		repositories: repositories,
	}
}

func (s *PullRequestService) Create(ctx context.Context, repositoryID uuid.UUID, commitHash, prURL, status string) (*api.PullRequestSchema, error) {
	pr := &models.PullRequest{
		RepositoryID: repositoryID,
		CommitHash:   commitHash,
		PrURL:        prURL,
		Status:       status,
	}

	resp := &api.PullRequestSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repositories.GetById(ctx, repositoryID); err != nil {
			return err
		}

		prID, err := s.prs.Create(ctx, pr)
		if err != nil {
			return err
		}

		created, err := s.prs.GetById(ctx, prID)
		if err != nil {
			return err
		}

		*resp = toPullRequestSchema(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PullRequestService) Get(ctx context.Context, prID uuid.UUID) (*api.PullRequestSchema, error) {
	resp := &api.PullRequestSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		pr, err := s.prs.GetById(ctx, prID)
		if err != nil {
			return err
		}

		*resp = toPullRequestSchema(pr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByCommit returns the most recent pull request opened for the commit.
func (s *PullRequestService) GetByCommit(ctx context.Context, commitHash string) (*api.PullRequestSchema, error) {
	resp := &api.PullRequestSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		pr, err := s.prs.GetByCommitHash(ctx, commitHash)
		if err != nil {
			return err
		}

		*resp = toPullRequestSchema(pr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PullRequestService) List(ctx context.Context, skip, limit int) ([]api.PullRequestSchema, error) {
	resp := []api.PullRequestSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		prs, err := s.prs.List(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, pr := range prs {
			resp = append(resp, toPullRequestSchema(pr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toPullRequestSchema(pr *models.PullRequest) api.PullRequestSchema {
	return api.PullRequestSchema{
		ID:           pr.ID.String(),
		RepositoryID: pr.RepositoryID.String(),
		CommitHash:   pr.CommitHash,
		PrURL:        pr.PrURL,
		Status:       pr.Status,
		CreatedAt:    pr.CreatedAt,
	}
}
