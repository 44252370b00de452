package repos

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepositoryProvider
type RepositoryProvider interface {
	Create(ctx context.Context, repository *models.Repository) (uuid.UUID, error)
	GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error)
	List(ctx context.Context, skip, limit int) ([]*models.Repository, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OwnerGetter
type OwnerGetter interface {
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type RepositoryService struct {
	trm          service.TransactionManager
	repositories RepositoryProvider
	owners       OwnerGetter
}

func NewRepositoryService(trm service.TransactionManager, repositories RepositoryProvider, owners OwnerGetter) *RepositoryService {
	return &RepositoryService{
		trm:          trm,
		repositories: repositories,
		owners:       owners,
	}
}

// Create checks the owning user exists before inserting, every repository
// must reference an existing owner.
func (s *RepositoryService) Create(ctx context.Context, githubRepoID string, ownerID uuid.UUID) (*api.RepositorySchema, error) {
	repository := &models.Repository{
		GithubRepoID: githubRepoID,
		OwnerID:      ownerID,
	}

	resp := &api.RepositorySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.owners.GetById(ctx, ownerID); err != nil {
			return err
		}

		repoID, err := s.repositories.Create(ctx, repository)
		if err != nil {
			return err
		}

		resp.ID = repoID.String()
		resp.GithubRepoID = githubRepoID
		resp.OwnerID = ownerID.String()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *RepositoryService) Get(ctx context.Context, repoID uuid.UUID) (*api.RepositorySchema, error) {
	resp := &api.RepositorySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		repository, err := s.repositories.GetById(ctx, repoID)
		if err != nil {
			return err
		}

		*resp = toRepositorySchema(repository)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *RepositoryService) List(ctx context.Context, skip, limit int) ([]api.RepositorySchema, error) {
	resp := []api.RepositorySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		repositories, err := s.repositories.List(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, r := range repositories {
			resp = append(resp, toRepositorySchema(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toRepositorySchema(r *models.Repository) api.RepositorySchema {
	return api.RepositorySchema{
		ID:           r.ID.String(),
		GithubRepoID: r.GithubRepoID,
		OwnerID:      r.OwnerID.String(),
	}
}
