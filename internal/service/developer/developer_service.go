package developer

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DeveloperProvider
type DeveloperProvider interface {
	Save(ctx context.Context, developer *models.Developer) (string, error)
	GetByGithubID(ctx context.Context, githubID string) (*models.Developer, error)
	List(ctx context.Context, skip, limit int) ([]*models.Developer, error)
}

type DeveloperService struct {
	trm        service.TransactionManager
	developers DeveloperProvider
}

func NewDeveloperService(trm service.TransactionManager, developers DeveloperProvider) *DeveloperService {
	return &DeveloperService{
		trm:        trm,
		developers: developers,
	}
}

func (s *DeveloperService) Save(ctx context.Context, githubID string, averageEfficiency float64) (*api.DeveloperSchema, error) {
	developer := &models.Developer{
		GithubID:          githubID,
		AverageEfficiency: averageEfficiency,
	}

	resp := &api.DeveloperSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.developers.Save(ctx, developer); err != nil {
			return err
		}

		resp.GithubID = githubID
		resp.AverageEfficiency = averageEfficiency
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *DeveloperService) Get(ctx context.Context, githubID string) (*api.DeveloperSchema, error) {
	resp := &api.DeveloperSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		developer, err := s.developers.GetByGithubID(ctx, githubID)
		if err != nil {
			return err
		}

		resp.GithubID = developer.GithubID
		resp.AverageEfficiency = developer.AverageEfficiency
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *DeveloperService) List(ctx context.Context, skip, limit int) ([]api.DeveloperSchema, error) {
	resp := []api.DeveloperSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		developers, err := s.developers.List(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, d := range developers {
			resp = append(resp, api.DeveloperSchema{
				GithubID:          d.GithubID,
				AverageEfficiency: d.AverageEfficiency,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
