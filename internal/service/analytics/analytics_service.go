package analytics

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatsProvider
type StatsProvider interface {
	EfficiencyTrendForDeveloper(ctx context.Context, githubID string, days int) ([]*models.TrendPoint, error)
	EfficiencyTrendForRepo(ctx context.Context, repoID uuid.UUID, days int) ([]*models.TrendPoint, error)
	FlaggedCommitsCountByRepo(ctx context.Context, repoID uuid.UUID) (int, error)
	FlaggedCommitsCountByDeveloper(ctx context.Context, githubID string) (int, error)
	FlaggedPRsCount(ctx context.Context, repoID uuid.UUID) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DeveloperGetter
type DeveloperGetter interface {
	GetByGithubID(ctx context.Context, githubID string) (*models.Developer, error)
}

type AnalyticsService struct {
	trm        service.TransactionManager
	stats      StatsProvider
	developers DeveloperGetter
}

func NewAnalyticsService(trm service.TransactionManager, stats StatsProvider, developers DeveloperGetter) *AnalyticsService {
	return &AnalyticsService{
		trm:        trm,
		stats:      stats,
		developers: developers,
	}
}

func (s *AnalyticsService) TrendForDeveloper(ctx context.Context, githubID string, days int) ([]api.TrendPoint, error) {
	points, err := s.stats.EfficiencyTrendForDeveloper(ctx, githubID, days)
	if err != nil {
		return nil, err
	}
	return toTrendPoints(points), nil
}

func (s *AnalyticsService) TrendForRepo(ctx context.Context, repoID uuid.UUID, days int) ([]api.TrendPoint, error) {
	points, err := s.stats.EfficiencyTrendForRepo(ctx, repoID, days)
	if err != nil {
		return nil, err
	}
	return toTrendPoints(points), nil
}

func (s *AnalyticsService) FlaggedCommitsByRepo(ctx context.Context, repoID uuid.UUID) (*api.FlaggedCommitsResponse, error) {
	count, err := s.stats.FlaggedCommitsCountByRepo(ctx, repoID)
	if err != nil {
		return nil, err
	}
	return &api.FlaggedCommitsResponse{FlaggedCommits: count}, nil
}

func (s *AnalyticsService) FlaggedCommitsByDeveloper(ctx context.Context, githubID string) (*api.FlaggedCommitsResponse, error) {
	count, err := s.stats.FlaggedCommitsCountByDeveloper(ctx, githubID)
	if err != nil {
		return nil, err
	}
	return &api.FlaggedCommitsResponse{FlaggedCommits: count}, nil
}

func (s *AnalyticsService) FlaggedPRs(ctx context.Context, repoID uuid.UUID) (*api.FlaggedPRsResponse, error) {
	count, err := s.stats.FlaggedPRsCount(ctx, repoID)
	if err != nil {
		return nil, err
	}
	return &api.FlaggedPRsResponse{FlaggedPRs: count}, nil
}

// CompareEfficiency reads both developer aggregates inside one transaction
// so the comparison is taken from a single snapshot.
func (s *AnalyticsService) CompareEfficiency(ctx context.Context, githubID1, githubID2 string) (*api.CompareEfficiencyResponse, error) {
	resp := &api.CompareEfficiencyResponse{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		dev1, err := s.developers.GetByGithubID(ctx, githubID1)
		if err != nil {
			return err
		}

		dev2, err := s.developers.GetByGithubID(ctx, githubID2)
		if err != nil {
			return err
		}

		resp.Developer1 = dev1.GithubID
		resp.Efficiency1 = dev1.AverageEfficiency
		resp.Developer2 = dev2.GithubID
		resp.Efficiency2 = dev2.AverageEfficiency
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toTrendPoints(points []*models.TrendPoint) []api.TrendPoint {
	resp := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		resp = append(resp, api.TrendPoint{
			Date:          p.Day.Format("2006-01-02"),
			AvgEfficiency: p.AvgEfficiency,
		})
	}
	return resp
}
