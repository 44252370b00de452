package progress

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProgressProvider
type ProgressProvider interface {
	CreateImage(ctx context.Context, image *models.ProgressImage) (uuid.UUID, error)
	GetImageById(ctx context.Context, imageID uuid.UUID) (*models.ProgressImage, error)
	ListImages(ctx context.Context, skip, limit int) ([]*models.ProgressImage, error)

	CreateReport(ctx context.Context, report *models.ProgressReport) (uuid.UUID, error)
	GetLatestReport(ctx context.Context, repositoryID uuid.UUID) (*models.ProgressReport, error)
	ListReports(ctx context.Context, repositoryID uuid.UUID, skip, limit int) ([]*models.ProgressReport, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepoGetter
type RepoGetter interface {
	GetById(ctx context.Context, repoID uuid.UUID) (*models.Repository, error)
}

type ProgressService struct {
	trm          service.TransactionManager
	progress     ProgressProvider
	repositories RepoGetter
}

func NewProgressService(trm service.TransactionManager, progress ProgressProvider, repositories RepoGetter) *ProgressService {
	return &ProgressService{
		trm:          trm,
		progress:     progress,
		repositories: repositories,
	}
}

func (s *ProgressService) CreateImage(ctx context.Context, repositoryID uuid.UUID, imageURL string) (*api.ProgressImageSchema, error) {
	image := &models.ProgressImage{
		RepositoryID: repositoryID,
		ImageURL:     imageURL,
	}

	resp := &api.ProgressImageSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repositories.GetById(ctx, repositoryID); err != nil {
			return err
		}

		imageID, err := s.progress.CreateImage(ctx, image)
		if err != nil {
			return err
		}

		resp.ID = imageID.String()
		resp.RepositoryID = repositoryID.String()
		resp.ImageURL = imageURL
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ProgressService) GetImage(ctx context.Context, imageID uuid.UUID) (*api.ProgressImageSchema, error) {
	resp := &api.ProgressImageSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		image, err := s.progress.GetImageById(ctx, imageID)
		if err != nil {
			return err
		}

		resp.ID = image.ID.String()
		resp.RepositoryID = image.RepositoryID.String()
		resp.ImageURL = image.ImageURL
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ProgressService) ListImages(ctx context.Context, skip, limit int) ([]api.ProgressImageSchema, error) {
	resp := []api.ProgressImageSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		images, err := s.progress.ListImages(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, img := range images {
			resp = append(resp, api.ProgressImageSchema{
				ID:           img.ID.String(),
				RepositoryID: img.RepositoryID.String(),
				ImageURL:     img.ImageURL,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ProgressService) CreateReport(ctx context.Context, repositoryID uuid.UUID, report string) (*api.ProgressReportSchema, error) {
	rec := &models.ProgressReport{
		RepositoryID: repositoryID,
		Report:       report,
	}

	resp := &api.ProgressReportSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repositories.GetById(ctx, repositoryID); err != nil {
			return err
		}

		reportID, err := s.progress.CreateReport(ctx, rec)
		if err != nil {
			return err
		}

		resp.ID = reportID.String()
		resp.RepositoryID = repositoryID.String()
		resp.Report = report
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ProgressService) LatestReport(ctx context.Context, repositoryID uuid.UUID) (*api.ProgressReportSchema, error) {
	resp := &api.ProgressReportSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		report, err := s.progress.GetLatestReport(ctx, repositoryID)
		if err != nil {
			return err
		}

		*resp = toReportSchema(report)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ProgressService) ListReports(ctx context.Context, repositoryID uuid.UUID, skip, limit int) ([]api.ProgressReportSchema, error) {
	resp := []api.ProgressReportSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		reports, err := s.progress.ListReports(ctx, repositoryID, skip, limit)
		if err != nil {
			return err
		}

		for _, r := range reports {
			resp = append(resp, toReportSchema(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toReportSchema(r *models.ProgressReport) api.ProgressReportSchema {
	return api.ProgressReportSchema{
		ID:           r.ID.String(),
		RepositoryID: r.RepositoryID.String(),
		Report:       r.Report,
		CreatedAt:    r.CreatedAt,
	}
}
