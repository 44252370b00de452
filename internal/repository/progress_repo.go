package repo

import (
	"context"
	"database/sql"
	"errors"

	"devpulse/internal/lib"
	"devpulse/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProgressRepository interface {
	CreateImage(ctx context.Context, image *models.ProgressImage) (uuid.UUID, error)
	GetImageById(ctx context.Context, imageID uuid.UUID) (*models.ProgressImage, error)
	ListImages(ctx context.Context, skip, limit int) ([]*models.ProgressImage, error)

	CreateReport(ctx context.Context, report *models.ProgressReport) (uuid.UUID, error)
	GetLatestReport(ctx context.Context, repositoryID uuid.UUID) (*models.ProgressReport, error)
	ListReports(ctx context.Context, repositoryID uuid.UUID, skip, limit int) ([]*models.ProgressReport, error)
}

type ProgressRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewProgressRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ProgressRepo {
	return &ProgressRepo{
		db:     db,
		getter: c,
	}
}

func (r *ProgressRepo) CreateImage(ctx context.Context, image *models.ProgressImage) (uuid.UUID, error) {
	const op = "progress_repo.CreateImage"

	query := `
		INSERT INTO project_progress_images (id, repository_id, image_url, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var imageID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), image.RepositoryID, image.ImageURL).Scan(&imageID)
	if err != nil {
		return uuid.Nil, lib.Err(op, err)
	}

	return imageID, nil
}

func (r *ProgressRepo) GetImageById(ctx context.Context, imageID uuid.UUID) (*models.ProgressImage, error) {
	const op = "progress_repo.GetImageById"

	query := `
		SELECT id, repository_id, image_url, created_at
		FROM project_progress_images
		WHERE id = $1;
	`

	var image models.ProgressImage
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &image, nil
}

func (r *ProgressRepo) ListImages(ctx context.Context, skip, limit int) ([]*models.ProgressImage, error) {
	const op = "progress_repo.ListImages"

	query := `
		SELECT id, repository_id, image_url, created_at
		FROM project_progress_images
		ORDER BY created_at
		OFFSET $1 LIMIT $2;
	`

	var images []*models.ProgressImage
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &images, query, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ProgressImage{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return images, nil
}

func (r *ProgressRepo) CreateReport(ctx context.Context, report *models.ProgressReport) (uuid.UUID, error) {
	const op = "progress_repo.CreateReport"

	query := `
		INSERT INTO project_progress_reports (id, repository_id, report, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var reportID uuid.UUID
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, uuid.New(), report.RepositoryID, report.Report).Scan(&reportID)
	if err != nil {
		return uuid.Nil, lib.Err(op, err)
	}

	return reportID, nil
}

func (r *ProgressRepo) GetLatestReport(ctx context.Context, repositoryID uuid.UUID) (*models.ProgressReport, error) {
	const op = "progress_repo.GetLatestReport"

	query := `
		SELECT id, repository_id, report, created_at
		FROM project_progress_reports
		WHERE repository_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var report models.ProgressReport
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &report, query, repositoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &report, nil
}

func (r *ProgressRepo) ListReports(ctx context.Context, repositoryID uuid.UUID, skip, limit int) ([]*models.ProgressReport, error) {
	const op = "progress_repo.ListReports"

	query := `
		SELECT id, repository_id, report, created_at
		FROM project_progress_reports
		WHERE repository_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3;
	`

	var reports []*models.ProgressReport
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &reports, query, repositoryID, skip, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ProgressReport{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return reports, nil
}
