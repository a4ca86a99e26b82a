package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, description, price, paid, paid_at
		FROM jobs
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&job).Error; err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

// ListUnpaidJobs flattens the unpaid jobs under the profile's in_progress
// contracts, on either side of the contract.
func (r *JobRepository) ListUnpaidJobs(ctx context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error) {
	var jobs []model.UnpaidJob
	if err := r.db.WithContext(ctx).Raw(`
		SELECT j.id AS job_id, j.price
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE NOT j.paid
			AND c.status = 'in_progress'
			AND (c.client_id = ? OR c.contractor_id = ?)
		ORDER BY j.created_at ASC
	`, profileID, profileID).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
