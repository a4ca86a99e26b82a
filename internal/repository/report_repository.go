package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// BestProfession returns the contractor grouping with the highest paid-jobs
// total, optionally bounded by paid_at.
func (r *ReportRepository) BestProfession(ctx context.Context, from, to *time.Time) (*model.ProfessionEarnings, error) {
	baseQuery := `
		SELECT
			p.first_name || ' ' || p.last_name AS contractor,
			p.profession,
			SUM(j.price) AS amount_paid
		FROM profiles p
		JOIN contracts c ON c.contractor_id = p.id
		JOIN jobs j ON j.contract_id = c.id
		WHERE j.paid
	`
	baseQuery, args := appendPaidAtFilter(baseQuery, nil, from, to)
	baseQuery += `
		GROUP BY p.id, p.first_name, p.last_name, p.profession
		ORDER BY amount_paid DESC
		LIMIT 1
	`

	var rows []model.ProfessionEarnings
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// BestClient returns the client grouping with the highest paid-jobs total,
// optionally bounded by paid_at.
func (r *ReportRepository) BestClient(ctx context.Context, from, to *time.Time) (*model.ClientSpending, error) {
	baseQuery := `
		SELECT
			p.first_name || ' ' || p.last_name AS client,
			p.profession,
			SUM(j.price) AS amount_paid
		FROM profiles p
		JOIN contracts c ON c.client_id = p.id
		JOIN jobs j ON j.contract_id = c.id
		WHERE j.paid
	`
	baseQuery, args := appendPaidAtFilter(baseQuery, nil, from, to)
	baseQuery += `
		GROUP BY p.id, p.first_name, p.last_name, p.profession
		ORDER BY amount_paid DESC
		LIMIT 1
	`

	var rows []model.ClientSpending
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// ContractorEarnings lists every contractor's paid-jobs total, highest
// first, for the earnings export.
func (r *ReportRepository) ContractorEarnings(ctx context.Context, from, to *time.Time) ([]model.ProfessionEarnings, error) {
	baseQuery := `
		SELECT
			p.first_name || ' ' || p.last_name AS contractor,
			p.profession,
			SUM(j.price) AS amount_paid
		FROM profiles p
		JOIN contracts c ON c.contractor_id = p.id
		JOIN jobs j ON j.contract_id = c.id
		WHERE j.paid
	`
	baseQuery, args := appendPaidAtFilter(baseQuery, nil, from, to)
	baseQuery += `
		GROUP BY p.id, p.first_name, p.last_name, p.profession
		ORDER BY amount_paid DESC
	`

	var rows []model.ProfessionEarnings
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func appendPaidAtFilter(baseQuery string, args []interface{}, from, to *time.Time) (string, []interface{}) {
	if from != nil {
		baseQuery += " AND j.paid_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		baseQuery += " AND j.paid_at < ?"
		args = append(args, *to)
	}
	return baseQuery, args
}
