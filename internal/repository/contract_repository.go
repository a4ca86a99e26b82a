package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error; err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

// ListContractsForProfile returns every non-terminated contract where the
// profile is a party, on either side.
func (r *ContractRepository) ListContractsForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status
		FROM contracts
		WHERE status <> 'terminated'
			AND (client_id = ? OR contractor_id = ?)
		ORDER BY created_at ASC
	`, profileID, profileID).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
