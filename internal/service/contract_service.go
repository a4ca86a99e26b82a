package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListContractsForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error)
}

type JobStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error)
	ListUnpaidJobs(ctx context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error)
}

type ContractService struct {
	contracts ContractStore
	jobs      JobStore
}

func NewContractService(contracts ContractStore, jobs JobStore) *ContractService {
	return &ContractService{contracts: contracts, jobs: jobs}
}

// GetContract fetches a contract by id. Callers that are not a party to the
// contract get the same ErrNotFound as a missing row, so the response does
// not leak which contract ids exist.
func (s *ContractService) GetContract(ctx context.Context, caller model.Profile, contractID uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.GetContract(ctx, contractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !contract.HasParticipant(caller.ID) {
		return nil, ErrNotFound
	}
	return contract, nil
}

func (s *ContractService) ListContracts(ctx context.Context, caller model.Profile) ([]model.Contract, error) {
	return s.contracts.ListContractsForProfile(ctx, caller.ID)
}

func (s *ContractService) ListUnpaidJobs(ctx context.Context, caller model.Profile) ([]model.UnpaidJob, error) {
	return s.jobs.ListUnpaidJobs(ctx, caller.ID)
}
