package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/config"
	"github.com/nurpe/jobmarket/internal/model"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
}

type BillingStore interface {
	PayJob(ctx context.Context, jobID uuid.UUID) (model.PayOutcome, error)
	Deposit(ctx context.Context, profileID uuid.UUID, amount, capRatio float64) (model.DepositOutcome, error)
}

type ReceiptGenerator interface {
	Generate(receipt model.PaymentReceipt) ([]byte, error)
}

type BillingService struct {
	jobs      JobStore
	contracts ContractStore
	profiles  ProfileStore
	billing   BillingStore
	pdf       ReceiptGenerator
	capRatio  float64
}

func NewBillingService(
	jobs JobStore,
	contracts ContractStore,
	profiles ProfileStore,
	billing BillingStore,
	pdf ReceiptGenerator,
	cfg *config.Config,
) *BillingService {
	return &BillingService{
		jobs:      jobs,
		contracts: contracts,
		profiles:  profiles,
		billing:   billing,
		pdf:       pdf,
		capRatio:  cfg.Billing.DepositCapRatio,
	}
}

// PayJob runs the payment sequence for one job. Only the contract's client
// may pay. Already-paid and insufficient-balance are outcomes, not errors:
// the balance transfer and the paid flag commit together or not at all.
func (s *BillingService) PayJob(ctx context.Context, caller model.Profile, jobID uuid.UUID) (model.PayOutcome, error) {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return "", err
	}

	contract, err := s.contracts.GetContract(ctx, job.ContractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: contract for job %s", ErrNotFound, jobID)
		}
		return "", err
	}
	if caller.ID != contract.ClientID {
		return "", fmt.Errorf("%w: only the contract client may pay", ErrPermissionDenied)
	}

	if job.Paid {
		return model.PayOutcomeAlreadyPaid, nil
	}

	outcome, err := s.billing.PayJob(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return "", err
	}
	return outcome, nil
}

// Deposit adds funds to the caller's own balance. Contractor targets and
// deposits above the unpaid-jobs cap are outcomes reported to the caller
// without mutation.
func (s *BillingService) Deposit(ctx context.Context, caller model.Profile, targetID uuid.UUID, amount float64) (model.DepositOutcome, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if caller.ID != targetID {
		return "", fmt.Errorf("%w: deposits are limited to the caller's own balance", ErrPermissionDenied)
	}

	outcome, err := s.billing.Deposit(ctx, targetID, amount, s.capRatio)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: profile %s", ErrNotFound, targetID)
		}
		return "", err
	}
	return outcome, nil
}

type ReceiptResult struct {
	FileName string
	Content  []byte
}

// Receipt renders the payment receipt PDF for a paid job. Either party to
// the contract may download it.
func (s *BillingService) Receipt(ctx context.Context, caller model.Profile, jobID uuid.UUID) (*ReceiptResult, error) {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, err
	}

	contract, err := s.contracts.GetContract(ctx, job.ContractID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: contract for job %s", ErrNotFound, jobID)
		}
		return nil, err
	}
	if !contract.HasParticipant(caller.ID) {
		return nil, fmt.Errorf("%w: receipt is limited to contract parties", ErrPermissionDenied)
	}
	if !job.Paid {
		return nil, fmt.Errorf("%w: job %s has no payment receipt", ErrNotFound, jobID)
	}

	client, err := s.profiles.GetProfile(ctx, contract.ClientID)
	if err != nil {
		return nil, err
	}
	contractor, err := s.profiles.GetProfile(ctx, contract.ContractorID)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.PaymentReceipt{
		Job:        *job,
		Contract:   *contract,
		Client:     *client,
		Contractor: *contractor,
	})
	if err != nil {
		return nil, err
	}

	return &ReceiptResult{
		FileName: fmt.Sprintf("receipt-%s.pdf", job.ID),
		Content:  content,
	}, nil
}
