package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

// PayJob moves the job price from the client balance to the contractor
// balance and marks the job paid, all inside one transaction. The job row
// and both profile rows are locked FOR UPDATE so concurrent pay attempts on
// the same job serialize: the loser of the race re-reads paid = true and
// short-circuits without touching balances.
func (r *BillingRepository) PayJob(ctx context.Context, jobID uuid.UUID) (model.PayOutcome, error) {
	var outcome model.PayOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job struct {
			ID         uuid.UUID
			ContractID uuid.UUID
			Price      float64
			Paid       bool
		}
		if err := tx.Raw(`
			SELECT id, contract_id, price, paid
			FROM jobs
			WHERE id = ?
			FOR UPDATE
		`, jobID).Scan(&job).Error; err != nil {
			return err
		}
		if job.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		if job.Paid {
			outcome = model.PayOutcomeAlreadyPaid
			return nil
		}

		var contract struct {
			ClientID     uuid.UUID
			ContractorID uuid.UUID
		}
		if err := tx.Raw(`
			SELECT client_id, contractor_id
			FROM contracts
			WHERE id = ?
		`, job.ContractID).Scan(&contract).Error; err != nil {
			return err
		}
		if contract.ClientID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		// Locking both profiles in id order keeps concurrent payments on
		// overlapping pairs deadlock-free.
		var balances []struct {
			ID      uuid.UUID
			Balance float64
		}
		if err := tx.Raw(`
			SELECT id, balance
			FROM profiles
			WHERE id = ? OR id = ?
			ORDER BY id
			FOR UPDATE
		`, contract.ClientID, contract.ContractorID).Scan(&balances).Error; err != nil {
			return err
		}

		clientBalance := -1.0
		for _, row := range balances {
			if row.ID == contract.ClientID {
				clientBalance = row.Balance
			}
		}
		if clientBalance < 0 {
			return gorm.ErrRecordNotFound
		}

		if clientBalance < job.Price {
			outcome = model.PayOutcomeInsufficientBalance
			return nil
		}

		if err := tx.Exec(`
			UPDATE profiles SET balance = balance - ? WHERE id = ?
		`, job.Price, contract.ClientID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, job.Price, contract.ContractorID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE jobs SET paid = TRUE, paid_at = NOW() WHERE id = ?
		`, job.ID).Error; err != nil {
			return err
		}

		outcome = model.PayOutcomeSuccess
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// Deposit adds amount to a client balance, subject to the deposit cap: a
// single deposit may not exceed capRatio of the profile's outstanding
// unpaid-jobs total. The profile row is locked FOR UPDATE so concurrent
// deposits re-run the cap check against the committed state.
func (r *BillingRepository) Deposit(ctx context.Context, profileID uuid.UUID, amount, capRatio float64) (model.DepositOutcome, error) {
	var outcome model.DepositOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile struct {
			ID      uuid.UUID
			Balance float64
			Type    model.ProfileType
		}
		if err := tx.Raw(`
			SELECT id, balance, type
			FROM profiles
			WHERE id = ?
			FOR UPDATE
		`, profileID).Scan(&profile).Error; err != nil {
			return err
		}
		if profile.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		if profile.Type == model.ProfileTypeContractor {
			outcome = model.DepositOutcomeContractor
			return nil
		}

		var unpaidTotal float64
		if err := tx.Raw(`
			SELECT COALESCE(SUM(j.price), 0)
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE NOT j.paid
				AND c.status = 'in_progress'
				AND (c.client_id = ? OR c.contractor_id = ?)
		`, profileID, profileID).Scan(&unpaidTotal).Error; err != nil {
			return err
		}

		if amount > unpaidTotal*capRatio {
			outcome = model.DepositOutcomeCapExceeded
			return nil
		}

		if err := tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, amount, profileID).Error; err != nil {
			return err
		}

		outcome = model.DepositOutcomeSuccess
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}
