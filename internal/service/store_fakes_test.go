package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/jobmarket/internal/model"
)

// fakeStore is an in-memory stand-in for the repositories. Its PayJob and
// Deposit mirror the transactional semantics of the real store: paid jobs
// short-circuit, balances move together, the cap check sees current state.
type fakeStore struct {
	profiles  map[uuid.UUID]model.Profile
	contracts map[uuid.UUID]model.Contract
	jobs      map[uuid.UUID]model.Job
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:  map[uuid.UUID]model.Profile{},
		contracts: map[uuid.UUID]model.Contract{},
		jobs:      map[uuid.UUID]model.Job{},
	}
}

func (f *fakeStore) addProfile(p model.Profile) model.Profile {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profiles[p.ID] = p
	return p
}

func (f *fakeStore) addContract(c model.Contract) model.Contract {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.contracts[c.ID] = c
	return c
}

func (f *fakeStore) addJob(j model.Job) model.Job {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	f.jobs[j.ID] = j
	return j
}

func (f *fakeStore) GetProfile(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeStore) GetContract(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeStore) ListContractsForProfile(_ context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if c.Status != model.ContractStatusTerminated && c.HasParticipant(profileID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetJob(_ context.Context, id uuid.UUID) (*model.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

func (f *fakeStore) ListUnpaidJobs(_ context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error) {
	var out []model.UnpaidJob
	for _, j := range f.jobs {
		if j.Paid {
			continue
		}
		c, ok := f.contracts[j.ContractID]
		if !ok || c.Status != model.ContractStatusInProgress || !c.HasParticipant(profileID) {
			continue
		}
		out = append(out, model.UnpaidJob{JobID: j.ID, Price: j.Price})
	}
	return out, nil
}

func (f *fakeStore) PayJob(_ context.Context, jobID uuid.UUID) (model.PayOutcome, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	if job.Paid {
		return model.PayOutcomeAlreadyPaid, nil
	}
	contract, ok := f.contracts[job.ContractID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	client := f.profiles[contract.ClientID]
	contractor := f.profiles[contract.ContractorID]
	if client.Balance < job.Price {
		return model.PayOutcomeInsufficientBalance, nil
	}

	client.Balance -= job.Price
	contractor.Balance += job.Price
	now := time.Now()
	job.Paid = true
	job.PaidAt = &now
	f.profiles[client.ID] = client
	f.profiles[contractor.ID] = contractor
	f.jobs[job.ID] = job
	return model.PayOutcomeSuccess, nil
}

func (f *fakeStore) Deposit(ctx context.Context, profileID uuid.UUID, amount, capRatio float64) (model.DepositOutcome, error) {
	profile, ok := f.profiles[profileID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	if profile.Type == model.ProfileTypeContractor {
		return model.DepositOutcomeContractor, nil
	}

	unpaid, _ := f.ListUnpaidJobs(ctx, profileID)
	total := 0.0
	for _, j := range unpaid {
		total += j.Price
	}
	if amount > total*capRatio {
		return model.DepositOutcomeCapExceeded, nil
	}

	profile.Balance += amount
	f.profiles[profile.ID] = profile
	return model.DepositOutcomeSuccess, nil
}

type fakeReceiptGenerator struct{}

func (fakeReceiptGenerator) Generate(model.PaymentReceipt) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
