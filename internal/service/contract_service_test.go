package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nurpe/jobmarket/internal/model"
)

func TestGetContract(t *testing.T) {
	store := newFakeStore()
	client := store.addProfile(model.Profile{Type: model.ProfileTypeClient})
	contractor := store.addProfile(model.Profile{Type: model.ProfileTypeContractor})
	stranger := store.addProfile(model.Profile{Type: model.ProfileTypeClient})
	contract := store.addContract(model.Contract{
		ClientID: client.ID, ContractorID: contractor.ID,
		Status: model.ContractStatusInProgress,
	})
	svc := NewContractService(store, store)

	for _, caller := range []model.Profile{client, contractor} {
		got, err := svc.GetContract(context.Background(), caller, contract.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != contract.ID {
			t.Fatalf("expected contract %s, got %s", contract.ID, got.ID)
		}
	}

	if _, err := svc.GetContract(context.Background(), stranger, contract.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-participant, got %v", err)
	}
	if _, err := svc.GetContract(context.Background(), client, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestListContractsExcludesTerminated(t *testing.T) {
	store := newFakeStore()
	client := store.addProfile(model.Profile{Type: model.ProfileTypeClient})
	contractor := store.addProfile(model.Profile{Type: model.ProfileTypeContractor})
	active := store.addContract(model.Contract{
		ClientID: client.ID, ContractorID: contractor.ID,
		Status: model.ContractStatusInProgress,
	})
	store.addContract(model.Contract{
		ClientID: client.ID, ContractorID: contractor.ID,
		Status: model.ContractStatusTerminated,
	})
	svc := NewContractService(store, store)

	contracts, err := svc.ListContracts(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(contracts))
	}
	if contracts[0].ID != active.ID {
		t.Fatalf("expected contract %s, got %s", active.ID, contracts[0].ID)
	}
}

func TestListUnpaidJobsFilters(t *testing.T) {
	store := newFakeStore()
	client := store.addProfile(model.Profile{Type: model.ProfileTypeClient})
	contractor := store.addProfile(model.Profile{Type: model.ProfileTypeContractor})

	inProgress := store.addContract(model.Contract{
		ClientID: client.ID, ContractorID: contractor.ID,
		Status: model.ContractStatusInProgress,
	})
	fresh := store.addContract(model.Contract{
		ClientID: client.ID, ContractorID: contractor.ID,
		Status: model.ContractStatusNew,
	})

	unpaid := store.addJob(model.Job{ContractID: inProgress.ID, Price: 42})
	store.addJob(model.Job{ContractID: inProgress.ID, Price: 7, Paid: true})
	store.addJob(model.Job{ContractID: fresh.ID, Price: 9})

	svc := NewContractService(store, store)

	jobs, err := svc.ListUnpaidJobs(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 unpaid job, got %d", len(jobs))
	}
	if jobs[0].JobID != unpaid.ID || jobs[0].Price != 42 {
		t.Fatalf("unexpected job row %+v", jobs[0])
	}
}
