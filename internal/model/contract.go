package model

import "github.com/google/uuid"

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract binds one client to one contractor. Jobs are billable only while
// the contract is in_progress.
type Contract struct {
	ID           uuid.UUID      `json:"id"`
	ClientID     uuid.UUID      `json:"client_id"`
	ContractorID uuid.UUID      `json:"contractor_id"`
	Terms        string         `json:"terms"`
	Status       ContractStatus `json:"status"`
}

// HasParticipant reports whether the profile is a party to the contract.
func (c Contract) HasParticipant(profileID uuid.UUID) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
