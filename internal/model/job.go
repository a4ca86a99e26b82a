package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a unit of billable work under a contract. Once Paid flips to true
// it never reverts; PaidAt records when the payment committed.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	ContractID  uuid.UUID  `json:"contract_id"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Paid        bool       `json:"paid"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// UnpaidJob is the flattened row returned by the unpaid-jobs listing.
type UnpaidJob struct {
	JobID uuid.UUID `json:"JobId"`
	Price float64   `json:"Price"`
}
