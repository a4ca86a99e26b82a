package model

type PayOutcome string

const (
	PayOutcomeSuccess             PayOutcome = "success"
	PayOutcomeAlreadyPaid         PayOutcome = "already_paid"
	PayOutcomeInsufficientBalance PayOutcome = "insufficient_balance"
)

// PaymentReceipt carries everything the receipt PDF needs about one paid job.
type PaymentReceipt struct {
	Job        Job
	Contract   Contract
	Client     Profile
	Contractor Profile
}

type DepositOutcome string

const (
	DepositOutcomeSuccess     DepositOutcome = "success"
	DepositOutcomeContractor  DepositOutcome = "contractor"
	DepositOutcomeCapExceeded DepositOutcome = "cap_exceeded"
)
