package model

import "time"

// ProfessionEarnings is one grouping of the paid-jobs-by-contractor report.
type ProfessionEarnings struct {
	Contractor string  `json:"Contractor"`
	Profession string  `json:"Profession"`
	AmountPaid float64 `json:"AmountPaid"`
}

// EarningsReport is the input to the earnings workbook export.
type EarningsReport struct {
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Rows        []ProfessionEarnings
}

// ClientSpending is one grouping of the paid-jobs-by-client report.
type ClientSpending struct {
	Client     string  `json:"Client"`
	Profession string  `json:"Profession"`
	AmountPaid float64 `json:"AmountPaid"`
}
