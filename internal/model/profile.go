package model

import "github.com/google/uuid"

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// Profile is a marketplace participant. Balance is mutated only by the
// billing operations (pay, deposit).
type Profile struct {
	ID         uuid.UUID   `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Profession string      `json:"profession"`
	Balance    float64     `json:"balance"`
	Type       ProfileType `json:"type"`
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Profile) IsContractor() bool {
	return p.Type == ProfileTypeContractor
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}
