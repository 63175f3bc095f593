package domain

import "time"

// Account is a pre-provisioned voter or administrator identity. Accounts are
// never created or deleted by the service; only their progress flags change.
type Account struct {
	ID              string
	Email           string
	PasswordHash    string
	AgreedTerms     bool
	IsCompleted     bool
	IsAdmin         bool
	AssignedRegion  string
	LastVisitedPage string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InitialRoute decides where a freshly authenticated account lands.
// First match wins: admins go to the admin area, completed voters to the
// terminal page, returning voters resume where they left off.
func (a Account) InitialRoute() Step {
	switch {
	case a.IsAdmin:
		return StepAdmin
	case a.IsCompleted:
		return StepThankYou
	case a.LastVisitedPage != "":
		return Step(a.LastVisitedPage)
	case !a.AgreedTerms:
		return StepTerms
	default:
		return StepProcess
	}
}
