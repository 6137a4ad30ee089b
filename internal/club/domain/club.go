package domain

import "time"

// Club is an organization with a member roster. The membership core only
// ever references clubs by id; broader club management lives elsewhere.
type Club struct {
	ID                 string
	Name               string
	ContactEmail       string
	SubscriptionStatus string // e.g. "trial"
	Status             string // e.g. "active"
	CreatedBy          string
	CreatedAt          time.Time
}
