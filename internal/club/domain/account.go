package domain

import "time"

// AccountType is a person's subscription tier.
type AccountType string

const (
	AccountFree              AccountType = "free"
	AccountIndividualPremium AccountType = "individualPremium"
	AccountClubCoach         AccountType = "clubCoach"
	AccountClubAdmin         AccountType = "clubAdmin"
)

// ClubRole is the role an account holds within its club, empty when the
// account is not affiliated.
type ClubRole string

const (
	RoleAdmin ClubRole = "admin"
	RoleCoach ClubRole = "coach"
)

// Account is the durable record of a registered person's subscription tier
// and club affiliation. ClubID and ClubRole are set and cleared together:
// one is non-empty exactly when the other is.
type Account struct {
	UID         string
	Email       string
	AccountType AccountType
	ClubID      string   // empty when not affiliated
	ClubRole    ClubRole // empty when not affiliated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Affiliated reports whether the account currently belongs to a club.
func (a Account) Affiliated() bool { return a.ClubID != "" }
