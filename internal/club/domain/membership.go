package domain

import "time"

// MembershipStatus is the roster state of a membership.
type MembershipStatus string

const (
	MembershipActive MembershipStatus = "active"
)

// Membership is a club-scoped roster entry. It is distinct from an Account:
// a person can be on a roster before they have ever signed up, in which case
// UserID and CoachUID are empty and only Email links the two.
//
// At most one membership per (club, email) may exist in a non-terminated
// status. Admin memberships are pre-seeded at club provisioning and are
// never produced by invite redemption nor removable through member removal.
type Membership struct {
	ID       string
	ClubID   string
	UserID   string // linked Account uid, empty when the person has no account
	CoachUID string // historical duplicate of UserID, kept because removal reads either
	Email    string
	Role     ClubRole
	Status   MembershipStatus
	JoinedAt time.Time
}

// LinkedUID returns the uid the membership is linked to, preferring UserID
// over the legacy CoachUID field.
func (m Membership) LinkedUID() string {
	if m.UserID != "" {
		return m.UserID
	}
	return m.CoachUID
}
