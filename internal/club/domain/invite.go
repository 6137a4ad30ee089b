package domain

import "time"

// InviteTTL is how long an invite stays redeemable after issuance. Fixed,
// not configurable per call.
const InviteTTL = 7 * 24 * time.Hour

// InviteState is the computed lifecycle state of an invite. There is no
// stored status field: state derives from UsedBy and ExpiresAt, which makes
// a fourth, contradictory combination unrepresentable.
type InviteState string

const (
	// InvitePending is an unused invite whose expiry is still in the future.
	InvitePending InviteState = "pending"
	// InviteExpired is an unused invite past its expiry. Expired invites are
	// not garbage-collected; they are simply invalid at redemption time.
	InviteExpired InviteState = "expired"
	// InviteRedeemed is an invite that has been consumed.
	InviteRedeemed InviteState = "redeemed"
)

// Invite is a time-boxed, single-use offer binding a club to an email,
// keyed by a short human-enterable code. Codes are not globally unique;
// lookups by code must select on validity.
type Invite struct {
	ID        string
	ClubID    string
	ClubName  string // display name snapshot, may be empty
	Email     string // normalized: trimmed, lower-cased
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedBy    string // redeemer uid, empty until redeemed
	UsedAt    *time.Time
}

// StateAt returns the invite's lifecycle state at the given instant.
func (i Invite) StateAt(now time.Time) InviteState {
	if i.UsedBy != "" {
		return InviteRedeemed
	}
	if !i.ExpiresAt.After(now) {
		return InviteExpired
	}
	return InvitePending
}
