package service

import "errors"

var (
	// ErrInvalidRequest covers missing or malformed input fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidEmail reports an address that fails the structural check.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrNotClubAdmin is the fail-closed authorization error: the caller's
	// account is missing, belongs to a different club, or is not an admin.
	ErrNotClubAdmin = errors.New("not authorized to manage this club")

	ErrAlreadyMember       = errors.New("email is already a member of this club")
	ErrAlreadyInClub       = errors.New("caller already belongs to a club")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteAlreadyUsed   = errors.New("invite has already been used")
	ErrInviteExpired       = errors.New("invite has expired")
	ErrInviteEmailMismatch = errors.New("invite was created for a different email address")
	ErrClubNotFound        = errors.New("club not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrCannotRemoveAdmin   = errors.New("club admin cannot be removed")
)
