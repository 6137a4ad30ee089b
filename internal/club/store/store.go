// Package store defines the document-store contract the membership core
// runs against: point reads by id, equality-filtered queries, and one
// atomic multi-document batched write. The batch is the system's only
// consistency primitive: there are no cross-document transactions, no
// compare-and-set, and no read-your-writes ordering across concurrent
// batches. All precondition reads therefore happen before a batch opens.
package store

import (
	"context"
	"errors"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. It exposes per-collection repositories to keep concerns
// tidy and independently testable.
type Store interface {
	Accounts() Accounts
	Clubs() Clubs
	Memberships() Memberships
	Invites() Invites

	ApplyMigrations() error

	// WithBatch executes fn against a batch-scoped store. Every write issued
	// through the batch commits together or not at all; if fn returns an
	// error nothing is applied. Reads inside the batch observe pre-batch
	// state only; do not issue a read-check inside one.
	WithBatch(ctx context.Context, fn func(b Batch) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the store is still reachable.
	Ping(ctx context.Context) error
}

// Batch is a batch-scoped store: the same repositories, with all writes
// committed as one indivisible unit when the WithBatch callback returns nil.
type Batch interface {
	Accounts() Accounts
	Clubs() Clubs
	Memberships() Memberships
	Invites() Invites
}

type Accounts interface {
	// GetByUID is a point read of an account.
	GetByUID(ctx context.Context, uid string) (domain.Account, error)

	// GetByEmail returns the account whose email matches exactly.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetByEmailFold returns the account whose email matches
	// case-insensitively.
	GetByEmailFold(ctx context.Context, email string) (domain.Account, error)

	// Upsert creates the account keyed by uid or replaces its mutable
	// fields (email, account type, club affiliation) when it exists.
	Upsert(ctx context.Context, a domain.Account) error
}

type Clubs interface {
	// GetByID is a point read of a club.
	GetByID(ctx context.Context, id string) (domain.Club, error)

	// Create inserts a new club (id is provided by the app via ULID).
	Create(ctx context.Context, c domain.Club) error
}

type Memberships interface {
	// GetByID is a point read of a roster entry within a club.
	GetByID(ctx context.Context, clubID, membershipID string) (domain.Membership, error)

	// FindByEmail returns the non-terminated roster entries for a
	// (club, normalized email) pair; the one-membership invariant means the
	// result has at most one element on an intact roster.
	FindByEmail(ctx context.Context, clubID, email string) ([]domain.Membership, error)

	// Create inserts a new roster entry.
	Create(ctx context.Context, m domain.Membership) error

	// Delete removes a roster entry.
	Delete(ctx context.Context, clubID, membershipID string) error
}

type Invites interface {
	// GetByID is a point read of an invite.
	GetByID(ctx context.Context, id string) (domain.Invite, error)

	// FindUnusedByClubEmail returns every unused invite for a
	// (club, normalized email) pair, expired ones included; the caller
	// selects on expiry.
	FindUnusedByClubEmail(ctx context.Context, clubID, email string) ([]domain.Invite, error)

	// FindByCode returns every invite carrying the code, newest first.
	// Codes are not unique, so the caller selects on validity.
	FindByCode(ctx context.Context, code string) ([]domain.Invite, error)

	// Create inserts a new invite.
	Create(ctx context.Context, inv domain.Invite) error

	// MarkUsed stamps usedBy and usedAt on an invite.
	MarkUsed(ctx context.Context, inviteID, usedByUID string) error

	// Delete removes an invite (explicit cancellation).
	Delete(ctx context.Context, inviteID string) error
}
