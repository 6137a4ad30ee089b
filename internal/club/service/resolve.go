package service

import (
	"context"
	"errors"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
)

// accountLookup is one strategy for locating the account behind a roster
// entry. Strategies are tried in order; store.ErrNotFound moves to the next
// one, any other error aborts the chain.
type accountLookup struct {
	name string
	run  func(ctx context.Context) (domain.Account, error)
}

// resolveAccount locates the account linked to a membership. Roster entries
// may predate a formal account (invited by email before signup), so
// resolution degrades gracefully: linked uid first, then an email lookup
// tried exactly and then case-insensitively. The membership's stored email
// is used for the lookup; the caller-supplied fallback only substitutes when
// the roster entry stores none.
func resolveAccount(
	ctx context.Context,
	accounts store.Accounts,
	m domain.Membership,
	fallbackEmail string,
) (domain.Account, string, error) {
	var chain []accountLookup

	if uid := m.LinkedUID(); uid != "" {
		chain = append(chain, accountLookup{
			name: "linked-uid",
			run:  func(ctx context.Context) (domain.Account, error) { return accounts.GetByUID(ctx, uid) },
		})
	}

	// The stored roster email takes priority over the caller-supplied one.
	email := m.Email
	if email == "" {
		email = fallbackEmail
	}
	if email != "" {
		chain = append(chain,
			accountLookup{
				name: "email-exact",
				run: func(ctx context.Context) (domain.Account, error) {
					return accounts.GetByEmail(ctx, email)
				},
			},
			accountLookup{
				name: "email-fold",
				run: func(ctx context.Context) (domain.Account, error) {
					return accounts.GetByEmailFold(ctx, email)
				},
			},
		)
	}

	for _, lookup := range chain {
		acct, err := lookup.run(ctx)
		if err == nil {
			return acct, lookup.name, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, "", err
		}
	}

	return domain.Account{}, "", store.ErrNotFound
}
