package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

// MembershipService maintains the roster side of the invariant: removing a
// member deletes the roster entry and, when the linked account still points
// at this club, downgrades it back to a free individual account in the same
// atomic batch.
type MembershipService struct {
	Store store.Store
}

// RemoveResult reports the outcome of a removal.
type RemoveResult struct {
	// AccountDowngraded is false when no linked account could be resolved,
	// a recognized partial outcome rather than a failure.
	AccountDowngraded bool
	Message           string
}

// Remove deletes a membership from the club's roster. Only the club's admin
// may remove, and admin memberships can never be removed through this path.
// fallbackEmail is used to resolve the departing account only when the
// roster entry itself stores no email.
func (s *MembershipService) Remove(
	ctx context.Context,
	caller identity.Identity,
	clubID string,
	membershipID string,
	fallbackEmail string,
) (RemoveResult, error) {
	log := slogx.FromContext(ctx)

	if clubID == "" || membershipID == "" {
		return RemoveResult{}, ErrInvalidRequest
	}

	// 1. Authorize.
	if _, err := requireClubAdmin(ctx, s.Store, caller.UID, clubID); err != nil {
		return RemoveResult{}, err
	}

	// 2. Load the roster entry.
	member, err := s.Store.Memberships().GetByID(ctx, clubID, membershipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RemoveResult{}, ErrMemberNotFound
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return RemoveResult{}, err
	}

	// 3. Admin memberships are only ever seeded at provisioning and are
	// untouchable here.
	if member.Role == domain.RoleAdmin {
		log.Warn("attempted to remove admin membership",
			slog.String("club_id", clubID),
			slog.String("membership_id", membershipID),
		)
		return RemoveResult{}, ErrCannotRemoveAdmin
	}

	// 4. Resolve the departing person's account, immediately before the
	// batch.
	account, strategy, err := resolveAccount(ctx, s.Store.Accounts(), member, fallbackEmail)
	resolved := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("account resolution failed", slog.Any("error", err))
		return RemoveResult{}, err
	}

	// 5. One atomic batch: always delete the roster entry; downgrade the
	// account only when it was resolved and still points at this club.
	downgrade := resolved && account.ClubID == clubID
	err = s.Store.WithBatch(ctx, func(b store.Batch) error {
		if err := b.Memberships().Delete(ctx, clubID, membershipID); err != nil {
			return fmt.Errorf("delete membership: %w", err)
		}
		if downgrade {
			account.AccountType = domain.AccountFree
			account.ClubID = ""
			account.ClubRole = ""
			if err := b.Accounts().Upsert(ctx, account); err != nil {
				return fmt.Errorf("downgrade account: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("removal batch failed",
			slog.String("membership_id", membershipID),
			slog.Any("error", err),
		)
		return RemoveResult{}, err
	}

	who := member.Email
	if who == "" {
		who = "member"
	}

	if !resolved {
		log.Info("member removed, no account found to downgrade",
			slog.String("club_id", clubID),
			slog.String("membership_id", membershipID),
		)
		return RemoveResult{
			Message: fmt.Sprintf("Removed %s from roster (no account found to downgrade)", who),
		}, nil
	}

	log.Info("member removed",
		slog.String("club_id", clubID),
		slog.String("membership_id", membershipID),
		slog.String("account_uid", account.UID),
		slog.String("resolved_by", strategy),
		slog.Bool("account_downgraded", downgrade),
	)

	return RemoveResult{
		AccountDowngraded: downgrade,
		Message:           fmt.Sprintf("Successfully removed %s from the club", who),
	}, nil
}
