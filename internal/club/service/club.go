package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/idx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

// ClubService provisions new clubs. Provisioning is the only path that
// seeds an admin membership; every later roster change goes through invites
// and removal.
type ClubService struct {
	Store store.Store
}

// ProvisionResult identifies the freshly created club.
type ProvisionResult struct {
	ClubID   string
	ClubName string
	Message  string
}

// Provision creates a club with the caller as its admin: club document,
// admin account upsert, and admin membership commit in one atomic batch.
// A caller already affiliated with any club is rejected.
func (s *ClubService) Provision(ctx context.Context, caller identity.Identity, clubName string) (ProvisionResult, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(clubName)
	if name == "" {
		return ProvisionResult{}, ErrInvalidRequest
	}

	// 1. A person can belong to at most one club.
	account, err := s.Store.Accounts().GetByUID(ctx, caller.UID)
	switch {
	case err == nil:
		if account.Affiliated() {
			return ProvisionResult{}, ErrAlreadyInClub
		}
	case errors.Is(err, store.ErrNotFound):
		account = domain.Account{UID: caller.UID, Email: caller.Email}
	default:
		log.Error("failed to fetch caller account", slog.Any("error", err))
		return ProvisionResult{}, err
	}

	now := time.Now().UTC()
	club := domain.Club{
		ID:                 idx.New().String(),
		Name:               name,
		ContactEmail:       caller.Email,
		SubscriptionStatus: "trial",
		Status:             "active",
		CreatedBy:          caller.UID,
		CreatedAt:          now,
	}

	account.AccountType = domain.AccountClubAdmin
	account.ClubID = club.ID
	account.ClubRole = domain.RoleAdmin
	if account.Email == "" {
		account.Email = caller.Email
	}

	membership := domain.Membership{
		ID:       idx.New().String(),
		ClubID:   club.ID,
		UserID:   caller.UID,
		CoachUID: caller.UID,
		Email:    caller.Email,
		Role:     domain.RoleAdmin,
		Status:   domain.MembershipActive,
		JoinedAt: now,
	}

	// 2. One atomic batch: club, admin account, admin membership.
	err = s.Store.WithBatch(ctx, func(b store.Batch) error {
		if err := b.Clubs().Create(ctx, club); err != nil {
			return fmt.Errorf("create club: %w", err)
		}
		if err := b.Accounts().Upsert(ctx, account); err != nil {
			return fmt.Errorf("upsert admin account: %w", err)
		}
		if err := b.Memberships().Create(ctx, membership); err != nil {
			return fmt.Errorf("create admin membership: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("provisioning batch failed", slog.Any("error", err))
		return ProvisionResult{}, err
	}

	log.Info("club provisioned",
		slog.String("club_id", club.ID),
		slog.String("admin_uid", caller.UID),
	)

	return ProvisionResult{
		ClubID:   club.ID,
		ClubName: name,
		Message:  fmt.Sprintf("Successfully created %s!", name),
	}, nil
}
