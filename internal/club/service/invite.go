package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
	"github.com/footballeyeq/clubsvc/pkg/codes"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/idx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

var validate = validator.New()

// InviteService owns the invite lifecycle: issuance, cancellation, and
// redemption. All cross-document consistency rides on the store's atomic
// batched write; precondition reads happen immediately before the batch to
// keep the unavoidable read-then-write race window as narrow as possible.
type InviteService struct {
	Store store.Store
}

// IssueResult is a minted or re-surfaced invite.
type IssueResult struct {
	Invite domain.Invite
	// Existing is true when an active invite for the same (club, email)
	// already existed and was returned unchanged.
	Existing bool
}

// RedeemResult identifies the club the caller just joined.
type RedeemResult struct {
	ClubID   string
	ClubName string
	Message  string
}

// Issue creates a coach invite for targetEmail, or returns the existing
// active one for the same (club, email) unchanged. Only the club's admin
// may issue.
func (s *InviteService) Issue(
	ctx context.Context,
	caller identity.Identity,
	clubID string,
	clubName string,
	targetEmail string,
) (IssueResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate and normalize input.
	if clubID == "" || targetEmail == "" {
		return IssueResult{}, ErrInvalidRequest
	}
	email := normalizeEmail(targetEmail)
	if err := validate.Var(email, "required,email"); err != nil {
		log.Warn("invite issuance with malformed email", slog.String("club_id", clubID))
		return IssueResult{}, ErrInvalidEmail
	}

	// 2. Authorize: the caller must administer this club.
	if _, err := requireClubAdmin(ctx, s.Store, caller.UID, clubID); err != nil {
		return IssueResult{}, err
	}

	// 3. Reject emails already on the roster.
	members, err := s.Store.Memberships().FindByEmail(ctx, clubID, email)
	if err != nil {
		log.Error("failed to check roster for email", slog.Any("error", err))
		return IssueResult{}, err
	}
	if len(members) > 0 {
		return IssueResult{}, ErrAlreadyMember
	}

	// 4. Idempotent re-issuance: an active invite for this (club, email) is
	// returned unchanged instead of minting a duplicate.
	unused, err := s.Store.Invites().FindUnusedByClubEmail(ctx, clubID, email)
	if err != nil {
		log.Error("failed to query unused invites", slog.Any("error", err))
		return IssueResult{}, err
	}
	now := time.Now().UTC()
	for _, inv := range unused {
		if inv.StateAt(now) == domain.InvitePending {
			log.Debug("returning existing active invite",
				slog.String("invite_id", inv.ID),
				slog.String("club_id", clubID),
			)
			return IssueResult{Invite: inv, Existing: true}, nil
		}
	}

	// 5. Mint a fresh invite. One document creation, no batch needed.
	code, err := codes.Generate()
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return IssueResult{}, err
	}

	invite := domain.Invite{
		ID:        idx.New().String(),
		ClubID:    clubID,
		ClubName:  clubName,
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InviteTTL),
	}
	if err := s.Store.Invites().Create(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return IssueResult{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("club_id", clubID),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return IssueResult{Invite: invite}, nil
}

// Cancel deletes an outstanding invite. The invite is read first to learn
// which club it belongs to; only that club's admin may cancel it.
func (s *InviteService) Cancel(ctx context.Context, caller identity.Identity, inviteID string) error {
	log := slogx.FromContext(ctx)

	if inviteID == "" {
		return ErrInvalidRequest
	}

	inv, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}

	if _, err := requireClubAdmin(ctx, s.Store, caller.UID, inv.ClubID); err != nil {
		return err
	}

	if err := s.Store.Invites().Delete(ctx, inviteID); err != nil {
		log.Error("failed to delete invite",
			slog.String("invite_id", inviteID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invite cancelled",
		slog.String("invite_id", inviteID),
		slog.String("club_id", inv.ClubID),
	)
	return nil
}

// Redeem consumes an invite code on behalf of the verified caller, joining
// them to the invite's club as coach. The account upsert, membership
// creation, and invite stamp commit in one atomic batch.
//
// Two concurrent redemptions of the same code can both pass the unused
// check before either batch commits; the store offers no compare-and-set,
// so the second commit is not prevented, only made unlikely by reading
// immediately before the batch.
func (s *InviteService) Redeem(ctx context.Context, caller identity.Identity, inviteCode string) (RedeemResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalize and look up the code.
	code := codes.Normalize(inviteCode)
	if code == "" {
		return RedeemResult{}, ErrInvalidRequest
	}

	candidates, err := s.Store.Invites().FindByCode(ctx, code)
	if err != nil {
		log.Error("failed to look up invite code", slog.Any("error", err))
		return RedeemResult{}, err
	}
	if len(candidates) == 0 {
		log.Warn("redemption attempted with unknown code")
		return RedeemResult{}, ErrInviteNotFound
	}

	// 2. Codes are not unique: select on validity, preferring a pending
	// invite so a stale duplicate cannot shadow a live one.
	now := time.Now().UTC()
	invite := candidates[0]
	for _, c := range candidates {
		if c.StateAt(now) == domain.InvitePending {
			invite = c
			break
		}
	}

	switch invite.StateAt(now) {
	case domain.InviteRedeemed:
		log.Warn("redemption attempted with used invite",
			slog.String("invite_id", invite.ID),
			slog.String("used_by", invite.UsedBy),
		)
		return RedeemResult{}, ErrInviteAlreadyUsed
	case domain.InviteExpired:
		log.Warn("redemption attempted with expired invite",
			slog.String("invite_id", invite.ID),
		)
		return RedeemResult{}, ErrInviteExpired
	}

	// 3. Email binding: a leaked code must not be redeemable by an
	// unintended party. Comparison is case-insensitive.
	if invite.Email != "" && !strings.EqualFold(caller.Email, invite.Email) {
		log.Warn("redemption attempted by wrong email",
			slog.String("invite_id", invite.ID),
		)
		return RedeemResult{}, ErrInviteEmailMismatch
	}

	// 4. The referenced club must exist.
	club, err := s.Store.Clubs().GetByID(ctx, invite.ClubID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RedeemResult{}, ErrClubNotFound
		}
		log.Error("failed to fetch club", slog.Any("error", err))
		return RedeemResult{}, err
	}
	clubName := club.Name
	if clubName == "" {
		clubName = "the club"
	}

	// 5. Read the caller's account now, immediately before the batch.
	account, err := s.Store.Accounts().GetByUID(ctx, caller.UID)
	switch {
	case err == nil:
		account.AccountType = domain.AccountClubCoach
		account.ClubID = invite.ClubID
		account.ClubRole = domain.RoleCoach
	case errors.Is(err, store.ErrNotFound):
		// Invited-by-email people may redeem before ever signing up.
		account = domain.Account{
			UID:         caller.UID,
			Email:       caller.Email,
			AccountType: domain.AccountClubCoach,
			ClubID:      invite.ClubID,
			ClubRole:    domain.RoleCoach,
		}
	default:
		log.Error("failed to fetch caller account", slog.Any("error", err))
		return RedeemResult{}, err
	}

	membership := domain.Membership{
		ID:       idx.New().String(),
		ClubID:   invite.ClubID,
		UserID:   caller.UID,
		CoachUID: caller.UID,
		Email:    caller.Email,
		Role:     domain.RoleCoach,
		Status:   domain.MembershipActive,
		JoinedAt: now,
	}

	// 6. One atomic batch: account upsert, membership creation, invite
	// stamp. All or nothing.
	err = s.Store.WithBatch(ctx, func(b store.Batch) error {
		if err := b.Accounts().Upsert(ctx, account); err != nil {
			return fmt.Errorf("upsert account: %w", err)
		}
		if err := b.Memberships().Create(ctx, membership); err != nil {
			return fmt.Errorf("create membership: %w", err)
		}
		if err := b.Invites().MarkUsed(ctx, invite.ID, caller.UID); err != nil {
			return fmt.Errorf("mark invite used: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("redemption batch failed",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return RedeemResult{}, err
	}

	log.Info("invite redeemed",
		slog.String("invite_id", invite.ID),
		slog.String("club_id", invite.ClubID),
		slog.String("membership_id", membership.ID),
		slog.String("redeemed_by", caller.UID),
	)

	return RedeemResult{
		ClubID:   invite.ClubID,
		ClubName: clubName,
		Message:  fmt.Sprintf("Successfully joined %s!", clubName),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
