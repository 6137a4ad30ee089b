package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/idx"
)

func TestProvisionSeedsAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	clubs := &ClubService{Store: st}

	caller := identity.Identity{UID: idx.New().String(), Email: "founder@club.io"}
	res, err := clubs.Provision(ctx, caller, "  Riverside FC  ")
	require.NoError(t, err)
	require.NotEmpty(t, res.ClubID)
	require.Equal(t, "Riverside FC", res.ClubName)
	require.Equal(t, "Successfully created Riverside FC!", res.Message)

	club, err := st.Clubs().GetByID(ctx, res.ClubID)
	require.NoError(t, err)
	require.Equal(t, "Riverside FC", club.Name)
	require.Equal(t, caller.UID, club.CreatedBy)
	require.Equal(t, "trial", club.SubscriptionStatus)

	acct, err := st.Accounts().GetByUID(ctx, caller.UID)
	require.NoError(t, err)
	require.Equal(t, domain.AccountClubAdmin, acct.AccountType)
	require.Equal(t, res.ClubID, acct.ClubID)
	require.Equal(t, domain.RoleAdmin, acct.ClubRole)

	roster, err := st.Memberships().FindByEmail(ctx, res.ClubID, caller.Email)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, domain.RoleAdmin, roster[0].Role)
	require.Equal(t, caller.UID, roster[0].UserID)
	require.Equal(t, caller.UID, roster[0].CoachUID)
}

func TestProvisionRejectsAffiliatedCaller(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	clubs := &ClubService{Store: st}

	_, admin := seedClub(t, st, "Riverside")
	_, err := clubs.Provision(ctx, admin, "Second Club")
	require.ErrorIs(t, err, ErrAlreadyInClub)

	// A plain free account may provision.
	free := identity.Identity{UID: idx.New().String(), Email: "free@club.io"}
	require.NoError(t, st.Accounts().Upsert(ctx, domain.Account{
		UID:         free.UID,
		Email:       free.Email,
		AccountType: domain.AccountFree,
	}))
	_, err = clubs.Provision(ctx, free, "Fresh Club")
	require.NoError(t, err)
}

func TestProvisionValidatesName(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	clubs := &ClubService{Store: st}

	caller := identity.Identity{UID: idx.New().String(), Email: "founder@club.io"}
	_, err := clubs.Provision(context.Background(), caller, "   ")
	require.ErrorIs(t, err, ErrInvalidRequest)
}
