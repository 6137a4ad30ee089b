package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store/drivers/sqlite"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/idx"
)

var testStoreSeq atomic.Int64

// newTestStore opens a uniquely named in-memory database so parallel tests
// never share state through sqlite's shared-cache mode.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testStoreSeq.Add(1))

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedClub creates a club with a pre-seeded admin account and membership,
// returning the club id and the admin's identity.
func seedClub(t *testing.T, st *sqlite.Store, name string) (string, identity.Identity) {
	t.Helper()
	ctx := context.Background()

	admin := identity.Identity{
		UID:   idx.New().String(),
		Email: strings.ToLower(name) + "-admin@club.io",
	}

	club := domain.Club{
		ID:                 idx.New().String(),
		Name:               name,
		ContactEmail:       admin.Email,
		SubscriptionStatus: "trial",
		Status:             "active",
		CreatedBy:          admin.UID,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, st.Clubs().Create(ctx, club))

	require.NoError(t, st.Accounts().Upsert(ctx, domain.Account{
		UID:         admin.UID,
		Email:       admin.Email,
		AccountType: domain.AccountClubAdmin,
		ClubID:      club.ID,
		ClubRole:    domain.RoleAdmin,
	}))

	require.NoError(t, st.Memberships().Create(ctx, domain.Membership{
		ID:       idx.New().String(),
		ClubID:   club.ID,
		UserID:   admin.UID,
		CoachUID: admin.UID,
		Email:    admin.Email,
		Role:     domain.RoleAdmin,
		Status:   domain.MembershipActive,
		JoinedAt: time.Now().UTC(),
	}))

	return club.ID, admin
}

// seedInvite inserts an invite directly, bypassing issuance, for shaping
// expiry and usage states that Issue would refuse to produce.
func seedInvite(t *testing.T, st *sqlite.Store, inv domain.Invite) domain.Invite {
	t.Helper()

	if inv.ID == "" {
		inv.ID = idx.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, st.Invites().Create(context.Background(), inv))
	return inv
}
