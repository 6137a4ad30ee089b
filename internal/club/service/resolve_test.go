package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
	"github.com/footballeyeq/clubsvc/pkg/idx"
)

func TestResolveAccountPrefersLinkedUID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)

	linked := domain.Account{UID: idx.New().String(), Email: "linked@club.io"}
	decoy := domain.Account{UID: idx.New().String(), Email: "shared@club.io"}
	require.NoError(t, st.Accounts().Upsert(ctx, linked))
	require.NoError(t, st.Accounts().Upsert(ctx, decoy))

	// Membership carries both a uid and an email matching a different
	// account; the uid wins.
	m := domain.Membership{CoachUID: linked.UID, Email: "shared@club.io"}
	acct, strategy, err := resolveAccount(ctx, st.Accounts(), m, "")
	require.NoError(t, err)
	require.Equal(t, linked.UID, acct.UID)
	require.Equal(t, "linked-uid", strategy)
}

func TestResolveAccountFallsThroughToEmailFold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)

	acct := domain.Account{UID: idx.New().String(), Email: "Mixed@Club.IO"}
	require.NoError(t, st.Accounts().Upsert(ctx, acct))

	m := domain.Membership{Email: "mixed@club.io"}
	got, strategy, err := resolveAccount(ctx, st.Accounts(), m, "")
	require.NoError(t, err)
	require.Equal(t, acct.UID, got.UID)
	require.Equal(t, "email-fold", strategy)
}

func TestResolveAccountStoredEmailBeatsFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)

	stored := domain.Account{UID: idx.New().String(), Email: "stored@club.io"}
	fallback := domain.Account{UID: idx.New().String(), Email: "fallback@club.io"}
	require.NoError(t, st.Accounts().Upsert(ctx, stored))
	require.NoError(t, st.Accounts().Upsert(ctx, fallback))

	m := domain.Membership{Email: "stored@club.io"}
	got, _, err := resolveAccount(ctx, st.Accounts(), m, "fallback@club.io")
	require.NoError(t, err)
	require.Equal(t, stored.UID, got.UID)
}

func TestResolveAccountUsesFallbackWhenRosterHasNoEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)

	acct := domain.Account{UID: idx.New().String(), Email: "fallback@club.io"}
	require.NoError(t, st.Accounts().Upsert(ctx, acct))

	m := domain.Membership{}
	got, strategy, err := resolveAccount(ctx, st.Accounts(), m, "fallback@club.io")
	require.NoError(t, err)
	require.Equal(t, acct.UID, got.UID)
	require.Equal(t, "email-exact", strategy)

	_, _, err = resolveAccount(ctx, st.Accounts(), domain.Membership{}, "")
	require.ErrorIs(t, err, store.ErrNotFound)
}
