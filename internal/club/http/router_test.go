package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/internal/club/store/drivers/sqlite"
	"github.com/footballeyeq/clubsvc/pkg/identity"
	"github.com/footballeyeq/clubsvc/pkg/idx"
)

var (
	testSecret  = []byte("router-test-secret")
	routerDBSeq atomic.Int64
)

func newTestRouter(t *testing.T) (*Router, *sqlite.Store) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:router_%s_%d?mode=memory&cache=shared", name, routerDBSeq.Add(1))

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier := identity.NewJWTVerifier(testSecret, "")
	r := NewRouter(verifier, "test", st, slog.New(slog.DiscardHandler))
	r.ClubService = &service.ClubService{Store: st}
	r.InviteService = &service.InviteService{Store: st}
	r.MembershipService = &service.MembershipService{Store: st}
	r.ApplyRoutes()
	return r, st
}

func mintToken(t *testing.T, uid, email string) string {
	t.Helper()

	claims := identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, r *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestInviteLifecycleOverHTTP(t *testing.T) {
	r, st := newTestRouter(t)

	adminUID := idx.New().String()
	adminToken := mintToken(t, adminUID, "admin@club.io")

	// Provision a club.
	rec := do(t, r, http.MethodPost, "/v1/clubs", adminToken, map[string]string{"name": "Riverside FC"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[ClubCreateResponse](t, rec)
	require.NotEmpty(t, created.ClubID)
	require.Equal(t, "Successfully created Riverside FC!", created.Message)

	// Issue an invite.
	rec = do(t, r, http.MethodPost, "/v1/invites", adminToken, map[string]string{
		"club_id":   created.ClubID,
		"club_name": created.ClubName,
		"email":     "coach@club.io",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	issued := decode[InviteResponse](t, rec)
	require.Len(t, issued.Code, 6)
	require.False(t, issued.Existing)
	require.NotZero(t, issued.CreatedAt)
	require.Equal(t, issued.CreatedAt+int64((7*24*time.Hour).Seconds()), issued.ExpiresAt)

	// Re-issuing returns the same invite.
	rec = do(t, r, http.MethodPost, "/v1/invites", adminToken, map[string]string{
		"club_id": created.ClubID,
		"email":   "coach@club.io",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	again := decode[InviteResponse](t, rec)
	require.Equal(t, issued.InviteID, again.InviteID)
	require.True(t, again.Existing)

	// The coach redeems it.
	coachToken := mintToken(t, idx.New().String(), "coach@club.io")
	rec = do(t, r, http.MethodPost, "/v1/invites/redeem", coachToken, map[string]string{"code": issued.Code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	joined := decode[RedeemResponse](t, rec)
	require.Equal(t, created.ClubID, joined.ClubID)
	require.Equal(t, "Successfully joined Riverside FC!", joined.Message)

	// Second redemption fails.
	rec = do(t, r, http.MethodPost, "/v1/invites/redeem", coachToken, map[string]string{"code": issued.Code})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This invitation has already been used", decode[ErrorResponse](t, rec).Error)

	// Remove the coach from the roster.
	roster, err := st.Memberships().FindByEmail(context.Background(), created.ClubID, "coach@club.io")
	require.NoError(t, err)
	require.Len(t, roster, 1)

	rec = do(t, r, http.MethodDelete,
		fmt.Sprintf("/v1/clubs/%s/members/%s", created.ClubID, roster[0].ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	removed := decode[RemoveMemberResponse](t, rec)
	require.True(t, removed.AccountDowngraded)
}

func TestHTTPStatusMapping(t *testing.T) {
	r, st := newTestRouter(t)

	adminUID := idx.New().String()
	adminToken := mintToken(t, adminUID, "admin@club.io")

	rec := do(t, r, http.MethodPost, "/v1/clubs", adminToken, map[string]string{"name": "Riverside"})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[ClubCreateResponse](t, rec)

	// Missing credential.
	rec = do(t, r, http.MethodPost, "/v1/invites", "", map[string]string{
		"club_id": created.ClubID, "email": "coach@club.io",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not this club's admin.
	strangerToken := mintToken(t, idx.New().String(), "stranger@club.io")
	rec = do(t, r, http.MethodPost, "/v1/invites", strangerToken, map[string]string{
		"club_id": created.ClubID, "email": "coach@club.io",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Malformed email.
	rec = do(t, r, http.MethodPost, "/v1/invites", adminToken, map[string]string{
		"club_id": created.ClubID, "email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid email address", decode[ErrorResponse](t, rec).Error)

	// Unknown invite code.
	rec = do(t, r, http.MethodPost, "/v1/invites/redeem", adminToken, map[string]string{"code": "AAAAAA"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Invalid invitation code", decode[ErrorResponse](t, rec).Error)

	// Admin memberships are protected: removal is forbidden and the
	// record survives.
	roster, err := st.Memberships().FindByEmail(context.Background(), created.ClubID, "admin@club.io")
	require.NoError(t, err)
	require.Len(t, roster, 1)

	rec = do(t, r, http.MethodDelete,
		fmt.Sprintf("/v1/clubs/%s/members/%s", created.ClubID, roster[0].ID), adminToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Club admins cannot be removed from the roster", decode[ErrorResponse](t, rec).Error)

	_, err = st.Memberships().GetByID(context.Background(), created.ClubID, roster[0].ID)
	require.NoError(t, err)

	// Cancelling an unknown invite.
	rec = do(t, r, http.MethodDelete, "/v1/invites/"+idx.New().String(), adminToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Provisioning twice.
	rec = do(t, r, http.MethodPost, "/v1/clubs", adminToken, map[string]string{"name": "Second"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "You already belong to a club", decode[ErrorResponse](t, rec).Error)
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[HealthResponse](t, rec).Status)

	rec = do(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}
