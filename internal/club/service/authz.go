package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
	"github.com/footballeyeq/clubsvc/internal/club/store"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

// requireClubAdmin re-reads the caller's account and checks it administers
// the given club. Roles can change between calls, so nothing is cached and
// the account is re-read every time. Any lookup miss is a denial, never a
// default-allow.
func requireClubAdmin(ctx context.Context, st store.Store, callerUID, clubID string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	acct, err := st.Accounts().GetByUID(ctx, callerUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("admin check failed: caller has no account",
				slog.String("caller_uid", callerUID),
				slog.String("club_id", clubID),
			)
			return domain.Account{}, ErrNotClubAdmin
		}
		log.Error("failed to fetch caller account", slog.Any("error", err))
		return domain.Account{}, err
	}

	if acct.ClubID != clubID || acct.ClubRole != domain.RoleAdmin {
		log.Warn("admin check failed: caller is not this club's admin",
			slog.String("caller_uid", callerUID),
			slog.String("club_id", clubID),
		)
		return domain.Account{}, ErrNotClubAdmin
	}

	return acct, nil
}
