package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
)

type accountsRepo struct {
	q dbtx
}

const accountColumns = `uid, email, account_type, club_id, club_role, created_at, updated_at`

func (r *accountsRepo) GetByUID(ctx context.Context, uid string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE uid = ?`, uid)
	return scanAccount(row)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ? LIMIT 1`, email)
	return scanAccount(row)
}

func (r *accountsRepo) GetByEmailFold(ctx context.Context, email string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE lower(email) = lower(?) LIMIT 1`, email)
	return scanAccount(row)
}

func (r *accountsRepo) Upsert(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (uid, email, account_type, club_id, club_role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (uid) DO UPDATE SET
			email        = excluded.email,
			account_type = excluded.account_type,
			club_id      = excluded.club_id,
			club_role    = excluded.club_role,
			updated_at   = excluded.updated_at`,
		a.UID,
		a.Email,
		string(a.AccountType),
		mapStringNull(a.ClubID),
		mapStringNull(string(a.ClubRole)),
		createdAt,
		now,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		a                domain.Account
		acctType         string
		clubID, clubRole sql.NullString
	)
	err := row.Scan(&a.UID, &a.Email, &acctType, &clubID, &clubRole, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.AccountType = domain.AccountType(acctType)
	a.ClubID = mapNullString(clubID)
	a.ClubRole = domain.ClubRole(mapNullString(clubRole))
	return a, nil
}
