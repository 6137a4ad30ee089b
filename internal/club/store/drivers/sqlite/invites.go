package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
)

type invitesRepo struct {
	q dbtx
}

const inviteColumns = `id, club_id, club_name, email, code, created_at, expires_at, used_by, used_at`

func (r *invitesRepo) GetByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id)
	return scanInvite(row)
}

func (r *invitesRepo) FindUnusedByClubEmail(ctx context.Context, clubID, email string) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE club_id = ? AND email = ? AND used_by IS NULL
		 ORDER BY created_at DESC`,
		clubID, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows)
}

func (r *invitesRepo) FindByCode(ctx context.Context, code string) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE code = ? ORDER BY created_at DESC`,
		code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows)
}

func (r *invitesRepo) Create(ctx context.Context, inv domain.Invite) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invites (id, club_id, club_name, email, code, created_at, expires_at, used_by, used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.ClubID,
		inv.ClubName,
		inv.Email,
		inv.Code,
		inv.CreatedAt,
		inv.ExpiresAt,
		mapStringNull(inv.UsedBy),
		mapTimeNull(inv.UsedAt),
	)
	return err
}

func (r *invitesRepo) MarkUsed(ctx context.Context, inviteID, usedByUID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE invites SET used_by = ?, used_at = ? WHERE id = ?`,
		usedByUID, time.Now().UTC(), inviteID)
	return err
}

func (r *invitesRepo) Delete(ctx context.Context, inviteID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM invites WHERE id = ?`, inviteID)
	return err
}

func collectInvites(rows *sql.Rows) ([]domain.Invite, error) {
	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv    domain.Invite
		usedBy sql.NullString
		usedAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.ClubID, &inv.ClubName, &inv.Email, &inv.Code,
		&inv.CreatedAt, &inv.ExpiresAt, &usedBy, &usedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.UsedBy = mapNullString(usedBy)
	if usedAt.Valid {
		at := usedAt.Time
		inv.UsedAt = &at
	}
	return inv, nil
}

func mapTimeNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
