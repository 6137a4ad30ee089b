package sqlite

import (
	"context"
	"database/sql"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
)

type membershipsRepo struct {
	q dbtx
}

const membershipColumns = `id, club_id, user_id, coach_uid, email, role, status, joined_at`

func (r *membershipsRepo) GetByID(ctx context.Context, clubID, membershipID string) (domain.Membership, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE club_id = ? AND id = ?`,
		clubID, membershipID)
	return scanMembership(row)
}

func (r *membershipsRepo) FindByEmail(ctx context.Context, clubID, email string) ([]domain.Membership, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships
		 WHERE club_id = ? AND email = ? AND status != 'terminated'`,
		clubID, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) Create(ctx context.Context, m domain.Membership) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO memberships (id, club_id, user_id, coach_uid, email, role, status, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.ClubID,
		mapStringNull(m.UserID),
		mapStringNull(m.CoachUID),
		m.Email,
		string(m.Role),
		string(m.Status),
		m.JoinedAt,
	)
	return err
}

func (r *membershipsRepo) Delete(ctx context.Context, clubID, membershipID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM memberships WHERE club_id = ? AND id = ?`, clubID, membershipID)
	return err
}

func scanMembership(row rowScanner) (domain.Membership, error) {
	var (
		m                domain.Membership
		userID, coachUID sql.NullString
		roleStr, statStr string
	)
	err := row.Scan(&m.ID, &m.ClubID, &userID, &coachUID, &m.Email, &roleStr, &statStr, &m.JoinedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.UserID = mapNullString(userID)
	m.CoachUID = mapNullString(coachUID)
	m.Role = domain.ClubRole(roleStr)
	m.Status = domain.MembershipStatus(statStr)
	return m, nil
}
