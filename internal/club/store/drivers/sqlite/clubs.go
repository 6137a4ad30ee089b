package sqlite

import (
	"context"

	"github.com/footballeyeq/clubsvc/internal/club/domain"
)

type clubsRepo struct {
	q dbtx
}

func (r *clubsRepo) GetByID(ctx context.Context, id string) (domain.Club, error) {
	var c domain.Club
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, contact_email, subscription_status, status, created_by, created_at
		FROM clubs WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.ContactEmail, &c.SubscriptionStatus, &c.Status, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return domain.Club{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clubsRepo) Create(ctx context.Context, c domain.Club) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO clubs (id, name, contact_email, subscription_status, status, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.ContactEmail, c.SubscriptionStatus, c.Status, c.CreatedBy, c.CreatedAt,
	)
	return err
}
