package session

import (
	"context"
	"fmt"

	"tracker/internal/service/session"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Revoke помечает сессию отозванной. Уже отозванная сессия считается ненайденной.
func (r *Repository) Revoke(ctx context.Context, token string) error {
	query := `UPDATE sessions
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("unexpected session repository revoke error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}
