package authevents

import (
	"context"
	"fmt"

	"github.com/xurshid686/student-track/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, userID, event string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_events (user_id, event) VALUES ($1, $2)`,
		userID, event)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
