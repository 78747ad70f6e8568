package repository

import (
	"context"
	"fmt"

	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type HealthRepository interface {
	Probe(ctx context.Context) error
}

type healthRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthRepository(db database.PgxIface, log *zap.Logger) HealthRepository {
	return &healthRepository{
		db:  db,
		log: log.With(zap.String("repository", "health")),
	}
}

// Probe runs a trivial query to prove the data store is reachable
func (r *healthRepository) Probe(ctx context.Context) error {
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		r.log.Warn("Database probe failed", zap.Error(err))
		return fmt.Errorf("probe database: %w", err)
	}

	return nil
}
