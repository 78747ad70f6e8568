package repository

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type MetricsRepository interface {
	BookingCounts(ctx context.Context, since time.Time) (*entity.BookingCounts, error)
	RevenueTotals(ctx context.Context, since time.Time) (*entity.RevenueTotals, error)
}

type metricsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMetricsRepository(db database.PgxIface, log *zap.Logger) MetricsRepository {
	return &metricsRepository{
		db:  db,
		log: log.With(zap.String("repository", "metrics")),
	}
}

// Aggregates without GROUP BY always return one row, so an empty window scans as zeros.

func BuildBookingCountsQuery(since time.Time) (string, []any, error) {
	return psql.Select(
		"COUNT(*)",
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.BookingStatusPending),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.BookingStatusConfirmed),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.BookingStatusCancelled),
	).
		From("bookings").
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()
}

func BuildRevenueTotalsQuery(since time.Time) (string, []any, error) {
	return psql.Select(
		fmt.Sprintf("COALESCE(SUM(amount) FILTER (WHERE status = '%s'), 0)::float8", entity.PaymentStatusSucceeded),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.PaymentStatusSucceeded),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", entity.PaymentStatusFailed),
	).
		From("payments").
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()
}

func (r *metricsRepository) BookingCounts(ctx context.Context, since time.Time) (*entity.BookingCounts, error) {
	query, args, err := BuildBookingCountsQuery(since)
	if err != nil {
		return nil, fmt.Errorf("build booking counts query: %w", err)
	}

	var counts entity.BookingCounts
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Confirmed,
		&counts.Cancelled,
	)
	if err != nil {
		r.log.Error("Failed to aggregate booking counts",
			zap.Error(err),
			zap.Time("since", since),
		)
		return nil, fmt.Errorf("aggregate booking counts: %w", err)
	}

	return &counts, nil
}

func (r *metricsRepository) RevenueTotals(ctx context.Context, since time.Time) (*entity.RevenueTotals, error) {
	query, args, err := BuildRevenueTotalsQuery(since)
	if err != nil {
		return nil, fmt.Errorf("build revenue totals query: %w", err)
	}

	var totals entity.RevenueTotals
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&totals.Total,
		&totals.SuccessfulPayments,
		&totals.FailedPayments,
	)
	if err != nil {
		r.log.Error("Failed to aggregate revenue totals",
			zap.Error(err),
			zap.Time("since", since),
		)
		return nil, fmt.Errorf("aggregate revenue totals: %w", err)
	}

	return &totals, nil
}
