package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// FindSummariesByBookingIDs returns status and intent id per booking, newest payment first
	FindSummariesByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]entity.PaymentSummary, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func BuildPaymentSummaryQuery(bookingIDs []uuid.UUID) (string, []any, error) {
	return psql.Select("booking_id", "status", "COALESCE(payment_intent_id, '')").
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("created_at DESC").
		ToSql()
}

func (r *paymentRepository) FindSummariesByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]entity.PaymentSummary, error) {
	summaries := make(map[uuid.UUID][]entity.PaymentSummary, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return summaries, nil
	}

	query, args, err := BuildPaymentSummaryQuery(bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("build payment summary query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find payments by booking IDs",
			zap.Error(err),
			zap.Int("booking_count", len(bookingIDs)),
		)
		return nil, fmt.Errorf("find payments by booking IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var summary entity.PaymentSummary
		if err := rows.Scan(&summary.BookingID, &summary.Status, &summary.PaymentIntentID); err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		summaries[summary.BookingID] = append(summaries[summary.BookingID], summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return summaries, nil
}
