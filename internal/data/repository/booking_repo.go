package repository

import (
	"context"
	"errors"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByFilter(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	CountByFilter(ctx context.Context, filter BookingFilter) (int64, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByFilter(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query, args, err := BuildBookingQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build booking query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings by filter",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find bookings by filter: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByFilter(ctx context.Context, filter BookingFilter) (int64, error) {
	query, args, err := BuildBookingCountQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("build booking count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by filter", zap.Error(err))
		return 0, fmt.Errorf("count bookings by filter: %w", err)
	}

	return count, nil
}

// FindByReference returns nil, nil when no booking carries the reference
func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by reference query: %w", err)
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.Status,
		&booking.TotalAmount,
		&booking.Currency,
		&booking.ContactInfo,
		&booking.FlightDetails,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
