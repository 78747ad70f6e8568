package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Admin endpoints
	ListBookings(ctx context.Context, query *request.ListBookingsQuery) (*response.BookingListResponse, error)
	GetBooking(ctx context.Context, reference string) (*response.BookingResponse, error)

	// Caller-owned bookings
	ListUserBookings(ctx context.Context, userID string, query *request.ListBookingsQuery) (*response.BookingListResponse, error)
	GetUserBooking(ctx context.Context, userID, reference string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, query *request.ListBookingsQuery) (*response.BookingListResponse, error) {
	return s.list(ctx, query, nil)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string, query *request.ListBookingsQuery) (*response.BookingListResponse, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.list(ctx, query, &userID)
}

func (s *bookingService) GetBooking(ctx context.Context, reference string) (*response.BookingResponse, error) {
	booking, err := s.findByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// GetUserBooking hides bookings owned by someone else behind the same not-found answer
func (s *bookingService) GetUserBooking(ctx context.Context, userID, reference string) (*response.BookingResponse, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	booking, err := s.findByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		s.log.Warn("Booking lookup by non-owner",
			zap.String("reference", reference),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("booking %s: %w", reference, ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) list(ctx context.Context, query *request.ListBookingsQuery, userID *string) (*response.BookingListResponse, error) {
	if query == nil {
		return nil, fmt.Errorf("%w: missing query", ErrInvalidInput)
	}

	filter, err := toBookingFilter(query, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	total, err := s.repo.Booking.CountByFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := attachPayments(ctx, s.repo.Payment, bookings); err != nil {
		s.log.Error("Failed to attach payments", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &response.BookingListResponse{
		Bookings: response.BookingsToResponse(bookings),
		Meta: response.PaginationMeta{
			Total:  total,
			Limit:  query.Limit,
			Offset: query.Offset,
		},
	}, nil
}

func (s *bookingService) findByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("reference", reference))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", reference, ErrNotFound)
	}

	bookings := []*entity.Booking{booking}
	if err := attachPayments(ctx, s.repo.Payment, bookings); err != nil {
		s.log.Error("Failed to attach payments", zap.Error(err), zap.String("reference", reference))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return booking, nil
}

// toBookingFilter rejects an inverted date range; everything else was checked by the request parser
func toBookingFilter(query *request.ListBookingsQuery, userID *string) (repository.BookingFilter, error) {
	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return repository.BookingFilter{}, fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	return repository.BookingFilter{
		Status:    query.Status,
		Search:    query.Search,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		UserID:    userID,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}, nil
}

// attachPayments fills Payments on every booking with a single batched lookup
func attachPayments(ctx context.Context, payments repository.PaymentRepository, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	summaries, err := payments.FindSummariesByBookingIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		b.Payments = summaries[b.ID]
	}
	return nil
}
