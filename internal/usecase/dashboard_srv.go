package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"

	"go.uber.org/zap"
)

// RecentBookingsLimit caps the recent list shown on the dashboard
const RecentBookingsLimit = 5

type DashboardService interface {
	GetDashboard(ctx context.Context, timeRange request.TimeRange) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, timeRange request.TimeRange) (*response.DashboardResponse, error) {
	since := timeRange.Since(s.now().UTC())

	counts, err := s.repo.Metrics.BookingCounts(ctx, since)
	if err != nil {
		s.log.Error("Failed to load booking counts", zap.Error(err), zap.String("time_range", string(timeRange)))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	revenue, err := s.repo.Metrics.RevenueTotals(ctx, since)
	if err != nil {
		s.log.Error("Failed to load revenue totals", zap.Error(err), zap.String("time_range", string(timeRange)))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	recent, err := s.repo.Booking.FindByFilter(ctx, repository.BookingFilter{
		StartDate: &since,
		Limit:     RecentBookingsLimit,
	})
	if err != nil {
		s.log.Error("Failed to load recent bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := attachPayments(ctx, s.repo.Payment, recent); err != nil {
		s.log.Error("Failed to attach payments", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &response.DashboardResponse{
		Metrics:        response.MetricsToResponse(counts, revenue),
		RecentBookings: response.BookingsToResponse(recent),
		TimeRange:      string(timeRange),
	}, nil
}
