package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestDashboard(repo *repository.Repository) *dashboardService {
	s := NewDashboardService(repo, zap.NewNop()).(*dashboardService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestGetDashboard_Windows(t *testing.T) {
	tests := []struct {
		timeRange request.TimeRange
		since     time.Time
	}{
		{request.TimeRangeDay, fixedNow.Add(-24 * time.Hour)},
		{request.TimeRangeWeek, fixedNow.AddDate(0, 0, -7)},
		{request.TimeRangeMonth, fixedNow.AddDate(0, 0, -30)},
		{request.TimeRangeYear, fixedNow.AddDate(0, 0, -365)},
	}

	for _, tt := range tests {
		t.Run(string(tt.timeRange), func(t *testing.T) {
			repo, mocks := newMockRepository()
			service := newTestDashboard(repo)
			ctx := context.Background()

			mocks.metrics.On("BookingCounts", ctx, tt.since).Return(&entity.BookingCounts{}, nil)
			mocks.metrics.On("RevenueTotals", ctx, tt.since).Return(&entity.RevenueTotals{}, nil)
			mocks.booking.On("FindByFilter", ctx, mock.MatchedBy(func(f repository.BookingFilter) bool {
				return f.StartDate != nil && f.StartDate.Equal(tt.since) && f.Limit == RecentBookingsLimit
			})).Return([]*entity.Booking{}, nil)

			resp, err := service.GetDashboard(ctx, tt.timeRange)

			require.NoError(t, err)
			assert.Equal(t, string(tt.timeRange), resp.TimeRange)
			mocks.metrics.AssertExpectations(t)
			mocks.booking.AssertExpectations(t)
		})
	}
}

func TestGetDashboard_EmptyWindowIsZeroed(t *testing.T) {
	repo, mocks := newMockRepository()
	service := newTestDashboard(repo)
	ctx := context.Background()

	mocks.metrics.On("BookingCounts", ctx, mock.Anything).Return(&entity.BookingCounts{}, nil)
	mocks.metrics.On("RevenueTotals", ctx, mock.Anything).Return(&entity.RevenueTotals{}, nil)
	mocks.booking.On("FindByFilter", ctx, mock.Anything).Return([]*entity.Booking{}, nil)

	resp, err := service.GetDashboard(ctx, request.TimeRangeDay)

	require.NoError(t, err)
	assert.Zero(t, resp.Metrics.Bookings.Total)
	assert.Zero(t, resp.Metrics.Bookings.Pending)
	assert.Zero(t, resp.Metrics.Revenue.Total)
	assert.Zero(t, resp.Metrics.Revenue.SuccessfulPayments)
	assert.NotNil(t, resp.RecentBookings)
	assert.Empty(t, resp.RecentBookings)
}

func TestGetDashboard_Aggregates(t *testing.T) {
	repo, mocks := newMockRepository()
	service := newTestDashboard(repo)
	ctx := context.Background()

	recent := newBooking("NEW001", "user_1", entity.BookingStatusPending)

	mocks.metrics.On("BookingCounts", ctx, mock.Anything).
		Return(&entity.BookingCounts{Total: 12, Pending: 3, Confirmed: 7, Cancelled: 2}, nil)
	mocks.metrics.On("RevenueTotals", ctx, mock.Anything).
		Return(&entity.RevenueTotals{Total: 1999.5, SuccessfulPayments: 7, FailedPayments: 1}, nil)
	mocks.booking.On("FindByFilter", ctx, mock.Anything).Return([]*entity.Booking{recent}, nil)
	mocks.payment.On("FindSummariesByBookingIDs", ctx, []uuid.UUID{recent.ID}).
		Return(map[uuid.UUID][]entity.PaymentSummary{}, nil)

	resp, err := service.GetDashboard(ctx, request.TimeRangeWeek)

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Metrics.Bookings.Total)
	assert.Equal(t, int64(7), resp.Metrics.Bookings.Confirmed)
	assert.Equal(t, 1999.5, resp.Metrics.Revenue.Total)
	assert.Equal(t, int64(1), resp.Metrics.Revenue.FailedPayments)
	require.Len(t, resp.RecentBookings, 1)
	assert.Equal(t, "NEW001", resp.RecentBookings[0].Reference)
	assert.Equal(t, "week", resp.TimeRange)
}

func TestGetDashboard_Failure(t *testing.T) {
	repo, mocks := newMockRepository()
	service := newTestDashboard(repo)
	ctx := context.Background()

	mocks.metrics.On("BookingCounts", ctx, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := service.GetDashboard(ctx, request.TimeRangeDay)

	assert.ErrorIs(t, err, ErrInternal)
}
