package usecase

import (
	"context"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/integration/verteil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) FindByFilter(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) CountByFilter(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	args := m.Called(ctx, reference)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) FindSummariesByBookingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entity.PaymentSummary, error) {
	args := m.Called(ctx, ids)
	summaries, _ := args.Get(0).(map[uuid.UUID][]entity.PaymentSummary)
	return summaries, args.Error(1)
}

type mockMetricsRepo struct{ mock.Mock }

func (m *mockMetricsRepo) BookingCounts(ctx context.Context, since time.Time) (*entity.BookingCounts, error) {
	args := m.Called(ctx, since)
	counts, _ := args.Get(0).(*entity.BookingCounts)
	return counts, args.Error(1)
}

func (m *mockMetricsRepo) RevenueTotals(ctx context.Context, since time.Time) (*entity.RevenueTotals, error) {
	args := m.Called(ctx, since)
	totals, _ := args.Get(0).(*entity.RevenueTotals)
	return totals, args.Error(1)
}

type mockHealthRepo struct{ mock.Mock }

func (m *mockHealthRepo) Probe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockBackend struct{ mock.Mock }

func (m *mockBackend) Post(ctx context.Context, path string, body []byte) (*verteil.Response, error) {
	args := m.Called(ctx, path, body)
	resp, _ := args.Get(0).(*verteil.Response)
	return resp, args.Error(1)
}

type mockRepos struct {
	booking *mockBookingRepo
	payment *mockPaymentRepo
	metrics *mockMetricsRepo
	health  *mockHealthRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		booking: &mockBookingRepo{},
		payment: &mockPaymentRepo{},
		metrics: &mockMetricsRepo{},
		health:  &mockHealthRepo{},
	}
	return &repository.Repository{
		Booking: m.booking,
		Payment: m.payment,
		Metrics: m.metrics,
		Health:  m.health,
	}, m
}

func newBooking(reference, userID string, status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Reference:   reference,
		UserID:      userID,
		Status:      status,
		TotalAmount: 250,
		Currency:    "USD",
		ContactInfo: entity.ContactInfo{Email: reference + "@example.com"},
	}
}
