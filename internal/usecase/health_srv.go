package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/response"

	"go.uber.org/zap"
)

const probeTimeout = 3 * time.Second

type HealthService interface {
	Check(ctx context.Context) (*response.HealthResponse, error)
}

type healthService struct {
	repo     repository.HealthRepository
	presence map[string]bool
	now      func() time.Time
	log      *zap.Logger
}

// NewHealthService takes the configuration presence flags once; they are reported as-is
func NewHealthService(repo repository.HealthRepository, presence map[string]bool, log *zap.Logger) HealthService {
	return &healthService{
		repo:     repo,
		presence: presence,
		now:      time.Now,
		log:      log.With(zap.String("service", "health")),
	}
}

func (s *healthService) Check(ctx context.Context) (*response.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := s.repo.Probe(ctx); err != nil {
		s.log.Error("Health probe failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return &response.HealthResponse{
		Status:      "ok",
		Timestamp:   s.now().UTC(),
		Environment: s.presence,
	}, nil
}
