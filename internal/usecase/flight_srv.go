package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flight-booking/internal/integration/verteil"

	"go.uber.org/zap"
)

// Operations maps a forwarding operation to its backend path
var Operations = map[string]string{
	"air-shopping":      "/api/verteil/air-shopping",
	"flight-price":      "/api/verteil/flight-price",
	"seat-availability": "/api/verteil/seat-availability",
	"order-create":      "/api/verteil/order-create",
}

// FlightBackend is the transport used for forwarding
type FlightBackend interface {
	Post(ctx context.Context, path string, body []byte) (*verteil.Response, error)
}

// ForwardResult is the reply returned to the caller, backend status unchanged
type ForwardResult struct {
	StatusCode int
	Body       []byte
}

type FlightService interface {
	Forward(ctx context.Context, operation string, body []byte) (*ForwardResult, error)
}

type flightService struct {
	backend FlightBackend
	log     *zap.Logger
}

func NewFlightService(backend FlightBackend, log *zap.Logger) FlightService {
	return &flightService{
		backend: backend,
		log:     log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) Forward(ctx context.Context, operation string, body []byte) (*ForwardResult, error) {
	path, ok := Operations[operation]
	if !ok {
		return nil, fmt.Errorf("operation %q: %w", operation, ErrNotFound)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: request body must be JSON", ErrInvalidInput)
	}

	resp, err := s.backend.Post(ctx, path, body)
	if err != nil {
		if errors.Is(err, verteil.ErrNotConfigured) {
			s.log.Error("Backend API is not configured", zap.String("operation", operation))
		} else {
			s.log.Error("Backend call failed", zap.Error(err), zap.String("operation", operation))
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	enriched, err := enrichBackendBody(resp.Body)
	if err != nil {
		s.log.Error("Backend returned a non-JSON body",
			zap.Error(err),
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &ForwardResult{StatusCode: resp.StatusCode, Body: enriched}, nil
}

// enrichBackendBody lifts data.cache_key to the top level and duplicates the
// parsed object under raw_response. Non-object JSON passes through untouched.
func enrichBackendBody(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode backend body: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode backend body: trailing data")
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return body, nil
	}

	enriched := make(map[string]any, len(obj)+2)
	for k, v := range obj {
		enriched[k] = v
	}

	if data, ok := obj["data"].(map[string]any); ok {
		if cacheKey, ok := data["cache_key"]; ok {
			enriched["cache_key"] = cacheKey
		}
	}
	enriched["raw_response"] = obj

	return json.Marshal(enriched)
}
