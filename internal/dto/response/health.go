package response

import "time"

type HealthResponse struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment map[string]bool `json:"environment,omitempty"`
}
