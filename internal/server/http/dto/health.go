package dto

import "time"

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse carries a human-readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
