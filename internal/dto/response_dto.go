package dto

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// EventResponseDTO is one row of an attempt's event log.
type EventResponseDTO struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	AttemptID string          `json:"attempt_id"`
	TestID    string          `json:"test_id"`
	StudentID string          `json:"student_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
