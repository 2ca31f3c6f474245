package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventAttemptStarted   = "attempt.started"
	EventAttemptSuspended = "attempt.suspended"
	EventAttemptResumed   = "attempt.resumed"
	EventAttemptCompleted = "attempt.completed"
)

type AttemptEvent struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	Type      string         `json:"type" gorm:"not null;index"` // "attempt.started", "attempt.suspended", "attempt.resumed", "attempt.completed"
	AttemptID string         `json:"attempt_id" gorm:"type:uuid;not null;index"`
	TestID    string         `json:"test_id" gorm:"type:uuid;not null"`
	StudentID string         `json:"student_id" gorm:"not null"`
	Payload   datatypes.JSON `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
