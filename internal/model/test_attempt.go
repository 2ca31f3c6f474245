package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSuspended  = "suspended"
	AttemptStatusCompleted  = "completed"
)

var (
	ErrIntervalAlreadyOpen = errors.New("active interval already open")
	ErrNoOpenInterval      = errors.New("no open active interval")
)

// ActiveInterval is one wall-clock span during which the attempt was being
// worked on. End stays nil while the span is still open.
type ActiveInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

type ScoreSummary struct {
	TotalPoints float64 `json:"total_points"`
	MaxPoints   float64 `json:"max_points"`
	Percentage  float64 `json:"percentage"`
	Passed      bool    `json:"passed"`
	Provisional bool    `json:"provisional"`
}

type TestAttempt struct {
	ID              string         `gorm:"type:uuid;primarykey" json:"id"`
	TestID          string         `json:"test_id" gorm:"type:uuid;not null;index:idx_test_attempts_test_student"`
	Test            Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID       string         `json:"student_id" gorm:"not null;index:idx_test_attempts_test_student;index"`
	Status          string         `json:"status" gorm:"not null;default:'in_progress'"` // "in_progress", "suspended", "completed"
	StartedAt       time.Time      `json:"started_at" gorm:"not null"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	ActiveIntervals datatypes.JSON `json:"active_intervals" gorm:"not null"`
	Score           datatypes.JSON `json:"score,omitempty"`
	Answers         []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (a *TestAttempt) Intervals() ([]ActiveInterval, error) {
	if len(a.ActiveIntervals) == 0 {
		return nil, nil
	}
	var spans []ActiveInterval
	if err := json.Unmarshal(a.ActiveIntervals, &spans); err != nil {
		return nil, fmt.Errorf("decode active intervals for attempt %s: %w", a.ID, err)
	}
	return spans, nil
}

func (a *TestAttempt) setIntervals(spans []ActiveInterval) error {
	raw, err := json.Marshal(spans)
	if err != nil {
		return fmt.Errorf("encode active intervals for attempt %s: %w", a.ID, err)
	}
	a.ActiveIntervals = datatypes.JSON(raw)
	return nil
}

// OpenInterval starts a new active span at now. The previous span must be
// closed first or elapsed-time accounting would double count.
func (a *TestAttempt) OpenInterval(now time.Time) error {
	spans, err := a.Intervals()
	if err != nil {
		return err
	}
	if n := len(spans); n > 0 && spans[n-1].End == nil {
		return ErrIntervalAlreadyOpen
	}
	spans = append(spans, ActiveInterval{Start: now})
	return a.setIntervals(spans)
}

// CloseInterval seals the currently open span at now.
func (a *TestAttempt) CloseInterval(now time.Time) error {
	spans, err := a.Intervals()
	if err != nil {
		return err
	}
	n := len(spans)
	if n == 0 || spans[n-1].End != nil {
		return ErrNoOpenInterval
	}
	end := now
	spans[n-1].End = &end
	return a.setIntervals(spans)
}

// ElapsedSeconds sums the closed spans plus the live tail of an open span.
// Suspended wall-clock time is never counted.
func (a *TestAttempt) ElapsedSeconds(now time.Time) (int64, error) {
	spans, err := a.Intervals()
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, span := range spans {
		end := now
		if span.End != nil {
			end = *span.End
		}
		if end.After(span.Start) {
			total += end.Sub(span.Start)
		}
	}
	return int64(total.Seconds()), nil
}

func (a *TestAttempt) ScoreSummary() (*ScoreSummary, error) {
	if len(a.Score) == 0 {
		return nil, nil
	}
	var summary ScoreSummary
	if err := json.Unmarshal(a.Score, &summary); err != nil {
		return nil, fmt.Errorf("decode score for attempt %s: %w", a.ID, err)
	}
	return &summary, nil
}

func (a *TestAttempt) SetScoreSummary(summary ScoreSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode score for attempt %s: %w", a.ID, err)
	}
	a.Score = datatypes.JSON(raw)
	return nil
}
