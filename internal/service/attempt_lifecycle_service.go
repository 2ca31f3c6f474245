package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Caracal/internal/model"
)

// AttemptLifecycleService owns the legal status transitions of one attempt
// record and the active-interval bookkeeping that rides along with them.
// It mutates records in memory only; persistence of the transition is the
// caller's job, guarded by a conditional write on the previous status.
//
//	in_progress -> suspended -> in_progress -> ... -> completed
//	in_progress -> completed
//
// Nothing leaves completed.
type AttemptLifecycleService interface {
	Create(testID, studentID string, now time.Time) (*model.TestAttempt, error)
	Suspend(attempt *model.TestAttempt, now time.Time) error
	Resume(attempt *model.TestAttempt, now time.Time) error
	Complete(attempt *model.TestAttempt, score model.ScoreSummary, now time.Time) error
}

type attemptLifecycleService struct{}

func NewAttemptLifecycleService() AttemptLifecycleService {
	return &attemptLifecycleService{}
}

// Create builds a fresh in_progress attempt with its first active interval
// already open at now.
func (s *attemptLifecycleService) Create(testID, studentID string, now time.Time) (*model.TestAttempt, error) {
	attempt := &model.TestAttempt{
		ID:        uuid.New().String(),
		TestID:    testID,
		StudentID: studentID,
		Status:    model.AttemptStatusInProgress,
		StartedAt: now,
	}
	if err := attempt.OpenInterval(now); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *attemptLifecycleService) Suspend(attempt *model.TestAttempt, now time.Time) error {
	switch attempt.Status {
	case model.AttemptStatusCompleted:
		return ErrAttemptAlreadyCompleted
	case model.AttemptStatusInProgress:
		if err := attempt.CloseInterval(now); err != nil {
			return err
		}
		attempt.Status = model.AttemptStatusSuspended
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (s *attemptLifecycleService) Resume(attempt *model.TestAttempt, now time.Time) error {
	switch attempt.Status {
	case model.AttemptStatusCompleted:
		return ErrAttemptAlreadyCompleted
	case model.AttemptStatusSuspended:
		if err := attempt.OpenInterval(now); err != nil {
			return err
		}
		attempt.Status = model.AttemptStatusInProgress
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Complete seals the attempt from either live state. The open interval is
// closed only when one exists, so completing a suspended attempt does not
// add time.
func (s *attemptLifecycleService) Complete(attempt *model.TestAttempt, score model.ScoreSummary, now time.Time) error {
	switch attempt.Status {
	case model.AttemptStatusCompleted:
		return ErrAttemptAlreadyCompleted
	case model.AttemptStatusInProgress:
		if err := attempt.CloseInterval(now); err != nil {
			return err
		}
	case model.AttemptStatusSuspended:
		// Interval already closed by the suspend.
	default:
		return ErrInvalidTransition
	}

	if err := attempt.SetScoreSummary(score); err != nil {
		return err
	}
	completedAt := now
	attempt.CompletedAt = &completedAt
	attempt.Status = model.AttemptStatusCompleted
	return nil
}
