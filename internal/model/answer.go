package model

import (
	"time"
)

const (
	VerdictCorrect       = "correct"
	VerdictIncorrect     = "incorrect"
	VerdictPendingReview = "pending_review"
)

// ValidationResult is the outcome of checking one submitted answer against
// the question's answer key.
type ValidationResult struct {
	QuestionID    string  `json:"question_id"`
	Verdict       string  `json:"verdict"` // "correct", "incorrect", "pending_review"
	PointsAwarded float64 `json:"points_awarded"`
}

type Answer struct {
	ID            string     `gorm:"type:uuid;primarykey" json:"id"`
	AttemptID     string     `json:"attempt_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_attempt_question"`
	QuestionID    string     `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_attempt_question"`
	Content       *string    `json:"content,omitempty" gorm:"type:text"`
	SubmittedAt   time.Time  `json:"submitted_at" gorm:"not null"`
	Verdict       string     `json:"verdict" gorm:"not null"` // "correct", "incorrect", "pending_review"
	PointsAwarded float64    `json:"points_awarded" gorm:"not null"`
	ManualPoints  *float64   `json:"manual_points,omitempty"`
	GradedBy      *string    `json:"graded_by,omitempty"`
	GradedAt      *time.Time `json:"graded_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// EffectivePoints prefers a manual grade over the automatic award.
func (a *Answer) EffectivePoints() float64 {
	if a.ManualPoints != nil {
		return *a.ManualPoints
	}
	return a.PointsAwarded
}

// AwaitingReview reports whether the answer still needs a manual grade.
func (a *Answer) AwaitingReview() bool {
	return a.Verdict == VerdictPendingReview && a.ManualPoints == nil
}
