package dto

import "time"

// QuestionResponseDTO is used for displaying question details to students.
// It never carries key material.
type QuestionResponseDTO struct {
	ID             string   `json:"id"`
	SectionID      string   `json:"section_id"`
	Prompt         string   `json:"prompt"`
	Type           string   `json:"type"`
	Points         float64  `json:"points"`
	OrderInSection int      `json:"order_in_section"`
	Choices        []string `json:"choices,omitempty"`
}

// SectionResponseDTO is one titled block of questions within a test.
type SectionResponseDTO struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	OrderInTest int                   `json:"order_in_test"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
}

// TestResponseDTO is used for displaying full test details.
type TestResponseDTO struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description,omitempty"`
	PassingPercentage float64              `json:"passing_percentage"`
	Sections          []SectionResponseDTO `json:"sections,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to students.
type TestSummaryDTO struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	PassingPercentage float64   `json:"passing_percentage"`
	QuestionCount     int       `json:"question_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// --- DTOs for Test Attempts ---

// AttemptStartDTO opens a new attempt for a student on a test.
type AttemptStartDTO struct {
	StudentID string `json:"student_id" binding:"required"`
}

// AnswerSubmitDTO is one answer submission. Content is optional: a blank
// answer is a legitimate submission, not a malformed request.
type AnswerSubmitDTO struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Content    *string `json:"content"`
}

// AnswerResponseDTO is the stored answer together with its live verdict.
// PointsAwarded is null while an essay answer is still awaiting review.
type AnswerResponseDTO struct {
	ID            string     `json:"id"`
	QuestionID    string     `json:"question_id"`
	Content       *string    `json:"content,omitempty"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	Verdict       string     `json:"verdict"`
	PointsAwarded *float64   `json:"points_awarded"`
	GradedBy      *string    `json:"graded_by,omitempty"`
	GradedAt      *time.Time `json:"graded_at,omitempty"`
}

// ScoreDTO mirrors the stored score summary of a completed attempt.
type ScoreDTO struct {
	TotalPoints float64 `json:"total_points"`
	MaxPoints   float64 `json:"max_points"`
	Percentage  float64 `json:"percentage"`
	Passed      bool    `json:"passed"`
	Provisional bool    `json:"provisional"`
}

// AttemptResponseDTO is the full state of one attempt.
type AttemptResponseDTO struct {
	ID             string              `json:"id"`
	TestID         string              `json:"test_id"`
	TestTitle      string              `json:"test_title,omitempty"`
	StudentID      string              `json:"student_id"`
	Status         string              `json:"status"`
	StartedAt      time.Time           `json:"started_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	ElapsedSeconds int64               `json:"elapsed_seconds"`
	Score          *ScoreDTO           `json:"score,omitempty"`
	Answers        []AnswerResponseDTO `json:"answers,omitempty"`
}

// AttemptSummaryDTO is for listing attempts without their answers.
type AttemptSummaryDTO struct {
	ID             string     `json:"id"`
	TestID         string     `json:"test_id"`
	TestTitle      string     `json:"test_title,omitempty"`
	StudentID      string     `json:"student_id"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ElapsedSeconds int64      `json:"elapsed_seconds"`
	Score          *ScoreDTO  `json:"score,omitempty"`
}
