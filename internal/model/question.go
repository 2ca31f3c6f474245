package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeShortAnswer    = "short-answer"
	QuestionTypeEssay          = "essay"
)

type Question struct {
	ID              string         `gorm:"type:uuid;primarykey" json:"id"`
	SectionID       string         `json:"section_id" gorm:"type:uuid;not null;index"`
	TestID          string         `json:"test_id" gorm:"type:uuid;not null;index"`
	Prompt          string         `json:"prompt" gorm:"type:text;not null"`
	Type            string         `json:"type" gorm:"not null"` // "multiple-choice", "true-false", "short-answer", "essay"
	Points          float64        `json:"points" gorm:"not null"`
	OrderInSection  int            `json:"order_in_section" gorm:"not null"`
	Choices         datatypes.JSON `json:"choices,omitempty"`
	CorrectOption   *string        `json:"-"`
	CorrectBool     *bool          `json:"-"`
	AcceptedAnswers datatypes.JSON `json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) ChoiceList() ([]string, error) {
	if len(q.Choices) == 0 {
		return nil, nil
	}
	var choices []string
	if err := json.Unmarshal(q.Choices, &choices); err != nil {
		return nil, fmt.Errorf("decode choices for question %s: %w", q.ID, err)
	}
	return choices, nil
}

func (q *Question) AcceptedAnswerList() ([]string, error) {
	if len(q.AcceptedAnswers) == 0 {
		return nil, nil
	}
	var accepted []string
	if err := json.Unmarshal(q.AcceptedAnswers, &accepted); err != nil {
		return nil, fmt.Errorf("decode accepted answers for question %s: %w", q.ID, err)
	}
	return accepted, nil
}

func (q *Question) SetChoices(choices []string) error {
	raw, err := json.Marshal(choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}
	q.Choices = datatypes.JSON(raw)
	return nil
}

func (q *Question) SetAcceptedAnswers(accepted []string) error {
	raw, err := json.Marshal(accepted)
	if err != nil {
		return fmt.Errorf("encode accepted answers: %w", err)
	}
	q.AcceptedAnswers = datatypes.JSON(raw)
	return nil
}
