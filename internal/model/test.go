package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID                string         `gorm:"type:uuid;primarykey" json:"id"`
	Title             string         `json:"title" gorm:"not null;uniqueIndex"` // "Midterm Exam A"
	Description       string         `json:"description,omitempty"`
	PassingPercentage float64        `json:"passing_percentage" gorm:"not null;default:60"`
	Sections          []Section      `json:"sections,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

type Section struct {
	ID          string         `gorm:"type:uuid;primarykey" json:"id"`
	TestID      string         `json:"test_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	OrderInTest int            `json:"order_in_test" gorm:"not null"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuestionCount walks the preloaded sections. It is zero when sections
// were not loaded, so callers that need the real count must preload.
func (t *Test) QuestionCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Questions)
	}
	return n
}

// AllQuestions flattens the preloaded sections in section order.
func (t *Test) AllQuestions() []Question {
	var questions []Question
	for _, s := range t.Sections {
		questions = append(questions, s.Questions...)
	}
	return questions
}
