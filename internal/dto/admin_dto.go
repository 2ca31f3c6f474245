package dto

// QuestionCreateDTO is used within SectionCreateDTO for admin test creation.
// Key material is required per type: multiple-choice needs Choices and
// CorrectOption, true-false needs CorrectBoolean, short-answer needs
// AcceptedAnswers. Essay questions carry no key and are reviewed manually.
type QuestionCreateDTO struct {
	Prompt          string   `json:"prompt" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=multiple-choice true-false short-answer essay"`
	Points          float64  `json:"points" binding:"required,gt=0"`
	OrderInSection  int      `json:"order_in_section" binding:"required,min=1"`
	Choices         []string `json:"choices,omitempty"`
	CorrectOption   *string  `json:"correct_option,omitempty"`
	CorrectBoolean  *bool    `json:"correct_boolean,omitempty"`
	AcceptedAnswers []string `json:"accepted_answers,omitempty"`
}

// SectionCreateDTO groups questions under one titled section of the test.
type SectionCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	OrderInTest int                 `json:"order_in_test" binding:"required,min=1"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestCreateDTO is for admin to create a new test with all its sections.
type TestCreateDTO struct {
	Title             string             `json:"title" binding:"required"`
	Description       string             `json:"description,omitempty"`
	PassingPercentage float64            `json:"passing_percentage" binding:"required,gte=0,lte=100"`
	Sections          []SectionCreateDTO `json:"sections" binding:"required,min=1,dive"`
}

// ManualGradeDTO carries a reviewer's points for one pending-review answer.
type ManualGradeDTO struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Points     float64 `json:"points" binding:"gte=0"`
}

// ManualGradeBatchDTO applies reviewer grades to a completed attempt and
// triggers a score recomputation.
type ManualGradeBatchDTO struct {
	GradedBy string           `json:"graded_by" binding:"required"`
	Grades   []ManualGradeDTO `json:"grades" binding:"required,min=1,dive"`
}
