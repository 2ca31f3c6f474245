package service

import (
	"testing"

	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestCreate() dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Title:             "Midterm Exam A",
		Description:       "Covers chapters 1 through 4.",
		PassingPercentage: 60,
		Sections: []dto.SectionCreateDTO{
			{
				Title:       "Reading",
				OrderInTest: 1,
				Questions: []dto.QuestionCreateDTO{
					{
						Prompt:         "Which option is correct?",
						Type:           model.QuestionTypeMultipleChoice,
						Points:         10,
						OrderInSection: 1,
						Choices:        []string{"opt-a", "opt-b", "opt-c"},
						CorrectOption:  strPtr("opt-a"),
					},
					{
						Prompt:         "The sky is blue.",
						Type:           model.QuestionTypeTrueFalse,
						Points:         5,
						OrderInSection: 2,
						CorrectBoolean: boolPtr(true),
					},
				},
			},
			{
				Title:       "Writing",
				OrderInTest: 2,
				Questions: []dto.QuestionCreateDTO{
					{
						Prompt:          "Name the capital of France.",
						Type:            model.QuestionTypeShortAnswer,
						Points:          5,
						OrderInSection:  1,
						AcceptedAnswers: []string{"Paris"},
					},
					{
						Prompt:         "Discuss the causes of the event.",
						Type:           model.QuestionTypeEssay,
						Points:         20,
						OrderInSection: 2,
					},
				},
			},
		},
	}
}

func TestCreateTestPersistsDefinition(t *testing.T) {
	repo := newMockTestRepo()
	svc := NewAdminTestService(repo)

	resp, err := svc.CreateTest(validTestCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Midterm Exam A", resp.Title)
	assert.Equal(t, 60.0, resp.PassingPercentage)
	require.Len(t, resp.Sections, 2)
	require.Len(t, resp.Sections[0].Questions, 2)
	require.Len(t, resp.Sections[1].Questions, 2)

	// Choices survive the JSON column round trip.
	mc := resp.Sections[0].Questions[0]
	assert.Equal(t, []string{"opt-a", "opt-b", "opt-c"}, mc.Choices)

	// Key material is stored on the model but never leaves the service.
	stored, err := repo.FindByID(resp.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sections, 2)
	storedMC := stored.Sections[0].Questions[0]
	require.NotNil(t, storedMC.CorrectOption)
	assert.Equal(t, "opt-a", *storedMC.CorrectOption)
	accepted, err := stored.Sections[1].Questions[0].AcceptedAnswerList()
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, accepted)
}

func TestCreateTestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.TestCreateDTO)
		errHas string
	}{
		{
			name:   "duplicate section order",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[1].OrderInTest = 1 },
			errHas: "duplicate section order",
		},
		{
			name:   "duplicate question order within a section",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[1].OrderInSection = 1 },
			errHas: "duplicate question order",
		},
		{
			name:   "multiple-choice with one choice",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[0].Choices = []string{"opt-a"} },
			errHas: "at least 2 choices",
		},
		{
			name:   "multiple-choice without correct option",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[0].CorrectOption = nil },
			errHas: "requires a correct_option",
		},
		{
			name:   "correct option not among choices",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[0].CorrectOption = strPtr("opt-z") },
			errHas: "not among its choices",
		},
		{
			name:   "true-false without correct boolean",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[1].CorrectBoolean = nil },
			errHas: "requires a correct_boolean",
		},
		{
			name:   "short-answer without accepted answers",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[1].Questions[0].AcceptedAnswers = nil },
			errHas: "at least one accepted answer",
		},
		{
			name:   "short-answer with blank accepted answer",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[1].Questions[0].AcceptedAnswers = []string{"   "} },
			errHas: "blank accepted answer",
		},
		{
			name:   "unsupported type",
			mutate: func(req *dto.TestCreateDTO) { req.Sections[0].Questions[0].Type = "matching" },
			errHas: "unsupported question type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockTestRepo()
			svc := NewAdminTestService(repo)

			req := validTestCreate()
			tt.mutate(&req)

			_, err := svc.CreateTest(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errHas)
		})
	}
}
