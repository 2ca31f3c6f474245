package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

// CreateTest persists a complete test definition in one shot: the test, its
// sections and their questions, key material included. Definitions are
// immutable once created, so all structural validation happens here.
func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	testID := uuid.New().String()

	sectionOrders := make(map[int]bool)
	sections := make([]model.Section, 0, len(req.Sections))
	for _, sectionDto := range req.Sections {
		if sectionOrders[sectionDto.OrderInTest] {
			return nil, fmt.Errorf("duplicate section order %d", sectionDto.OrderInTest)
		}
		sectionOrders[sectionDto.OrderInTest] = true

		sectionID := uuid.New().String()
		questionOrders := make(map[int]bool)
		questions := make([]model.Question, 0, len(sectionDto.Questions))
		for _, questionDto := range sectionDto.Questions {
			if questionOrders[questionDto.OrderInSection] {
				return nil, fmt.Errorf("duplicate question order %d in section '%s'", questionDto.OrderInSection, sectionDto.Title)
			}
			questionOrders[questionDto.OrderInSection] = true

			question, err := buildQuestion(testID, sectionID, questionDto)
			if err != nil {
				return nil, err
			}
			questions = append(questions, *question)
		}

		sections = append(sections, model.Section{
			ID:          sectionID,
			TestID:      testID,
			Title:       sectionDto.Title,
			OrderInTest: sectionDto.OrderInTest,
			Questions:   questions,
		})
	}

	testModel := model.Test{
		ID:                testID,
		Title:             req.Title,
		Description:       req.Description,
		PassingPercentage: req.PassingPercentage,
		Sections:          sections,
	}

	if err := s.testRepo.Create(&testModel); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: Failed to create test in database")
		return nil, fmt.Errorf("creating test '%s': %w", req.Title, err)
	}

	created, err := s.testRepo.FindByIDWithSections(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("CreateTest: Failed to reload created test for response")
		return testResponse(&testModel)
	}
	return testResponse(created)
}

// buildQuestion checks the key material each question type requires and
// assembles the stored model. Essays carry no key and are reviewed manually.
func buildQuestion(testID, sectionID string, questionDto dto.QuestionCreateDTO) (*model.Question, error) {
	question := model.Question{
		ID:             uuid.New().String(),
		SectionID:      sectionID,
		TestID:         testID,
		Prompt:         questionDto.Prompt,
		Type:           questionDto.Type,
		Points:         questionDto.Points,
		OrderInSection: questionDto.OrderInSection,
	}

	switch questionDto.Type {
	case model.QuestionTypeMultipleChoice:
		if len(questionDto.Choices) < 2 {
			return nil, fmt.Errorf("multiple-choice question '%s' requires at least 2 choices, got %d", questionDto.Prompt, len(questionDto.Choices))
		}
		if questionDto.CorrectOption == nil || *questionDto.CorrectOption == "" {
			return nil, fmt.Errorf("multiple-choice question '%s' requires a correct_option", questionDto.Prompt)
		}
		found := false
		for _, choice := range questionDto.Choices {
			if choice == *questionDto.CorrectOption {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("correct_option '%s' of question '%s' is not among its choices", *questionDto.CorrectOption, questionDto.Prompt)
		}
		if err := question.SetChoices(questionDto.Choices); err != nil {
			return nil, err
		}
		question.CorrectOption = questionDto.CorrectOption

	case model.QuestionTypeTrueFalse:
		if questionDto.CorrectBoolean == nil {
			return nil, fmt.Errorf("true-false question '%s' requires a correct_boolean", questionDto.Prompt)
		}
		question.CorrectBool = questionDto.CorrectBoolean

	case model.QuestionTypeShortAnswer:
		if len(questionDto.AcceptedAnswers) == 0 {
			return nil, fmt.Errorf("short-answer question '%s' requires at least one accepted answer", questionDto.Prompt)
		}
		for _, accepted := range questionDto.AcceptedAnswers {
			if strings.TrimSpace(accepted) == "" {
				return nil, fmt.Errorf("short-answer question '%s' has a blank accepted answer", questionDto.Prompt)
			}
		}
		if err := question.SetAcceptedAnswers(questionDto.AcceptedAnswers); err != nil {
			return nil, err
		}

	case model.QuestionTypeEssay:
		// No key material to validate.

	default:
		return nil, fmt.Errorf("unsupported question type '%s'", questionDto.Type)
	}

	return &question, nil
}
