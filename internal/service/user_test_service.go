package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID string) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: Failed to get tests with question count from repository")
		return nil, fmt.Errorf("fetching tests: %w", err)
	}

	var dtos []dto.TestSummaryDTO
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:                twc.Test.ID,
			Title:             twc.Test.Title,
			Description:       twc.Test.Description,
			PassingPercentage: twc.Test.PassingPercentage,
			QuestionCount:     twc.QuestionCount,
			CreatedAt:         twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(testID string) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithSections(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		log.Error().Err(err).Str("testID", testID).Msg("GetTestDetails: Failed to get test from repository")
		return nil, fmt.Errorf("fetching test %s: %w", testID, err)
	}
	return testResponse(test)
}

// testResponse maps a test definition to its response shape. The mapping is
// spelled out field by field because key material must never reach the DTO,
// and stored choices need decoding from their JSON column.
func testResponse(test *model.Test) (*dto.TestResponseDTO, error) {
	resp := dto.TestResponseDTO{
		ID:                test.ID,
		Title:             test.Title,
		Description:       test.Description,
		PassingPercentage: test.PassingPercentage,
		CreatedAt:         test.CreatedAt,
	}
	for _, section := range test.Sections {
		sectionDto := dto.SectionResponseDTO{
			ID:          section.ID,
			Title:       section.Title,
			OrderInTest: section.OrderInTest,
		}
		for i := range section.Questions {
			question := &section.Questions[i]
			choices, err := question.ChoiceList()
			if err != nil {
				log.Error().Err(err).Str("questionID", question.ID).Msg("Failed to decode stored choices")
				return nil, fmt.Errorf("preparing test details response: %w", err)
			}
			sectionDto.Questions = append(sectionDto.Questions, dto.QuestionResponseDTO{
				ID:             question.ID,
				SectionID:      question.SectionID,
				Prompt:         question.Prompt,
				Type:           question.Type,
				Points:         question.Points,
				OrderInSection: question.OrderInSection,
				Choices:        choices,
			})
		}
		resp.Sections = append(resp.Sections, sectionDto)
	}
	return &resp, nil
}
