package service

import (
	"strings"

	"github.com/lshigami/Caracal/internal/model"
	"github.com/rs/zerolog/log"
)

// AnswerValidatorService decides the verdict for one submitted answer
// against its question's key. It is stateless; the engine runs it eagerly
// at submission time and again during manual-grade recomputation.
type AnswerValidatorService interface {
	Validate(question *model.Question, content *string) model.ValidationResult
}

type checkFunc func(question *model.Question, content string) bool

type answerValidatorService struct {
	checks map[string]checkFunc
}

func NewAnswerValidatorService() AnswerValidatorService {
	return &answerValidatorService{
		checks: map[string]checkFunc{
			model.QuestionTypeMultipleChoice: checkMultipleChoice,
			model.QuestionTypeTrueFalse:      checkTrueFalse,
			model.QuestionTypeShortAnswer:    checkShortAnswer,
		},
	}
}

// Validate never returns an error: a blank or missing content is a
// legitimate submission and simply scores as incorrect. Essay answers, and
// any type without a registered check, are held for manual review.
func (s *answerValidatorService) Validate(question *model.Question, content *string) model.ValidationResult {
	result := model.ValidationResult{QuestionID: question.ID}

	check, ok := s.checks[question.Type]
	if !ok {
		if question.Type != model.QuestionTypeEssay {
			log.Warn().Str("questionID", question.ID).Str("type", question.Type).Msg("No check registered for question type, holding for review")
		}
		result.Verdict = model.VerdictPendingReview
		return result
	}

	if content == nil || !check(question, *content) {
		result.Verdict = model.VerdictIncorrect
		return result
	}

	result.Verdict = model.VerdictCorrect
	result.PointsAwarded = question.Points
	return result
}

// checkMultipleChoice compares option ids case-sensitively.
func checkMultipleChoice(question *model.Question, content string) bool {
	return question.CorrectOption != nil && content == *question.CorrectOption
}

// checkTrueFalse accepts the tokens "true" and "false" in any casing.
// Anything unparseable is simply wrong.
func checkTrueFalse(question *model.Question, content string) bool {
	if question.CorrectBool == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(content)) {
	case "true":
		return *question.CorrectBool
	case "false":
		return !*question.CorrectBool
	default:
		return false
	}
}

// checkShortAnswer trims and lower-cases both sides before comparing
// against the accepted-answer set.
func checkShortAnswer(question *model.Question, content string) bool {
	accepted, err := question.AcceptedAnswerList()
	if err != nil {
		log.Error().Err(err).Str("questionID", question.ID).Msg("Failed to decode accepted answers")
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(content))
	for _, candidate := range accepted {
		if normalized == strings.ToLower(strings.TrimSpace(candidate)) {
			return true
		}
	}
	return false
}
