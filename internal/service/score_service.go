package service

import (
	"math"

	"github.com/lshigami/Caracal/internal/model"
)

// ScoreService folds a full attempt's answers into a score summary. It is
// pure computation: manual-grade recomputation re-invokes Aggregate over the
// updated answers rather than patching the stored summary in place.
type ScoreService interface {
	Aggregate(questions []model.Question, answers []model.Answer, passingPercentage float64) model.ScoreSummary
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

// Aggregate walks every question of the test, not just the answered ones.
// An unanswered question counts as zero points. An answer still awaiting
// manual review contributes zero and marks the summary provisional; once a
// reviewer has graded it, its manual points count like any other award.
func (s *scoreService) Aggregate(questions []model.Question, answers []model.Answer, passingPercentage float64) model.ScoreSummary {
	byQuestion := make(map[string]*model.Answer, len(answers))
	for i := range answers {
		byQuestion[answers[i].QuestionID] = &answers[i]
	}

	var summary model.ScoreSummary
	for _, question := range questions {
		summary.MaxPoints += question.Points

		answer, ok := byQuestion[question.ID]
		if !ok {
			continue
		}
		if answer.AwaitingReview() {
			summary.Provisional = true
			continue
		}
		summary.TotalPoints += answer.EffectivePoints()
	}

	if summary.MaxPoints == 0 {
		// A test with no graded questions never passes.
		return summary
	}

	summary.Percentage = round2(summary.TotalPoints / summary.MaxPoints * 100)
	summary.Passed = summary.Percentage >= passingPercentage
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
