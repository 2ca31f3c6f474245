package repository

import (
	"time"

	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	Upsert(answer *model.Answer) error
	FindByAttemptID(attemptID string) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Upsert keeps one row per (attempt_id, question_id). A resubmission
// replaces the submission columns in place and never touches the manual
// grading columns.
func (r *answerRepository) Upsert(answer *model.Answer) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":        answer.Content,
			"submitted_at":   answer.SubmittedAt,
			"verdict":        answer.Verdict,
			"points_awarded": answer.PointsAwarded,
			"updated_at":     time.Now(),
		}),
	}).Create(answer).Error; err != nil {
		return err
	}

	// On conflict the stored row keeps its original id; read it back so the
	// caller holds the canonical row, not the discarded insert candidate.
	var stored model.Answer
	if err := r.db.Where("attempt_id = ? AND question_id = ?", answer.AttemptID, answer.QuestionID).First(&stored).Error; err != nil {
		return err
	}
	*answer = stored
	return nil
}

func (r *answerRepository) FindByAttemptID(attemptID string) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("attempt_id = ?", attemptID).Order("submitted_at ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
