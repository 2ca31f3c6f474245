package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.TestAttempt) error
	FindByID(id string) (*model.TestAttempt, error)
	FindByIDWithAnswers(id string) (*model.TestAttempt, error)
	UpdateIfStatus(attempt *model.TestAttempt, fromStatuses []string) (bool, error)
	SaveManualGrades(attempt *model.TestAttempt, graded []model.Answer) error
	FindAllByStudent(studentID string) ([]model.TestAttempt, error)
	FindAllByTest(testID string) ([]model.TestAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

// Create relies on the partial unique index over (test_id, student_id) for
// rows whose status is not completed. A second in-flight start for the same
// student and test surfaces here as gorm.ErrDuplicatedKey.
func (r *attemptRepository) Create(attempt *model.TestAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id string) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithAnswers(id string) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.submitted_at ASC")
		}).
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// UpdateIfStatus writes the attempt's mutable columns only when the stored
// row is still in one of fromStatuses. The returned bool is false when a
// concurrent transition won the race and nothing was written.
func (r *attemptRepository) UpdateIfStatus(attempt *model.TestAttempt, fromStatuses []string) (bool, error) {
	res := r.db.Model(&model.TestAttempt{}).
		Where("id = ? AND status IN ?", attempt.ID, fromStatuses).
		Updates(map[string]interface{}{
			"status":           attempt.Status,
			"active_intervals": attempt.ActiveIntervals,
			"completed_at":     attempt.CompletedAt,
			"score":            attempt.Score,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attemptRepository) SaveManualGrades(attempt *model.TestAttempt, graded []model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range graded {
			err := tx.Model(&model.Answer{}).
				Where("id = ?", graded[i].ID).
				Updates(map[string]interface{}{
					"manual_points": graded[i].ManualPoints,
					"graded_by":     graded[i].GradedBy,
					"graded_at":     graded[i].GradedAt,
				}).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&model.TestAttempt{}).
			Where("id = ?", attempt.ID).
			Update("score", attempt.Score).Error
	})
}

func (r *attemptRepository) FindAllByStudent(studentID string) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.Preload("Test").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByTest(testID string) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.Preload("Test").
		Where("test_id = ?", testID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}
