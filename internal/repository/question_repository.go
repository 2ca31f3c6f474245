package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository is the answer-key lookup surface. Questions are written
// through TestRepository.Create as part of their test.
type QuestionRepository interface {
	FindByID(id string) (*model.Question, error)
	FindByTestID(testID string) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByTestID(testID string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("test_id = ?", testID).Order("order_in_section ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
