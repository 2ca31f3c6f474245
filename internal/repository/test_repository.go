package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id string) (*model.Test, error)
	FindByIDWithSections(id string) (*model.Test, error)
	FindAllWithQuestionCount() ([]struct {
		model.Test
		QuestionCount int
	}, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM's Create with associations persists sections and questions in one
	// go as long as the foreign keys are declared on the models.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, "id = ?", id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithSections(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.order_in_test ASC")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_section ASC")
		}).
		First(&test, "id = ?", id).Error
	return &test, err
}

func (r *testRepository) FindAllWithQuestionCount() ([]struct {
	model.Test
	QuestionCount int
}, error) {
	var results []struct {
		model.Test
		QuestionCount int
	}
	err := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count").
		Order("tests.created_at DESC").
		Where("tests.deleted_at IS NULL").
		Scan(&results).Error
	return results, err
}
