package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

// EventRepository is an append-only log of attempt lifecycle events.
type EventRepository interface {
	Append(event *model.AttemptEvent) error
	FindByAttemptID(attemptID string) ([]model.AttemptEvent, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(event *model.AttemptEvent) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByAttemptID(attemptID string) ([]model.AttemptEvent, error) {
	var events []model.AttemptEvent
	if err := r.db.Where("attempt_id = ?", attemptID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
