package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EventService reads the append-only event log. Events are written by the
// publisher worker, so a just-emitted event may not be visible immediately.
type EventService interface {
	ListByAttempt(attemptID string) ([]dto.EventResponseDTO, error)
}

type eventService struct {
	attemptRepo repository.AttemptRepository
	eventRepo   repository.EventRepository
}

func NewEventService(attemptRepo repository.AttemptRepository, eventRepo repository.EventRepository) EventService {
	return &eventService{attemptRepo: attemptRepo, eventRepo: eventRepo}
}

func (s *eventService) ListByAttempt(attemptID string) ([]dto.EventResponseDTO, error) {
	if _, err := s.attemptRepo.FindByID(attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("ListByAttempt: Failed to load attempt")
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}

	events, err := s.eventRepo.FindByAttemptID(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("ListByAttempt: Failed to load events")
		return nil, fmt.Errorf("loading events for attempt %s: %w", attemptID, err)
	}

	dtos := make([]dto.EventResponseDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, dto.EventResponseDTO{
			ID:        event.ID,
			Type:      event.Type,
			AttemptID: event.AttemptID,
			TestID:    event.TestID,
			StudentID: event.StudentID,
			Payload:   json.RawMessage(event.Payload),
			CreatedAt: event.CreatedAt,
		})
	}
	return dtos, nil
}
