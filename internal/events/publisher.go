package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// Publisher fans attempt events out to the log and to the attempt_events
// table from a single worker goroutine, keeping event delivery off the
// request path. Publish never blocks: when the buffer is saturated the
// event is dropped with a warning rather than queued.
type Publisher struct {
	ch        chan Event
	eventRepo repository.EventRepository
	wg        sync.WaitGroup
	once      sync.Once
}

func NewPublisher(cfg *config.Config, eventRepo repository.EventRepository) *Publisher {
	size := cfg.Events.BufferSize
	if size <= 0 {
		size = 256
	}
	return &Publisher{
		ch:        make(chan Event, size),
		eventRepo: eventRepo,
	}
}

func (p *Publisher) Publish(event Event) {
	select {
	case p.ch <- event:
	default:
		log.Warn().Str("type", event.Type).Str("attemptID", event.AttemptID).Msg("Event buffer saturated, dropping event")
	}
}

// Start launches the delivery worker.
func (p *Publisher) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for event := range p.ch {
			p.deliver(event)
		}
	}()
}

// Stop closes the intake and waits for already-buffered events to drain.
func (p *Publisher) Stop() {
	p.once.Do(func() { close(p.ch) })
	p.wg.Wait()
}

func (p *Publisher) deliver(event Event) {
	log.Info().
		Str("type", event.Type).
		Str("attemptID", event.AttemptID).
		Str("testID", event.TestID).
		Str("studentID", event.StudentID).
		Time("occurredAt", event.OccurredAt).
		Msg("attempt_event")

	record := model.AttemptEvent{
		ID:        uuid.New().String(),
		Type:      event.Type,
		AttemptID: event.AttemptID,
		TestID:    event.TestID,
		StudentID: event.StudentID,
	}

	body := struct {
		OccurredAt time.Time           `json:"occurred_at"`
		Score      *model.ScoreSummary `json:"score,omitempty"`
	}{event.OccurredAt, event.Score}
	if raw, err := json.Marshal(body); err == nil {
		record.Payload = datatypes.JSON(raw)
	} else {
		log.Error().Err(err).Str("attemptID", event.AttemptID).Msg("Failed to encode event payload")
	}

	if err := p.eventRepo.Append(&record); err != nil {
		log.Error().Err(err).Str("attemptID", event.AttemptID).Str("type", event.Type).Msg("Failed to append attempt event")
	}
}
