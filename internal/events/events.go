package events

import (
	"time"

	"github.com/lshigami/Caracal/internal/model"
)

// Event is one attempt lifecycle notification for downstream consumers
// (analytics, notifications). Score is set on completion events only.
type Event struct {
	Type       string
	AttemptID  string
	TestID     string
	StudentID  string
	OccurredAt time.Time
	Score      *model.ScoreSummary
}

// Emitter is the outbound side of the engine. Delivery is fire-and-forget:
// a slow or failing consumer must never fail the attempt operation that
// raised the event.
type Emitter interface {
	Publish(event Event)
}
