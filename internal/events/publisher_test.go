package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEventRepo struct {
	mu      sync.Mutex
	records []model.AttemptEvent
}

func (r *recordingEventRepo) Append(event *model.AttemptEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *event)
	return nil
}

func (r *recordingEventRepo) FindByAttemptID(attemptID string) ([]model.AttemptEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.AttemptEvent
	for _, rec := range r.records {
		if rec.AttemptID == attemptID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *recordingEventRepo) all() []model.AttemptEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.AttemptEvent, len(r.records))
	copy(out, r.records)
	return out
}

func testConfig(buffer int) *config.Config {
	cfg := &config.Config{}
	cfg.Events.BufferSize = buffer
	return cfg
}

func TestPublisherDeliversToStore(t *testing.T) {
	repo := &recordingEventRepo{}
	publisher := NewPublisher(testConfig(8), repo)
	publisher.Start()

	score := &model.ScoreSummary{TotalPoints: 30, MaxPoints: 50, Percentage: 60, Passed: true}
	publisher.Publish(Event{
		Type:       model.EventAttemptCompleted,
		AttemptID:  "attempt-1",
		TestID:     "test-1",
		StudentID:  "student-1",
		OccurredAt: time.Now(),
		Score:      score,
	})
	publisher.Stop()

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, model.EventAttemptCompleted, records[0].Type)
	assert.Equal(t, "attempt-1", records[0].AttemptID)
	assert.Equal(t, "test-1", records[0].TestID)
	assert.Equal(t, "student-1", records[0].StudentID)
	assert.Contains(t, string(records[0].Payload), `"percentage":60`)
}

func TestPublisherStopDrainsBuffer(t *testing.T) {
	repo := &recordingEventRepo{}
	publisher := NewPublisher(testConfig(16), repo)

	// Queue before the worker starts so everything sits in the buffer.
	for i := 0; i < 10; i++ {
		publisher.Publish(Event{Type: model.EventAttemptStarted, AttemptID: "attempt-1"})
	}
	publisher.Start()
	publisher.Stop()

	assert.Len(t, repo.all(), 10)
}

func TestPublisherDropsWhenSaturated(t *testing.T) {
	repo := &recordingEventRepo{}
	publisher := NewPublisher(testConfig(1), repo)

	// Worker not started: the second publish finds the buffer full and
	// must drop instead of blocking.
	done := make(chan struct{})
	go func() {
		publisher.Publish(Event{Type: model.EventAttemptStarted, AttemptID: "kept"})
		publisher.Publish(Event{Type: model.EventAttemptStarted, AttemptID: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a saturated buffer")
	}

	publisher.Start()
	publisher.Stop()

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].AttemptID)
}
