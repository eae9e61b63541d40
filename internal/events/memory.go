package events

import (
	"context"
	"sync"

	"github.com/placeways/waymark/internal/models"
)

// MemoryRepository keeps events in memory. Persistence is out of scope for
// the control, so this is the repository the demo host and tests use.
type MemoryRepository struct {
	mu     sync.Mutex
	events []models.Event
}

// NewMemoryRepository creates an empty in-memory event repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create appends an event.
func (r *MemoryRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	r.events = append(r.events, *event)
	r.mu.Unlock()
	return nil
}

// All returns a copy of every recorded event, oldest first.
func (r *MemoryRepository) All() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

// ByType returns recorded events of one type, oldest first.
func (r *MemoryRepository) ByType(eventType models.EventType) []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Event
	for _, event := range r.events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out
}
