package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
)

// MatchEventRepository keeps events in insertion order.
type MatchEventRepository struct {
	mu     sync.RWMutex
	events []matchevent.Event
	now    func() time.Time
}

func NewMatchEventRepository() *MatchEventRepository {
	return &MatchEventRepository{now: time.Now}
}

func (r *MatchEventRepository) ListRecent(_ context.Context, limit int) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]matchevent.Event, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

func (r *MatchEventRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
	return nil
}

func (r *MatchEventRepository) Insert(_ context.Context, item matchevent.Event) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.EventType == "" {
		item.EventType = matchevent.TypeGoal
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	item.CreatedAt = r.now().UTC()
	r.events = append(r.events, item)
	return nil
}
