package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	byName map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byName := make(map[string]player.Player, len(players))
	for _, item := range players {
		byName[item.Name] = item
	}
	return &PlayerRepository{byName: byName}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	return r.collect(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamAbbreviation string) ([]player.Player, error) {
	return r.collect(func(item player.Player) bool {
		return item.TeamAbbreviation == teamAbbreviation
	}), nil
}

func (r *PlayerRepository) collect(keep func(player.Player) bool) []player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.byName))
	for _, item := range r.byName {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.byName[item.Name]; ok {
		existing.Goals = item.Goals
		existing.Assists = item.Assists
		existing.TeamAbbreviation = item.TeamAbbreviation
		existing.UpdatedAt = now
		r.byName[item.Name] = existing
		return nil
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	r.byName[item.Name] = item
	return nil
}
