package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
)

type TeamRepository struct {
	mu             sync.RWMutex
	byAbbreviation map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byAbbreviation := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byAbbreviation[item.Abbreviation] = item
	}
	return &TeamRepository{byAbbreviation: byAbbreviation}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.byAbbreviation))
	for _, item := range r.byAbbreviation {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Abbreviation < out[j].Abbreviation
	})
	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	abbr := strings.TrimSpace(item.Abbreviation)
	if existing, ok := r.byAbbreviation[abbr]; ok {
		existing.Name = item.Name
		existing.UpdatedAt = now
		r.byAbbreviation[abbr] = existing
		return nil
	}

	item.Abbreviation = abbr
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byAbbreviation[abbr] = item
	return nil
}
