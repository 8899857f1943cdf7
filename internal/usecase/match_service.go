package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
)

const (
	defaultRecentEventsLimit = 50
	maxRecentEventsLimit     = 200
)

type MatchService struct {
	matchRepo match.Repository
	eventRepo matchevent.Repository
}

func NewMatchService(matchRepo match.Repository, eventRepo matchevent.Repository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		eventRepo: eventRepo,
	}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// ListRecentEvents returns the newest scoring events. A non-positive limit
// selects the default and larger values are capped.
func (s *MatchService) ListRecentEvents(ctx context.Context, limit int) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRecentEvents")
	defer span.End()

	items, err := s.eventRepo.ListRecent(ctx, normalizeRecentEventsLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return items, nil
}

func normalizeRecentEventsLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentEventsLimit
	}
	if limit > maxRecentEventsLimit {
		return maxRecentEventsLimit
	}
	return limit
}
