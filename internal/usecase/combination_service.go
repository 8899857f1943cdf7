package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
)

const (
	combinationReasonBest        = "best statistical combination"
	combinationReasonAlternative = "solid alternative combination"

	defaultCombinationWorkers = 4
)

// Combination pairs a likely scorer with a likely assister from the same team.
type Combination struct {
	Scorer     player.Player
	Assister   player.Player
	Confidence int
	Reason     string
}

type MatchCombinations struct {
	Match        match.Match
	Combinations []Combination
}

type CombinationService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	workers    int
}

func NewCombinationService(matchRepo match.Repository, playerRepo player.Repository, workers int) *CombinationService {
	if workers <= 0 {
		workers = defaultCombinationWorkers
	}
	return &CombinationService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		workers:    workers,
	}
}

func (s *CombinationService) SuggestForMatch(ctx context.Context, matchID string) (MatchCombinations, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CombinationService.SuggestForMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchCombinations{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchCombinations{}, spanFailure(span, fmt.Errorf("get match: %w", err))
	}
	if !exists {
		return MatchCombinations{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return s.suggest(ctx, item)
}

// SuggestUpcoming computes suggestions for every upcoming match, in match order.
func (s *CombinationService) SuggestUpcoming(ctx context.Context) ([]MatchCombinations, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CombinationService.SuggestUpcoming")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	upcoming := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		if item.Status == match.StatusUpcoming {
			upcoming = append(upcoming, item)
		}
	}
	if len(upcoming) == 0 {
		return []MatchCombinations{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]MatchCombinations, len(upcoming))
	errs := make([]error, len(upcoming))

	var workers sync.WaitGroup
	for i, item := range upcoming {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = s.suggest(ctx, item)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *CombinationService) suggest(ctx context.Context, item match.Match) (MatchCombinations, error) {
	home, err := s.playerRepo.ListByTeam(ctx, item.HomeTeam)
	if err != nil {
		return MatchCombinations{}, fmt.Errorf("list players for %s: %w", item.HomeTeam, err)
	}
	away, err := s.playerRepo.ListByTeam(ctx, item.AwayTeam)
	if err != nil {
		return MatchCombinations{}, fmt.Errorf("list players for %s: %w", item.AwayTeam, err)
	}

	return MatchCombinations{
		Match:        item,
		Combinations: SuggestCombinations(home, away),
	}, nil
}

// SuggestCombinations proposes up to two scorer/assister pairs per roster and
// returns them by confidence, highest first. Rosters with fewer than two
// players produce nothing.
func SuggestCombinations(rosters ...[]player.Player) []Combination {
	out := make([]Combination, 0, 2*len(rosters))
	for _, roster := range rosters {
		if len(roster) < 2 {
			continue
		}

		scorers := append([]player.Player(nil), roster...)
		sort.SliceStable(scorers, func(i, j int) bool {
			return scorers[i].Goals > scorers[j].Goals
		})
		assisters := append([]player.Player(nil), roster...)
		sort.SliceStable(assisters, func(i, j int) bool {
			return assisters[i].Assists > assisters[j].Assists
		})

		topAssister := assisters[0]
		if scorers[0].Name != topAssister.Name {
			out = append(out, Combination{
				Scorer:     scorers[0],
				Assister:   topAssister,
				Confidence: combinationConfidence(scorers[0], topAssister, 30, 95),
				Reason:     combinationReasonBest,
			})
		}
		// The alternative pair may name the same player twice.
		out = append(out, Combination{
			Scorer:     scorers[1],
			Assister:   topAssister,
			Confidence: combinationConfidence(scorers[1], topAssister, 28, 85),
			Reason:     combinationReasonAlternative,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func combinationConfidence(scorer, assister player.Player, weight float64, ceiling int) int {
	v := int(math.Round((scorer.PointsPerGame() + assister.PointsPerGame()) * weight))
	if v > ceiling {
		return ceiling
	}
	return v
}
