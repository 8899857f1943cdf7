package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

// Overview is the headline block of the dashboard.
type Overview struct {
	TeamsTracked   int
	PlayersTracked int
	TotalGoals     int
	TotalAssists   int
	TopScorer      *player.Player
	TopAssister    *player.Player
}

type DashboardService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewDashboardService(teamRepo team.Repository, playerRepo player.Repository) *DashboardService {
	return &DashboardService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Overview")
	defer span.End()

	var (
		teams   []team.Team
		players []player.Player
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return Overview{}, spanFailure(span, err)
	}

	return buildOverview(teams, players), nil
}

func buildOverview(teams []team.Team, players []player.Player) Overview {
	out := Overview{
		TeamsTracked:   len(teams),
		PlayersTracked: len(players),
	}

	for i := range players {
		item := players[i]
		out.TotalGoals += item.Goals
		out.TotalAssists += item.Assists

		if out.TopScorer == nil || item.Goals > out.TopScorer.Goals {
			out.TopScorer = &item
		}
		if out.TopAssister == nil || item.Assists > out.TopAssister.Assists {
			out.TopAssister = &item
		}
	}
	return out
}
