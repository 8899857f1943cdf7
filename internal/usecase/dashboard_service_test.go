package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	playermock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestDashboardService_Overview(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	teamRepo.On("List", mock.Anything).Return([]team.Team{
		{Abbreviation: "TOR"},
		{Abbreviation: "MTL"},
	}, nil).Once()
	playerRepo.On("List", mock.Anything).Return([]player.Player{
		{Name: "A. Matthews", Goals: 4, Assists: 1},
		{Name: "N. Suzuki", Goals: 4, Assists: 3},
		{Name: "M. Marner", Goals: 1, Assists: 5},
	}, nil).Once()

	svc := NewDashboardService(teamRepo, playerRepo)
	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if got.TeamsTracked != 2 || got.PlayersTracked != 3 {
		t.Fatalf("unexpected tracked counts: %+v", got)
	}
	if got.TotalGoals != 9 || got.TotalAssists != 9 {
		t.Fatalf("unexpected totals: goals=%d assists=%d", got.TotalGoals, got.TotalAssists)
	}
	// Ties keep the first player in repository order.
	if got.TopScorer == nil || got.TopScorer.Name != "A. Matthews" {
		t.Fatalf("unexpected top scorer: %+v", got.TopScorer)
	}
	if got.TopAssister == nil || got.TopAssister.Name != "M. Marner" {
		t.Fatalf("unexpected top assister: %+v", got.TopAssister)
	}
}

func TestDashboardService_Overview_Empty(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()
	playerRepo.On("List", mock.Anything).Return([]player.Player{}, nil).Once()

	got, err := NewDashboardService(teamRepo, playerRepo).Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.TopScorer != nil || got.TopAssister != nil {
		t.Fatalf("expected no leaders on empty data: %+v", got)
	}
}

func TestDashboardService_Overview_RepositoryError(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	teamRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Maybe()
	playerRepo.On("List", mock.Anything).Return([]player.Player{}, nil).Maybe()

	_, err := NewDashboardService(teamRepo, playerRepo).Overview(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
}
