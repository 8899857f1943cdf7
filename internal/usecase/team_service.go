package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// ListTeams returns teams ordered by wins, best first.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) ListPlayersByTeam(ctx context.Context, abbreviation string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListPlayersByTeam")
	defer span.End()

	abbreviation = strings.TrimSpace(abbreviation)
	if abbreviation == "" {
		return nil, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, abbreviation)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}
