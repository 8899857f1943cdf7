package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/id"
)

// BootstrapSeed loads the demo teams, players and schedule into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, ids id.Generator) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM `+teamsTable); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		rowID, err := ids.NewID()
		if err != nil {
			return err
		}
		arg["id"] = rowID
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", label, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	for _, t := range memory.SeedTeams() {
		err := exec("team "+t.Abbreviation, `
INSERT INTO nhl_teams (id, abbreviation, name, division, wins, losses, otl, goals_for, goals_against)
VALUES (:id, :abbreviation, :name, :division, :wins, :losses, :otl, :goals_for, :goals_against)
ON CONFLICT (abbreviation) DO NOTHING`, map[string]any{
			"abbreviation":  t.Abbreviation,
			"name":          t.Name,
			"division":      nullableString(t.Division),
			"wins":          t.Wins,
			"losses":        t.Losses,
			"otl":           t.OTL,
			"goals_for":     t.GoalsFor,
			"goals_against": t.GoalsAgainst,
		})
		if err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
		err := exec("player "+p.Name, `
INSERT INTO nhl_players (id, name, team_abbreviation, position, goals, assists, games_played)
VALUES (:id, :name, :team_abbreviation, :position, :goals, :assists, :games_played)
ON CONFLICT (name) DO NOTHING`, map[string]any{
			"name":              p.Name,
			"team_abbreviation": nullableString(p.TeamAbbreviation),
			"position":          nullableString(p.Position),
			"goals":             p.Goals,
			"assists":           p.Assists,
			"games_played":      p.GamesPlayed,
		})
		if err != nil {
			return err
		}
	}

	for _, m := range memory.SeedMatches() {
		err := exec("match "+m.HomeTeam+"-"+m.AwayTeam, `
INSERT INTO nhl_matches (id, match_date, match_time, home_team, away_team, status)
VALUES (:id, :match_date, :match_time, :home_team, :away_team, :status)`, map[string]any{
			"match_date": m.Date,
			"match_time": nullableString(m.Time),
			"home_team":  m.HomeTeam,
			"away_team":  m.AwayTeam,
			"status":     string(m.Status),
		})
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
