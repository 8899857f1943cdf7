package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	qb "github.com/riskibarqy/nhl-sheet-sync/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From(playersTable).
		OrderBy("goals DESC", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	return r.selectPlayers(ctx, "select players", query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamAbbreviation string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From(playersTable).
		Where(qb.Eq("team_abbreviation", teamAbbreviation)).
		OrderBy("goals DESC", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	return r.selectPlayers(ctx, "select players by team", query, args)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, op, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:               row.ID,
			Name:             row.Name,
			TeamAbbreviation: nullStringValue(row.TeamAbbreviation),
			Position:         nullStringValue(row.Position),
			Goals:            row.Goals,
			Assists:          row.Assists,
			GamesPlayed:      row.GamesPlayed,
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return err
	}

	insertModel := playerInsertModel{
		ID:               item.ID,
		Name:             item.Name,
		TeamAbbreviation: nullableString(item.TeamAbbreviation),
		Goals:            item.Goals,
		Assists:          item.Assists,
		UpdatedAt:        time.Now().UTC(),
	}
	conflict := qb.OnConflict("name").DoUpdate("goals", "assists", "team_abbreviation", "updated_at")
	query, args, err := qb.InsertModel(playersTable, insertModel, conflict.String())
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}
