package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	qb "github.com/riskibarqy/nhl-sheet-sync/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From(teamsTable).
		OrderBy("wins DESC", "abbreviation").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:           row.ID,
			Abbreviation: row.Abbreviation,
			Name:         row.Name,
			Logo:         nullStringValue(row.Logo),
			Division:     nullStringValue(row.Division),
			Wins:         row.Wins,
			Losses:       row.Losses,
			OTL:          row.OTL,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}

	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	insertModel := teamInsertModel{
		ID:           item.ID,
		Abbreviation: item.Abbreviation,
		Name:         item.Name,
		UpdatedAt:    time.Now().UTC(),
	}
	conflict := qb.OnConflict("abbreviation").DoUpdate("name", "updated_at")
	query, args, err := qb.InsertModel(teamsTable, insertModel, conflict.String())
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}
	return nil
}
