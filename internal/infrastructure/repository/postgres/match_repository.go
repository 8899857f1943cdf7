package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	qb "github.com/riskibarqy/nhl-sheet-sync/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From(matchesTable).
		OrderBy("match_date", "match_time").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From(matchesTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return mapMatchRow(row), true, nil
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom(matchesTable).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) error {
	if err := item.Validate(); err != nil {
		return err
	}

	insertModel := matchInsertModel{
		ID:        item.ID,
		MatchDate: item.Date,
		MatchTime: nullableString(item.Time),
		HomeTeam:  item.HomeTeam,
		AwayTeam:  item.AwayTeam,
		Status:    string(item.Status),
		HomeScore: item.HomeScore,
		AwayScore: item.AwayScore,
	}
	query, args, err := qb.InsertModel(matchesTable, insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func mapMatchRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		Date:      row.MatchDate,
		Time:      nullStringValue(row.MatchTime),
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		Status:    match.Status(row.Status),
		HomeScore: nullInt64ToIntPtr(row.HomeScore),
		AwayScore: nullInt64ToIntPtr(row.AwayScore),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
