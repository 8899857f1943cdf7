package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	qb "github.com/riskibarqy/nhl-sheet-sync/internal/platform/querybuilder"
)

type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

func (r *MatchEventRepository) ListRecent(ctx context.Context, limit int) ([]matchevent.Event, error) {
	query, args, err := qb.Select("*").From(matchEventsTable).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent match events query: %w", err)
	}

	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent match events: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchEventRow(row))
	}
	return out, nil
}

// DeleteAll clears the table. There is no surrounding transaction: a failed
// reinsert leaves the table empty or partially filled.
func (r *MatchEventRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom(matchEventsTable).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match events query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match events: %w", err)
	}
	return nil
}

func (r *MatchEventRepository) Insert(ctx context.Context, item matchevent.Event) error {
	if err := item.Validate(); err != nil {
		return err
	}

	eventType := item.EventType
	if eventType == "" {
		eventType = matchevent.TypeGoal
	}
	insertModel := matchEventInsertModel{
		ID:        item.ID,
		MatchID:   nullableString(item.MatchID),
		EventType: eventType,
		Scorer:    item.Scorer,
		Assist1:   nullableString(item.Assist1),
		Assist2:   nullableString(item.Assist2),
		Period:    item.Period,
		EventTime: nullableString(item.EventTime),
		Team:      item.Team,
		MatchDate: nullableString(item.MatchDate),
	}
	query, args, err := qb.InsertModel(matchEventsTable, insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match event: %w", err)
	}
	return nil
}

func mapMatchEventRow(row matchEventTableModel) matchevent.Event {
	return matchevent.Event{
		ID:        row.ID,
		MatchID:   nullStringValue(row.MatchID),
		EventType: row.EventType,
		Scorer:    row.Scorer,
		Assist1:   nullStringValue(row.Assist1),
		Assist2:   nullStringValue(row.Assist2),
		Period:    nullInt64ToIntPtr(row.Period),
		EventTime: nullStringValue(row.EventTime),
		Team:      row.Team,
		MatchDate: nullStringValue(row.MatchDate),
		CreatedAt: row.CreatedAt,
	}
}
