package postgres

import (
	"database/sql"
	"time"
)

const matchEventsTable = "nhl_match_events"

type matchEventTableModel struct {
	ID        string         `db:"id"`
	MatchID   sql.NullString `db:"match_id"`
	EventType string         `db:"event_type"`
	Scorer    string         `db:"scorer"`
	Assist1   sql.NullString `db:"assist1"`
	Assist2   sql.NullString `db:"assist2"`
	Period    sql.NullInt64  `db:"period"`
	EventTime sql.NullString `db:"event_time"`
	Team      string         `db:"team"`
	MatchDate sql.NullString `db:"match_date"`
	CreatedAt time.Time      `db:"created_at"`
}

type matchEventInsertModel struct {
	ID        string  `db:"id"`
	MatchID   *string `db:"match_id"`
	EventType string  `db:"event_type,omitempty"`
	Scorer    string  `db:"scorer"`
	Assist1   *string `db:"assist1"`
	Assist2   *string `db:"assist2"`
	Period    *int    `db:"period"`
	EventTime *string `db:"event_time"`
	Team      string  `db:"team"`
	MatchDate *string `db:"match_date"`
}
