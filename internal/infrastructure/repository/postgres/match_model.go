package postgres

import (
	"database/sql"
	"time"
)

const matchesTable = "nhl_matches"

type matchTableModel struct {
	ID        string         `db:"id"`
	MatchDate string         `db:"match_date"`
	MatchTime sql.NullString `db:"match_time"`
	HomeTeam  string         `db:"home_team"`
	AwayTeam  string         `db:"away_team"`
	Status    string         `db:"status"`
	HomeScore sql.NullInt64  `db:"home_score"`
	AwayScore sql.NullInt64  `db:"away_score"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	ID        string  `db:"id"`
	MatchDate string  `db:"match_date"`
	MatchTime *string `db:"match_time"`
	HomeTeam  string  `db:"home_team"`
	AwayTeam  string  `db:"away_team"`
	Status    string  `db:"status,omitempty"`
	HomeScore *int    `db:"home_score"`
	AwayScore *int    `db:"away_score"`
}
