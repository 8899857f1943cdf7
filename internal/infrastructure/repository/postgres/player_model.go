package postgres

import (
	"database/sql"
	"time"
)

const playersTable = "nhl_players"

type playerTableModel struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	TeamAbbreviation sql.NullString `db:"team_abbreviation"`
	Position         sql.NullString `db:"position"`
	Goals            int            `db:"goals"`
	Assists          int            `db:"assists"`
	GamesPlayed      int            `db:"games_played"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type playerInsertModel struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	TeamAbbreviation *string   `db:"team_abbreviation"`
	Goals            int       `db:"goals"`
	Assists          int       `db:"assists"`
	UpdatedAt        time.Time `db:"updated_at"`
}
