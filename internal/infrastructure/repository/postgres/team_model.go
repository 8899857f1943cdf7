package postgres

import (
	"database/sql"
	"time"
)

const teamsTable = "nhl_teams"

type teamTableModel struct {
	ID           string         `db:"id"`
	Abbreviation string         `db:"abbreviation"`
	Name         string         `db:"name"`
	Logo         sql.NullString `db:"logo"`
	Division     sql.NullString `db:"division"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	OTL          int            `db:"otl"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type teamInsertModel struct {
	ID           string    `db:"id"`
	Abbreviation string    `db:"abbreviation"`
	Name         string    `db:"name"`
	UpdatedAt    time.Time `db:"updated_at"`
}
