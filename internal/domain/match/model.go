package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

// Match is a scheduled game from the calendar sheet.
type Match struct {
	ID        string
	Date      string
	Time      string
	HomeTeam  string
	AwayTeam  string
	Status    Status
	HomeScore *int
	AwayScore *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Date) == "" {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("match teams are required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	return nil
}
