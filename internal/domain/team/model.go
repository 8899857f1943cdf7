package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is a hockey club tracked by its abbreviation (e.g. "TOR").
type Team struct {
	ID           string
	Abbreviation string
	Name         string
	Logo         string
	Division     string
	Wins         int
	Losses       int
	OTL          int
	GoalsFor     int
	GoalsAgainst int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Abbreviation) == "" {
		return fmt.Errorf("team abbreviation is required")
	}
	return nil
}

func (t Team) Points() int {
	return t.Wins*2 + t.OTL
}
