package player

import (
	"fmt"
	"strings"
	"time"
)

type Player struct {
	ID               string
	Name             string
	TeamAbbreviation string
	Position         string
	Goals            int
	Assists          int
	GamesPlayed      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Goals < 0 || p.Assists < 0 {
		return fmt.Errorf("player %q has negative totals", p.Name)
	}
	return nil
}

func (p Player) Points() int {
	return p.Goals + p.Assists
}

// PointsPerGame treats a player without recorded games as having played one.
func (p Player) PointsPerGame() float64 {
	games := p.GamesPlayed
	if games < 1 {
		games = 1
	}
	return float64(p.Points()) / float64(games)
}
