package httpapi

import (
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
)

type teamDTO struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Logo         string `json:"logo,omitempty"`
	Division     string `json:"division,omitempty"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTL          int    `json:"otl"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}

type playerDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TeamAbbreviation string  `json:"team_abbreviation,omitempty"`
	Position         string  `json:"position,omitempty"`
	Goals            int     `json:"goals"`
	Assists          int     `json:"assists"`
	Points           int     `json:"points"`
	GamesPlayed      int     `json:"games_played"`
	PointsPerGame    float64 `json:"points_per_game"`
}

type matchEventDTO struct {
	ID        string `json:"id"`
	MatchID   string `json:"match_id,omitempty"`
	EventType string `json:"event_type"`
	Scorer    string `json:"scorer"`
	Assist1   string `json:"assist1,omitempty"`
	Assist2   string `json:"assist2,omitempty"`
	Period    *int   `json:"period"`
	EventTime string `json:"event_time,omitempty"`
	Team      string `json:"team"`
	MatchDate string `json:"match_date,omitempty"`
}

type matchDTO struct {
	ID        string `json:"id"`
	Date      string `json:"match_date"`
	Time      string `json:"match_time,omitempty"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	Status    string `json:"status"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

type sheetSettingDTO struct {
	SheetID    string    `json:"sheet_id"`
	SheetName  string    `json:"sheet_name"`
	LastSyncAt time.Time `json:"last_sync_at"`
}

type combinationDTO struct {
	Scorer     playerDTO `json:"scorer"`
	Assister   playerDTO `json:"assister"`
	Confidence int       `json:"confidence"`
	Reason     string    `json:"reason"`
}

type matchCombinationsDTO struct {
	Match        matchDTO         `json:"match"`
	Combinations []combinationDTO `json:"combinations"`
}

type overviewDTO struct {
	TeamsTracked   int        `json:"teams_tracked"`
	PlayersTracked int        `json:"players_tracked"`
	TotalGoals     int        `json:"total_goals"`
	TotalAssists   int        `json:"total_assists"`
	TopScorer      *playerDTO `json:"top_scorer"`
	TopAssister    *playerDTO `json:"top_assister"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		Name:         t.Name,
		Logo:         t.Logo,
		Division:     t.Division,
		Wins:         t.Wins,
		Losses:       t.Losses,
		OTL:          t.OTL,
		Points:       t.Points(),
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:               p.ID,
		Name:             p.Name,
		TeamAbbreviation: p.TeamAbbreviation,
		Position:         p.Position,
		Goals:            p.Goals,
		Assists:          p.Assists,
		Points:           p.Points(),
		GamesPlayed:      p.GamesPlayed,
		PointsPerGame:    p.PointsPerGame(),
	}
}

func matchEventToDTO(e matchevent.Event) matchEventDTO {
	return matchEventDTO{
		ID:        e.ID,
		MatchID:   e.MatchID,
		EventType: e.EventType,
		Scorer:    e.Scorer,
		Assist1:   e.Assist1,
		Assist2:   e.Assist2,
		Period:    e.Period,
		EventTime: e.EventTime,
		Team:      e.Team,
		MatchDate: e.MatchDate,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:        m.ID,
		Date:      m.Date,
		Time:      m.Time,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		Status:    string(m.Status),
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
	}
}

func sheetSettingToDTO(s sheetsetting.Setting) sheetSettingDTO {
	return sheetSettingDTO{
		SheetID:    s.SheetID,
		SheetName:  s.SheetName,
		LastSyncAt: s.LastSyncAt,
	}
}

func matchCombinationsToDTO(item usecase.MatchCombinations) matchCombinationsDTO {
	combos := make([]combinationDTO, 0, len(item.Combinations))
	for _, c := range item.Combinations {
		combos = append(combos, combinationDTO{
			Scorer:     playerToDTO(c.Scorer),
			Assister:   playerToDTO(c.Assister),
			Confidence: c.Confidence,
			Reason:     c.Reason,
		})
	}
	return matchCombinationsDTO{
		Match:        matchToDTO(item.Match),
		Combinations: combos,
	}
}

func overviewToDTO(o usecase.Overview) overviewDTO {
	out := overviewDTO{
		TeamsTracked:   o.TeamsTracked,
		PlayersTracked: o.PlayersTracked,
		TotalGoals:     o.TotalGoals,
		TotalAssists:   o.TotalAssists,
	}
	if o.TopScorer != nil {
		dto := playerToDTO(*o.TopScorer)
		out.TopScorer = &dto
	}
	if o.TopAssister != nil {
		dto := playerToDTO(*o.TopAssister)
		out.TopAssister = &dto
	}
	return out
}

func mapSlice[T, D any](items []T, convert func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
