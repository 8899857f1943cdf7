package memory

import (
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
)

// Demo data shown by the dashboard before the first sheet sync.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "seed-team-tor", Name: "Toronto Maple Leafs", Abbreviation: "TOR", Wins: 35, Losses: 18, OTL: 5, GoalsFor: 198, GoalsAgainst: 165, Division: "Atlantic"},
		{ID: "seed-team-bos", Name: "Boston Bruins", Abbreviation: "BOS", Wins: 38, Losses: 14, OTL: 6, GoalsFor: 212, GoalsAgainst: 148, Division: "Atlantic"},
		{ID: "seed-team-fla", Name: "Florida Panthers", Abbreviation: "FLA", Wins: 36, Losses: 17, OTL: 5, GoalsFor: 205, GoalsAgainst: 170, Division: "Atlantic"},
		{ID: "seed-team-tbl", Name: "Tampa Bay Lightning", Abbreviation: "TBL", Wins: 32, Losses: 20, OTL: 6, GoalsFor: 190, GoalsAgainst: 175, Division: "Atlantic"},
		{ID: "seed-team-edm", Name: "Edmonton Oilers", Abbreviation: "EDM", Wins: 37, Losses: 16, OTL: 5, GoalsFor: 225, GoalsAgainst: 180, Division: "Pacific"},
		{ID: "seed-team-col", Name: "Colorado Avalanche", Abbreviation: "COL", Wins: 34, Losses: 19, OTL: 5, GoalsFor: 208, GoalsAgainst: 172, Division: "Central"},
		{ID: "seed-team-dal", Name: "Dallas Stars", Abbreviation: "DAL", Wins: 36, Losses: 15, OTL: 7, GoalsFor: 195, GoalsAgainst: 155, Division: "Central"},
		{ID: "seed-team-nyr", Name: "New York Rangers", Abbreviation: "NYR", Wins: 35, Losses: 17, OTL: 6, GoalsFor: 202, GoalsAgainst: 168, Division: "Metropolitan"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "seed-player-1", Name: "Auston Matthews", TeamAbbreviation: "TOR", Position: "C", Goals: 45, Assists: 35, GamesPlayed: 58},
		{ID: "seed-player-2", Name: "Mitch Marner", TeamAbbreviation: "TOR", Position: "RW", Goals: 22, Assists: 58, GamesPlayed: 58},
		{ID: "seed-player-3", Name: "Connor McDavid", TeamAbbreviation: "EDM", Position: "C", Goals: 42, Assists: 68, GamesPlayed: 58},
		{ID: "seed-player-4", Name: "Leon Draisaitl", TeamAbbreviation: "EDM", Position: "C", Goals: 40, Assists: 52, GamesPlayed: 58},
		{ID: "seed-player-5", Name: "David Pastrnak", TeamAbbreviation: "BOS", Position: "RW", Goals: 44, Assists: 40, GamesPlayed: 58},
		{ID: "seed-player-6", Name: "Nathan MacKinnon", TeamAbbreviation: "COL", Position: "C", Goals: 38, Assists: 55, GamesPlayed: 58},
		{ID: "seed-player-7", Name: "Nikita Kucherov", TeamAbbreviation: "TBL", Position: "RW", Goals: 35, Assists: 65, GamesPlayed: 58},
		{ID: "seed-player-8", Name: "Matthew Tkachuk", TeamAbbreviation: "FLA", Position: "LW", Goals: 30, Assists: 55, GamesPlayed: 58},
		{ID: "seed-player-9", Name: "Sam Reinhart", TeamAbbreviation: "FLA", Position: "C", Goals: 42, Assists: 38, GamesPlayed: 58},
		{ID: "seed-player-10", Name: "Artemi Panarin", TeamAbbreviation: "NYR", Position: "LW", Goals: 32, Assists: 58, GamesPlayed: 58},
		{ID: "seed-player-11", Name: "Jason Robertson", TeamAbbreviation: "DAL", Position: "LW", Goals: 38, Assists: 42, GamesPlayed: 58},
		{ID: "seed-player-12", Name: "Roope Hintz", TeamAbbreviation: "DAL", Position: "C", Goals: 28, Assists: 35, GamesPlayed: 58},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: "seed-match-1", HomeTeam: "TOR", AwayTeam: "BOS", Date: "2026-02-03", Time: "19:00", Status: match.StatusUpcoming},
		{ID: "seed-match-2", HomeTeam: "EDM", AwayTeam: "COL", Date: "2026-02-03", Time: "21:00", Status: match.StatusUpcoming},
		{ID: "seed-match-3", HomeTeam: "FLA", AwayTeam: "TBL", Date: "2026-02-04", Time: "19:30", Status: match.StatusUpcoming},
		{ID: "seed-match-4", HomeTeam: "DAL", AwayTeam: "NYR", Date: "2026-02-04", Time: "20:00", Status: match.StatusUpcoming},
	}
}
