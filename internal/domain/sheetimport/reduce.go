package sheetimport

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
)

// Reduction holds everything one sync run extracts from its grids.
// It is owned by a single run and must not be shared.
type Reduction struct {
	Events  []matchevent.Event
	Players PlayerTally
	Teams   TeamSet
	Matches []match.Match

	// CalendarProcessed is set once a calendar grid with at least one data row was applied.
	CalendarProcessed bool
}

// RowStats counts how a grid's data rows were handled.
type RowStats struct {
	Accepted int
	Skipped  int
}

func NewReduction() *Reduction {
	return &Reduction{}
}

// ApplyEvents reads scoring events from an events grid. Rows without a scorer
// or a team are skipped silently.
func (r *Reduction) ApplyEvents(grid Grid) (ColumnMap, RowStats) {
	cols := EventsSchema.Resolve(grid.Header())
	var stats RowStats

	for _, row := range grid.DataRows() {
		if len(row) == 0 {
			stats.Skipped++
			continue
		}

		scorer := cell(row, cols.Index(FieldScorer))
		team := cell(row, cols.Index(FieldTeam))
		if scorer == "" || team == "" {
			stats.Skipped++
			continue
		}

		event := matchevent.Event{
			EventType: matchevent.TypeGoal,
			Scorer:    scorer,
			Assist1:   cell(row, cols.Index(FieldAssist1)),
			Assist2:   cell(row, cols.Index(FieldAssist2)),
			Period:    parsePeriod(cell(row, cols.Index(FieldPeriod))),
			EventTime: cell(row, cols.Index(FieldTime)),
			Team:      team,
			MatchDate: cell(row, cols.Index(FieldDate)),
		}
		r.Events = append(r.Events, event)
		r.Teams.Add(team)

		r.Players.addGoal(scorer, team)
		for _, assist := range event.Assists() {
			r.Players.addAssist(assist, team)
		}
		stats.Accepted++
	}

	return cols, stats
}

// ApplyCalendar reads upcoming matches from a calendar grid and adds both
// teams of every kept row to the team set. Rows missing the date or either
// team are skipped.
func (r *Reduction) ApplyCalendar(grid Grid) (ColumnMap, RowStats) {
	cols := CalendarSchema.Resolve(grid.Header())
	var stats RowStats
	if !grid.HasData() {
		return cols, stats
	}
	r.CalendarProcessed = true

	for _, row := range grid.DataRows() {
		date := cell(row, cols.Index(FieldDate))
		home := cell(row, cols.Index(FieldHomeTeam))
		away := cell(row, cols.Index(FieldAwayTeam))
		if date == "" || home == "" || away == "" {
			stats.Skipped++
			continue
		}

		r.Matches = append(r.Matches, match.Match{
			Date:     ReformatDate(date),
			Time:     cell(row, cols.Index(FieldTime)),
			HomeTeam: home,
			AwayTeam: away,
			Status:   match.StatusUpcoming,
		})
		r.Teams.Add(home)
		r.Teams.Add(away)
		stats.Accepted++
	}

	return cols, stats
}

var dayMonthYear = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// ReformatDate rewrites the first D/M/YYYY found in raw as YYYY-MM-DD.
// Any other input is returned unchanged.
func ReformatDate(raw string) string {
	m := dayMonthYear.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return m[3] + "-" + leftPad2(m[2]) + "-" + leftPad2(m[1])
}

func leftPad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return "0" + s
}

// parsePeriod reads a leading integer the way sheet users type it ("2", "3rd").
// Blank, non-numeric and zero values yield nil.
func parsePeriod(raw string) *int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}

	v, err := strconv.Atoi(raw[:end])
	if err != nil || v == 0 {
		return nil
	}
	return &v
}
