package sheetimport

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field is a logical column concept such as the scorer or the home team.
type Field string

const (
	FieldDate      Field = "date"
	FieldMatch     Field = "match"
	FieldScorer    Field = "scorer"
	FieldAssist1   Field = "assist1"
	FieldAssist2   Field = "assist2"
	FieldPeriod    Field = "period"
	FieldTime      Field = "time"
	FieldTeam      Field = "team"
	FieldAwayTeam  Field = "awayTeam"
	FieldHomeTeam  Field = "homeTeam"
	FieldMatchFull Field = "matchFull"
)

// NotFound is the column index of a field none of whose synonyms appear in the header.
const NotFound = -1

type fieldSynonyms struct {
	field    Field
	synonyms []string
}

// Schema lists fields with their accepted header spellings, highest priority first.
type Schema []fieldSynonyms

var EventsSchema = Schema{
	{FieldDate, []string{"date"}},
	{FieldMatch, []string{"match"}},
	{FieldScorer, []string{"scorer", "buteur", "goal", "but"}},
	{FieldAssist1, []string{"assist1", "passeur1", "passeur", "assist", "passe1"}},
	{FieldAssist2, []string{"assist2", "passeur2", "passe2"}},
	{FieldPeriod, []string{"period", "periode"}},
	{FieldTime, []string{"time", "temps", "heure"}},
	{FieldTeam, []string{"team", "equipe", "équipe"}},
}

var CalendarSchema = Schema{
	{FieldDate, []string{"date"}},
	{FieldTime, []string{"heure (gmt)", "heure", "time", "temps"}},
	{FieldAwayTeam, []string{"visiteur (abr.)", "visiteur", "away", "awayteam", "away_team"}},
	{FieldHomeTeam, []string{"receveur (abr.)", "receveur", "home", "hometeam", "home_team"}},
	{FieldMatchFull, []string{"match complet", "match", "matchup"}},
}

func (s Schema) Fields() []Field {
	out := make([]Field, 0, len(s))
	for _, item := range s {
		out = append(out, item.field)
	}
	return out
}

// ColumnMap maps each field of a schema to a zero-based column index or NotFound.
type ColumnMap map[Field]int

func (m ColumnMap) Index(f Field) int {
	idx, ok := m[f]
	if !ok {
		return NotFound
	}
	return idx
}

func (m ColumnMap) Has(f Field) bool {
	return m.Index(f) != NotFound
}

var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize lower-cases, trims and strips diacritics so "Équipe", " EQUIPE " and "equipe" compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Resolve maps the schema's fields onto header positions. For each field the
// synonyms are tried in order and the first one present wins; with duplicate
// headers the leftmost column is used.
func (s Schema) Resolve(header []string) ColumnMap {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = Normalize(h)
	}

	out := make(ColumnMap, len(s))
	for _, item := range s {
		out[item.field] = findColumn(normalized, item.synonyms)
	}
	return out
}

func findColumn(normalizedHeader []string, synonyms []string) int {
	for _, name := range synonyms {
		want := Normalize(name)
		for idx, h := range normalizedHeader {
			if h == want {
				return idx
			}
		}
	}
	return NotFound
}
