package sheetimport

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accented composed", in: "Équipe", want: "equipe"},
		{name: "plain lower", in: "equipe", want: "equipe"},
		{name: "padded upper", in: " EQUIPE ", want: "equipe"},
		{name: "decomposed input", in: "Équipe", want: "equipe"},
		{name: "punctuation kept", in: "Heure (GMT)", want: "heure (gmt)"},
		{name: "period accent", in: "Période", want: "periode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventsSchema_ResolveFrenchHeaders(t *testing.T) {
	t.Parallel()

	cols := EventsSchema.Resolve([]string{"Date", "Buteur", "Passeur1", "Passeur2", "Période", "Temps", "Équipe"})

	want := map[Field]int{
		FieldDate:    0,
		FieldMatch:   NotFound,
		FieldScorer:  1,
		FieldAssist1: 2,
		FieldAssist2: 3,
		FieldPeriod:  4,
		FieldTime:    5,
		FieldTeam:    6,
	}
	for field, idx := range want {
		if got := cols.Index(field); got != idx {
			t.Fatalf("field %s resolved to %d, want %d", field, got, idx)
		}
	}
}

func TestEventsSchema_SynonymPriority(t *testing.T) {
	t.Parallel()

	// "assist" and "passeur" both map to assist1; "passeur" is declared first.
	cols := EventsSchema.Resolve([]string{"Assist", "Scorer", "Passeur", "Team"})
	if got := cols.Index(FieldAssist1); got != 2 {
		t.Fatalf("expected passeur column to win, got %d", got)
	}

	// Duplicate headers resolve to the leftmost column.
	cols = EventsSchema.Resolve([]string{"Team", "Scorer", "Team"})
	if got := cols.Index(FieldTeam); got != 0 {
		t.Fatalf("expected leftmost duplicate, got %d", got)
	}
}

func TestCalendarSchema_Resolve(t *testing.T) {
	t.Parallel()

	cols := CalendarSchema.Resolve([]string{"Date", "Heure (GMT)", "Visiteur (Abr.)", "Receveur (Abr.)", "Match Complet"})
	want := map[Field]int{
		FieldDate:      0,
		FieldTime:      1,
		FieldAwayTeam:  2,
		FieldHomeTeam:  3,
		FieldMatchFull: 4,
	}
	for field, idx := range want {
		if got := cols.Index(field); got != idx {
			t.Fatalf("field %s resolved to %d, want %d", field, got, idx)
		}
	}

	english := CalendarSchema.Resolve([]string{"home_team", "away_team", "date"})
	if english.Index(FieldHomeTeam) != 0 || english.Index(FieldAwayTeam) != 1 || english.Index(FieldDate) != 2 {
		t.Fatalf("unexpected english mapping: %+v", english)
	}
	if english.Has(FieldTime) {
		t.Fatalf("time column should be missing")
	}
}

func TestColumnMap_UnknownField(t *testing.T) {
	cols := ColumnMap{}
	if got := cols.Index(FieldScorer); got != NotFound {
		t.Fatalf("expected NotFound, got %d", got)
	}
}
