package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("name", "goals").
		From("nhl_players").
		Where(Eq("team_abbreviation", "TOR")).
		OrderBy("goals DESC", "name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name, goals FROM nhl_players WHERE team_abbreviation = $1 ORDER BY goals DESC, name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "TOR" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_WithConflictClause(t *testing.T) {
	query, args, err := InsertInto("nhl_teams").
		Columns("id", "abbreviation", "name").
		Values("t1", "MTL", "MTL").
		Suffix(OnConflict("abbreviation").DoUpdate("name").String()).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO nhl_teams (id, abbreviation, name) VALUES ($1, $2, $3) ON CONFLICT (abbreviation) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != "MTL" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("nhl_teams").Columns("id", "name").Values("t1").ToSQL(); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestOnConflict_DoNothing(t *testing.T) {
	got := OnConflict("sheet_id").String()
	if got != "ON CONFLICT (sheet_id) DO NOTHING" {
		t.Fatalf("unexpected clause: %s", got)
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Run("whole table", func(t *testing.T) {
		query, args, err := DeleteFrom("nhl_match_events").ToSQL()
		if err != nil {
			t.Fatalf("build delete query: %v", err)
		}
		if query != "DELETE FROM nhl_match_events" || len(args) != 0 {
			t.Fatalf("unexpected query %q args %+v", query, args)
		}
	})

	t.Run("with predicate", func(t *testing.T) {
		query, args, err := DeleteFrom("nhl_matches").Where(Ne("status", "live")).ToSQL()
		if err != nil {
			t.Fatalf("build delete query: %v", err)
		}
		if query != "DELETE FROM nhl_matches WHERE status <> $1" {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 1 || args[0] != "live" {
			t.Fatalf("unexpected args: %+v", args)
		}
	})
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		Skipped string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModel("nhl_players", row{ID: "p1", Name: "C. Caufield", hidden: "x"}, OnConflict("name").DoUpdate("goals").String())
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	want := "INSERT INTO nhl_players (id, name) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET goals = EXCLUDED.goals"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_OmitEmpty(t *testing.T) {
	type row struct {
		ID        string  `db:"id"`
		EventType string  `db:"event_type,omitempty"`
		Period    *int    `db:"period,omitempty"`
		Assist1   *string `db:"assist1"`
	}

	query, args, err := InsertModel("nhl_match_events", &row{ID: "e1"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if want := "INSERT INTO nhl_match_events (id, assist1) VALUES ($1, $2)"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	period := 2
	query, _, err = InsertModel("nhl_match_events", row{ID: "e2", EventType: "goal", Period: &period}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if want := "INSERT INTO nhl_match_events (id, event_type, period, assist1) VALUES ($1, $2, $3, $4)"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	var nilRow *struct {
		ID string `db:"id"`
	}
	if _, _, err := InsertModel("t", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
