package sheetimport

// PlayerLine is the per-sync aggregate for one player name.
type PlayerLine struct {
	Name    string
	Goals   int
	Assists int
	// Team is taken from the row that first mentioned the player and is not updated afterwards.
	Team string
}

// PlayerTally aggregates goals and assists by exact player name, remembering first-seen order.
type PlayerTally struct {
	lines map[string]*PlayerLine
	order []string
}

func (t *PlayerTally) line(name, team string) *PlayerLine {
	if t.lines == nil {
		t.lines = make(map[string]*PlayerLine)
	}
	if existing, ok := t.lines[name]; ok {
		return existing
	}
	created := &PlayerLine{Name: name, Team: team}
	t.lines[name] = created
	t.order = append(t.order, name)
	return created
}

func (t *PlayerTally) addGoal(name, team string) {
	t.line(name, team).Goals++
}

func (t *PlayerTally) addAssist(name, team string) {
	t.line(name, team).Assists++
}

func (t *PlayerTally) Len() int {
	return len(t.order)
}

func (t *PlayerTally) Get(name string) (PlayerLine, bool) {
	line, ok := t.lines[name]
	if !ok {
		return PlayerLine{}, false
	}
	return *line, true
}

// Lines returns copies of every aggregate in first-seen order.
func (t *PlayerTally) Lines() []PlayerLine {
	out := make([]PlayerLine, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.lines[name])
	}
	return out
}

// TeamSet is an insertion-ordered set of team abbreviations.
type TeamSet struct {
	seen  map[string]struct{}
	order []string
}

func (s *TeamSet) Add(abbreviation string) {
	if abbreviation == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[abbreviation]; ok {
		return
	}
	s.seen[abbreviation] = struct{}{}
	s.order = append(s.order, abbreviation)
}

func (s *TeamSet) Has(abbreviation string) bool {
	_, ok := s.seen[abbreviation]
	return ok
}

func (s *TeamSet) Len() int {
	return len(s.order)
}

func (s *TeamSet) Values() []string {
	return append([]string(nil), s.order...)
}
