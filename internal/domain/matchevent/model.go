package matchevent

import (
	"fmt"
	"strings"
	"time"
)

const TypeGoal = "goal"

// Event is one scoring play imported from the events sheet.
type Event struct {
	ID        string
	MatchID   string
	EventType string
	Scorer    string
	Assist1   string
	Assist2   string
	// Period is nil when the sheet cell was blank or not a positive integer.
	Period    *int
	EventTime string
	Team      string
	MatchDate string
	CreatedAt time.Time
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Scorer) == "" {
		return fmt.Errorf("event scorer is required")
	}
	if strings.TrimSpace(e.Team) == "" {
		return fmt.Errorf("event team is required")
	}
	return nil
}

// Assists lists the non-empty assist names in order.
func (e Event) Assists() []string {
	out := make([]string, 0, 2)
	for _, name := range []string{e.Assist1, e.Assist2} {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
