package sheetsetting

import "time"

// Setting records the last successful sync of one spreadsheet.
type Setting struct {
	ID         string
	SheetID    string
	SheetName  string
	LastSyncAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
