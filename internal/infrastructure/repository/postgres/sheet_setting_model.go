package postgres

import "time"

const sheetSettingsTable = "sheet_settings"

type sheetSettingTableModel struct {
	ID         string    `db:"id"`
	SheetID    string    `db:"sheet_id"`
	SheetName  string    `db:"sheet_name"`
	LastSyncAt time.Time `db:"last_sync_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type sheetSettingInsertModel struct {
	ID         string    `db:"id"`
	SheetID    string    `db:"sheet_id"`
	SheetName  string    `db:"sheet_name"`
	LastSyncAt time.Time `db:"last_sync_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
