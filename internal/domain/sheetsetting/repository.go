package sheetsetting

import "context"

type Repository interface {
	GetBySheetID(ctx context.Context, sheetID string) (Setting, bool, error)
	// Upsert inserts by sheet id, refreshing sheet name and last sync time on conflict.
	Upsert(ctx context.Context, item Setting) error
}
