package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	qb "github.com/riskibarqy/nhl-sheet-sync/internal/platform/querybuilder"
)

type SheetSettingRepository struct {
	db *sqlx.DB
}

func NewSheetSettingRepository(db *sqlx.DB) *SheetSettingRepository {
	return &SheetSettingRepository{db: db}
}

func (r *SheetSettingRepository) GetBySheetID(ctx context.Context, sheetID string) (sheetsetting.Setting, bool, error) {
	query, args, err := qb.Select("*").From(sheetSettingsTable).
		Where(qb.Eq("sheet_id", sheetID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return sheetsetting.Setting{}, false, fmt.Errorf("build select sheet setting query: %w", err)
	}

	var row sheetSettingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sheetsetting.Setting{}, false, nil
		}
		return sheetsetting.Setting{}, false, fmt.Errorf("select sheet setting: %w", err)
	}

	return sheetsetting.Setting{
		ID:         row.ID,
		SheetID:    row.SheetID,
		SheetName:  row.SheetName,
		LastSyncAt: row.LastSyncAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, true, nil
}

func (r *SheetSettingRepository) Upsert(ctx context.Context, item sheetsetting.Setting) error {
	insertModel := sheetSettingInsertModel{
		ID:         item.ID,
		SheetID:    item.SheetID,
		SheetName:  item.SheetName,
		LastSyncAt: item.LastSyncAt.UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	conflict := qb.OnConflict("sheet_id").DoUpdate("sheet_name", "last_sync_at", "updated_at")
	query, args, err := qb.InsertModel(sheetSettingsTable, insertModel, conflict.String())
	if err != nil {
		return fmt.Errorf("build upsert sheet setting query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert sheet setting: %w", err)
	}
	return nil
}
