package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
)

type SheetSettingRepository struct {
	mu        sync.RWMutex
	bySheetID map[string]sheetsetting.Setting
}

func NewSheetSettingRepository() *SheetSettingRepository {
	return &SheetSettingRepository{bySheetID: make(map[string]sheetsetting.Setting)}
}

func (r *SheetSettingRepository) GetBySheetID(_ context.Context, sheetID string) (sheetsetting.Setting, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.bySheetID[sheetID]
	return item, ok, nil
}

func (r *SheetSettingRepository) Upsert(_ context.Context, item sheetsetting.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.bySheetID[item.SheetID]; ok {
		existing.SheetName = item.SheetName
		existing.LastSyncAt = item.LastSyncAt
		existing.UpdatedAt = now
		r.bySheetID[item.SheetID] = existing
		return nil
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	r.bySheetID[item.SheetID] = item
	return nil
}
