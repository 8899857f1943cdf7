package cache

import (
	"context"

	basecache "github.com/riskibarqy/nhl-sheet-sync/internal/platform/cache"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
)

// SyncInvalidator drops cached reads once a sheet sync has rewritten the tables.
type SyncInvalidator struct {
	cache  *basecache.Store
	logger *logging.Logger
}

func NewSyncInvalidator(cache *basecache.Store, logger *logging.Logger) *SyncInvalidator {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncInvalidator{cache: cache, logger: logger}
}

func (i *SyncInvalidator) OnSheetSynced(ctx context.Context, event usecase.SyncEvent) error {
	removed := i.cache.DeletePrefix(ctx, SyncedPrefixes...)
	i.logger.DebugContext(ctx, "read cache flushed after sync", "sheet_id", event.SheetID, "removed", removed)
	return nil
}
