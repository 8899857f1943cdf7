package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
)

type SheetSettingService struct {
	settingRepo sheetsetting.Repository
}

func NewSheetSettingService(settingRepo sheetsetting.Repository) *SheetSettingService {
	return &SheetSettingService{settingRepo: settingRepo}
}

func (s *SheetSettingService) GetBySheetID(ctx context.Context, sheetID string) (sheetsetting.Setting, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SheetSettingService.GetBySheetID")
	defer span.End()

	sheetID = strings.TrimSpace(sheetID)
	if sheetID == "" {
		return sheetsetting.Setting{}, fmt.Errorf("%w: sheet id is required", ErrInvalidInput)
	}

	item, exists, err := s.settingRepo.GetBySheetID(ctx, sheetID)
	if err != nil {
		return sheetsetting.Setting{}, fmt.Errorf("get sheet setting: %w", err)
	}
	if !exists {
		return sheetsetting.Setting{}, fmt.Errorf("%w: sheet=%s has never been synced", ErrNotFound, sheetID)
	}
	return item, nil
}
