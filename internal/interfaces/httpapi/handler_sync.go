package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
)

const maxSyncBodyBytes = 64 << 10

type syncSheetRequest struct {
	SheetID   string `json:"sheetId"`
	SheetName string `json:"sheetName" validate:"omitempty,max=100"`
	// Pointer so an explicit "" (skip calendar) differs from an absent field.
	CalendarSheetName *string `json:"calendarSheetName" validate:"omitempty,max=100"`
}

// SyncSheet imports a spreadsheet. It answers with a flat body rather than the envelope.
func (h *Handler) SyncSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncSheet")
	defer span.End()

	var req syncSheetRequest
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSyncBodyBytes))
	if err != nil {
		writeSyncFailure(ctx, w, fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err))
		return
	}
	// An empty body falls through to the sheetId check.
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := sonic.Unmarshal(raw, &req); err != nil {
			writeSyncFailure(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeSyncFailure(ctx, w, err)
		return
	}

	result, err := h.syncService.Sync(ctx, usecase.SyncInput{
		SheetID:           req.SheetID,
		SheetName:         req.SheetName,
		CalendarSheetName: req.CalendarSheetName,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "sheet sync failed", "sheet_id", req.SheetID, "error", err)
		writeSyncFailure(ctx, w, err)
		return
	}

	writeSyncSuccess(ctx, w, result)
}
