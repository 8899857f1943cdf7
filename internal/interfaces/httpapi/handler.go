package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
)

type Handler struct {
	syncService        *usecase.SheetSyncService
	settingService     *usecase.SheetSettingService
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	combinationService *usecase.CombinationService
	dashboardService   *usecase.DashboardService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	syncService *usecase.SheetSyncService,
	settingService *usecase.SheetSettingService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	combinationService *usecase.CombinationService,
	dashboardService *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		syncService:        syncService,
		settingService:     settingService,
		teamService:        teamService,
		playerService:      playerService,
		matchService:       matchService,
		combinationService: combinationService,
		dashboardService:   dashboardService,
		logger:             logger.Named("httpapi"),
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
