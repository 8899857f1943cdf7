package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetimport"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/id"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/resilience"
)

const (
	eventsRangeColumns   = "A:I"
	calendarRangeColumns = "A:E"

	syncMessageCompleted = "Sync completed successfully"
	syncMessageNoData    = "No data to sync"
)

// SheetFetcher reads a rectangular range of a spreadsheet as strings.
type SheetFetcher interface {
	// Configured reports whether credentials are present; Sync refuses to run without them.
	Configured() bool
	FetchRange(ctx context.Context, spreadsheetID, rng string) (sheetimport.Grid, error)
}

type SyncInput struct {
	SheetID   string
	SheetName string
	// CalendarSheetName nil selects the default calendar tab; an empty string skips the calendar.
	CalendarSheetName *string
}

type ImportCounts struct {
	Events  int
	Players int
	Teams   int
	Matches int
}

type SyncResult struct {
	Message  string
	Imported ImportCounts
}

// SyncEvent is handed to listeners after a sync stored its data.
type SyncEvent struct {
	SheetID   string
	SheetName string
	SyncedAt  time.Time
	Imported  ImportCounts
}

type SyncListener interface {
	OnSheetSynced(ctx context.Context, event SyncEvent) error
}

type SheetSyncConfig struct {
	DefaultSheetName    string
	DefaultCalendarName string
}

func (c SheetSyncConfig) normalize() SheetSyncConfig {
	if strings.TrimSpace(c.DefaultSheetName) == "" {
		c.DefaultSheetName = "Sheet1"
	}
	if strings.TrimSpace(c.DefaultCalendarName) == "" {
		c.DefaultCalendarName = "Calendrier"
	}
	return c
}

type SheetSyncService struct {
	fetcher     SheetFetcher
	teamRepo    team.Repository
	playerRepo  player.Repository
	eventRepo   matchevent.Repository
	matchRepo   match.Repository
	settingRepo sheetsetting.Repository
	idGen       id.Generator
	listeners   []SyncListener
	cfg         SheetSyncConfig
	logger      *logging.Logger
	now         func() time.Time
}

func NewSheetSyncService(
	fetcher SheetFetcher,
	teamRepo team.Repository,
	playerRepo player.Repository,
	eventRepo matchevent.Repository,
	matchRepo match.Repository,
	settingRepo sheetsetting.Repository,
	idGen id.Generator,
	cfg SheetSyncConfig,
	logger *logging.Logger,
	listeners ...SyncListener,
) *SheetSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}

	return &SheetSyncService{
		fetcher:     fetcher,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		eventRepo:   eventRepo,
		matchRepo:   matchRepo,
		settingRepo: settingRepo,
		idGen:       idGen,
		listeners:   listeners,
		cfg:         cfg.normalize(),
		logger:      logger.Named("sheetsync"),
		now:         time.Now,
	}
}

// Sync fetches the events tab (and the calendar tab when one is named), then
// replaces the stored events and matches and upserts teams, players and the
// sync metadata. Writes are not transactional: a failure part way leaves the
// steps already done in place.
func (s *SheetSyncService) Sync(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SheetSyncService.Sync")
	defer span.End()

	if s.fetcher == nil || !s.fetcher.Configured() {
		return SyncResult{}, spanFailure(span, fmt.Errorf("%w: GOOGLE_API_KEY is not configured", ErrNotConfigured))
	}

	sheetID := strings.TrimSpace(input.SheetID)
	if sheetID == "" {
		return SyncResult{}, spanFailure(span, fmt.Errorf("%w: sheetId is required", ErrInvalidInput))
	}
	sheetName := input.SheetName
	if strings.TrimSpace(sheetName) == "" {
		sheetName = s.cfg.DefaultSheetName
	}
	calendarName := s.cfg.DefaultCalendarName
	if input.CalendarSheetName != nil {
		calendarName = *input.CalendarSheetName
	}

	s.logger.InfoContext(ctx, "syncing sheet", "sheet_id", sheetID, "sheet_name", sheetName)

	eventsGrid, err := s.fetcher.FetchRange(ctx, sheetID, sheetName+"!"+eventsRangeColumns)
	if err != nil {
		return SyncResult{}, spanFailure(span, upstreamError("fetch events sheet", err))
	}
	if !eventsGrid.HasData() {
		s.logger.InfoContext(ctx, "events sheet has no data rows", "sheet_id", sheetID, "rows", len(eventsGrid))
		return SyncResult{Message: syncMessageNoData}, nil
	}

	reduction := sheetimport.NewReduction()
	cols, stats := reduction.ApplyEvents(eventsGrid)
	s.logger.InfoContext(ctx, "events sheet reduced",
		"sheet_id", sheetID,
		"columns", cols,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
	)

	if calendarName != "" {
		s.reduceCalendar(ctx, reduction, sheetID, calendarName)
	}

	if err := s.upsertTeams(ctx, reduction.Teams.Values()); err != nil {
		return SyncResult{}, spanFailure(span, err)
	}
	if err := s.upsertPlayers(ctx, reduction.Players.Lines()); err != nil {
		return SyncResult{}, spanFailure(span, err)
	}
	if err := s.replaceEvents(ctx, reduction.Events); err != nil {
		return SyncResult{}, spanFailure(span, err)
	}

	matchesImported := 0
	if reduction.CalendarProcessed {
		matchesImported = s.replaceMatches(ctx, reduction.Matches)
	}

	syncedAt := s.now().UTC()
	if err := s.recordSync(ctx, sheetID, sheetName, syncedAt); err != nil {
		return SyncResult{}, spanFailure(span, err)
	}

	result := SyncResult{
		Message: syncMessageCompleted,
		Imported: ImportCounts{
			Events:  len(reduction.Events),
			Players: reduction.Players.Len(),
			Teams:   reduction.Teams.Len(),
			Matches: matchesImported,
		},
	}
	s.logger.InfoContext(ctx, "sheet sync completed",
		"sheet_id", sheetID,
		"events", result.Imported.Events,
		"players", result.Imported.Players,
		"teams", result.Imported.Teams,
		"matches", result.Imported.Matches,
	)

	s.notify(ctx, SyncEvent{
		SheetID:   sheetID,
		SheetName: sheetName,
		SyncedAt:  syncedAt,
		Imported:  result.Imported,
	})

	return result, nil
}

// reduceCalendar never fails the sync: fetch errors are logged and the match table is left alone.
func (s *SheetSyncService) reduceCalendar(ctx context.Context, reduction *sheetimport.Reduction, sheetID, calendarName string) {
	grid, err := s.fetcher.FetchRange(ctx, sheetID, calendarName+"!"+calendarRangeColumns)
	if err != nil {
		s.logger.WarnContext(ctx, "calendar sheet not accessible, skipping matches sync",
			"sheet_id", sheetID,
			"calendar_sheet", calendarName,
			"error", err,
		)
		return
	}

	_, stats := reduction.ApplyCalendar(grid)
	if !reduction.CalendarProcessed {
		s.logger.InfoContext(ctx, "calendar sheet has no data rows", "calendar_sheet", calendarName)
		return
	}
	s.logger.InfoContext(ctx, "calendar sheet reduced",
		"calendar_sheet", calendarName,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
	)
}

func (s *SheetSyncService) upsertTeams(ctx context.Context, abbreviations []string) error {
	for _, abbr := range abbreviations {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate team id: %w", err)
		}
		item := team.Team{ID: teamID, Abbreviation: abbr, Name: abbr}
		if err := s.teamRepo.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upsert team %s: %w", abbr, err)
		}
	}
	return nil
}

func (s *SheetSyncService) upsertPlayers(ctx context.Context, lines []sheetimport.PlayerLine) error {
	for _, line := range lines {
		playerID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate player id: %w", err)
		}
		item := player.Player{
			ID:               playerID,
			Name:             line.Name,
			TeamAbbreviation: line.Team,
			Goals:            line.Goals,
			Assists:          line.Assists,
		}
		if err := s.playerRepo.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upsert player %s: %w", line.Name, err)
		}
	}
	return nil
}

func (s *SheetSyncService) replaceEvents(ctx context.Context, events []matchevent.Event) error {
	if err := s.eventRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete match events: %w", err)
	}

	failed := 0
	for _, item := range events {
		eventID, err := s.idGen.NewID()
		if err != nil {
			failed++
			s.logger.WarnContext(ctx, "generate event id failed", "scorer", item.Scorer, "team", item.Team, "error", err)
			continue
		}
		item.ID = eventID
		if err := s.eventRepo.Insert(ctx, item); err != nil {
			failed++
			s.logger.WarnContext(ctx, "insert match event failed", "scorer", item.Scorer, "team", item.Team, "error", err)
		}
	}
	if failed > 0 {
		s.logger.WarnContext(ctx, "some match events were not stored", "failed", failed, "total", len(events))
	}
	return nil
}

func (s *SheetSyncService) replaceMatches(ctx context.Context, matches []match.Match) int {
	if err := s.matchRepo.DeleteAll(ctx); err != nil {
		s.logger.WarnContext(ctx, "delete matches failed, skipping matches sync", "error", err)
		return 0
	}

	imported := 0
	for _, item := range matches {
		matchID, err := s.idGen.NewID()
		if err != nil {
			s.logger.WarnContext(ctx, "generate match id failed", "error", err)
			continue
		}
		item.ID = matchID
		if err := s.matchRepo.Insert(ctx, item); err != nil {
			s.logger.WarnContext(ctx, "insert match failed",
				"date", item.Date,
				"home_team", item.HomeTeam,
				"away_team", item.AwayTeam,
				"error", err,
			)
			continue
		}
		imported++
	}
	s.logger.InfoContext(ctx, "matches imported from calendar", "imported", imported, "total", len(matches))
	return imported
}

func (s *SheetSyncService) recordSync(ctx context.Context, sheetID, sheetName string, syncedAt time.Time) error {
	settingID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate sheet setting id: %w", err)
	}
	item := sheetsetting.Setting{
		ID:         settingID,
		SheetID:    sheetID,
		SheetName:  sheetName,
		LastSyncAt: syncedAt,
	}
	if err := s.settingRepo.Upsert(ctx, item); err != nil {
		return fmt.Errorf("upsert sheet setting: %w", err)
	}
	return nil
}

func (s *SheetSyncService) notify(ctx context.Context, event SyncEvent) {
	for _, listener := range s.listeners {
		if listener == nil {
			continue
		}
		if err := listener.OnSheetSynced(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "sync listener failed", "sheet_id", event.SheetID, "error", err)
		}
	}
}

func upstreamError(op string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
