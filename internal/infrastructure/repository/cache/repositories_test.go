package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetimport"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/player"
	sheetsettingmock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/sheetsetting"
	teammock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/nhl-sheet-sync/internal/platform/cache"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/id"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestTeamRepository_ListIsCachedAndCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	next.On("List", mock.Anything).Return([]team.Team{{Abbreviation: "TOR"}}, nil).Once()

	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	first[0].Abbreviation = "mutated"

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if second[0].Abbreviation != "TOR" {
		t.Fatalf("cached slice must not be shared with callers, got=%s", second[0].Abbreviation)
	}
}

func TestSyncInvalidator_FlushesReadKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	next := playermock.NewRepository(t)
	next.On("ListByTeam", mock.Anything, "TOR").Return([]player.Player{{Name: "A. Matthews", Goals: 1}}, nil).Once()
	next.On("ListByTeam", mock.Anything, "TOR").Return([]player.Player{{Name: "A. Matthews", Goals: 2}}, nil).Once()

	repo := NewPlayerRepository(next, store)
	if _, err := repo.ListByTeam(ctx, "TOR"); err != nil {
		t.Fatalf("list players: %v", err)
	}
	store.Set(ctx, "unrelated:key", 1)

	invalidator := NewSyncInvalidator(store, logging.NewNop())
	if err := invalidator.OnSheetSynced(ctx, usecase.SyncEvent{SheetID: "sheet-1"}); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	got, err := repo.ListByTeam(ctx, "TOR")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if got[0].Goals != 2 {
		t.Fatalf("expected fresh load after flush, got goals=%d", got[0].Goals)
	}
	if _, ok := store.Get(ctx, "unrelated:key"); !ok {
		t.Fatalf("unrelated keys must survive the flush")
	}
}

type gridFetcher map[string]sheetimport.Grid

func (f gridFetcher) Configured() bool { return true }

func (f gridFetcher) FetchRange(_ context.Context, _ string, rng string) (sheetimport.Grid, error) {
	return f[rng], nil
}

func TestWrites_DropCachedReadsWhenSyncFailsLate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	teams := NewTeamRepository(memory.NewTeamRepository(nil), store)
	players := NewPlayerRepository(memory.NewPlayerRepository(nil), store)
	events := NewMatchEventRepository(memory.NewMatchEventRepository(), store)
	matches := NewMatchRepository(memory.NewMatchRepository(nil), store)

	settingsNext := sheetsettingmock.NewRepository(t)
	settingsNext.On("Upsert", mock.Anything, mock.AnythingOfType("sheetsetting.Setting")).Return(errors.New("db down")).Once()
	settings := NewSheetSettingRepository(settingsNext, store)

	if got, _ := players.List(ctx); len(got) != 0 {
		t.Fatalf("expected no players before sync, got %d", len(got))
	}
	if got, _ := events.ListRecent(ctx, 10); len(got) != 0 {
		t.Fatalf("expected no events before sync, got %d", len(got))
	}
	if got, _ := teams.List(ctx); len(got) != 0 {
		t.Fatalf("expected no teams before sync, got %d", len(got))
	}

	fetcher := gridFetcher{
		"Sheet1!A:I": {
			{"Scorer", "Team"},
			{"A. Matthews", "TOR"},
		},
	}
	svc := usecase.NewSheetSyncService(fetcher, teams, players, events, matches, settings, &id.Sequence{Prefix: "id-"}, usecase.SheetSyncConfig{}, logging.NewNop())
	if _, err := svc.Sync(ctx, usecase.SyncInput{SheetID: "sheet-1"}); err == nil {
		t.Fatalf("expected sync to fail on the sheet setting upsert")
	}

	gotPlayers, err := players.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(gotPlayers) != 1 || gotPlayers[0].Name != "A. Matthews" {
		t.Fatalf("cached players are stale: %+v", gotPlayers)
	}
	gotEvents, err := events.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(gotEvents) != 1 {
		t.Fatalf("cached events are stale: got %d", len(gotEvents))
	}
	gotTeams, err := teams.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(gotTeams) != 1 || gotTeams[0].Abbreviation != "TOR" {
		t.Fatalf("cached teams are stale: %+v", gotTeams)
	}
}
