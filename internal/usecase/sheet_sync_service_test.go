package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetimport"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	matchmock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/match"
	matcheventmock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/matchevent"
	playermock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/player"
	sheetsettingmock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/sheetsetting"
	teammock "github.com/riskibarqy/nhl-sheet-sync/internal/mocks/domain/team"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/id"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

type fakeSheetFetcher struct {
	configured bool
	grids      map[string]sheetimport.Grid
	errs       map[string]error

	mu     sync.Mutex
	ranges []string
}

func (f *fakeSheetFetcher) Configured() bool {
	return f.configured
}

func (f *fakeSheetFetcher) FetchRange(_ context.Context, _ string, rng string) (sheetimport.Grid, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, rng)
	f.mu.Unlock()

	if err, ok := f.errs[rng]; ok {
		return nil, err
	}
	return f.grids[rng], nil
}

func (f *fakeSheetFetcher) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ranges...)
}

type recordingListener struct {
	err    error
	events []SyncEvent
}

func (l *recordingListener) OnSheetSynced(_ context.Context, event SyncEvent) error {
	l.events = append(l.events, event)
	return l.err
}

type syncRepos struct {
	team    *teammock.Repository
	player  *playermock.Repository
	event   *matcheventmock.Repository
	match   *matchmock.Repository
	setting *sheetsettingmock.Repository

	mu    sync.Mutex
	steps []string
}

func newSyncRepos(t *testing.T) *syncRepos {
	return &syncRepos{
		team:    teammock.NewRepository(t),
		player:  playermock.NewRepository(t),
		event:   matcheventmock.NewRepository(t),
		match:   matchmock.NewRepository(t),
		setting: sheetsettingmock.NewRepository(t),
	}
}

func (r *syncRepos) record(step string) func(mock.Arguments) {
	return func(mock.Arguments) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if n := len(r.steps); n > 0 && r.steps[n-1] == step {
			return
		}
		r.steps = append(r.steps, step)
	}
}

func newTestSyncService(fetcher SheetFetcher, repos *syncRepos, listeners ...SyncListener) *SheetSyncService {
	svc := NewSheetSyncService(
		fetcher,
		repos.team,
		repos.player,
		repos.event,
		repos.match,
		repos.setting,
		&id.Sequence{Prefix: "id-"},
		SheetSyncConfig{},
		logging.NewNop(),
		listeners...,
	)
	svc.now = func() time.Time { return time.Date(2026, 2, 4, 10, 0, 0, 0, time.UTC) }
	return svc
}

func matchCtx(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func eventsGridFixture() sheetimport.Grid {
	return sheetimport.Grid{
		{"Date", "Buteur", "Passeur1", "Passeur2", "Période", "Temps", "Équipe"},
		{"2026-02-03", "A. Matthews", "M. Marner", "W. Nylander", "1", "05:12", "TOR"},
		{"2026-02-03", "N. Suzuki", "C. Caufield", "", "2", "10:00", "MTL"},
		{"2026-02-03", "A. Matthews", "", "", "3", "18:40", "TOR"},
		{},
	}
}

func calendarGridFixture() sheetimport.Grid {
	return sheetimport.Grid{
		{"Date", "Heure (GMT)", "Visiteur (Abr.)", "Receveur (Abr.)", "Match Complet"},
		{"3/2/2026", "00:00", "BOS", "MTL", "Boston @ Montreal"},
		{"05/02/2026", "19:00", "TOR", "OTT", "Toronto @ Ottawa"},
	}
}

func TestSheetSyncService_Sync_FullRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I":     eventsGridFixture(),
			"Calendrier!A:E": calendarGridFixture(),
		},
	}
	listener := &recordingListener{}

	var teamsSeen []string
	repos.team.
		On("Upsert", matchCtx(ctx), mock.MatchedBy(func(v team.Team) bool { return v.Name == v.Abbreviation })).
		Run(func(args mock.Arguments) {
			repos.record("team")(args)
			teamsSeen = append(teamsSeen, args.Get(1).(team.Team).Abbreviation)
		}).
		Return(nil).
		Times(4)

	playersSeen := map[string]player.Player{}
	repos.player.
		On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).
		Run(func(args mock.Arguments) {
			repos.record("player")(args)
			item := args.Get(1).(player.Player)
			playersSeen[item.Name] = item
		}).
		Return(nil).
		Times(5)

	repos.event.On("DeleteAll", matchCtx(ctx)).Run(repos.record("event.delete")).Return(nil).Once()
	repos.event.
		On("Insert", matchCtx(ctx), mock.MatchedBy(func(v matchevent.Event) bool {
			return v.EventType == matchevent.TypeGoal && v.ID != "" && v.MatchDate == "2026-02-03"
		})).
		Run(repos.record("event.insert")).
		Return(nil).
		Times(3)

	repos.match.On("DeleteAll", matchCtx(ctx)).Run(repos.record("match.delete")).Return(nil).Once()
	var matchesSeen []match.Match
	repos.match.
		On("Insert", matchCtx(ctx), mock.AnythingOfType("match.Match")).
		Run(func(args mock.Arguments) {
			repos.record("match.insert")(args)
			matchesSeen = append(matchesSeen, args.Get(1).(match.Match))
		}).
		Return(nil).
		Times(2)

	repos.setting.
		On("Upsert", matchCtx(ctx), mock.MatchedBy(func(v sheetsetting.Setting) bool {
			return v.SheetID == "sheet-1" && v.SheetName == "Sheet1" && v.LastSyncAt.Equal(time.Date(2026, 2, 4, 10, 0, 0, 0, time.UTC))
		})).
		Run(repos.record("setting")).
		Return(nil).
		Once()

	svc := newTestSyncService(fetcher, repos, listener)
	got, err := svc.Sync(ctx, SyncInput{SheetID: " sheet-1 "})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if got.Message != "Sync completed successfully" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	want := ImportCounts{Events: 3, Players: 5, Teams: 4, Matches: 2}
	if got.Imported != want {
		t.Fatalf("unexpected counts: got=%+v want=%+v", got.Imported, want)
	}

	wantSteps := []string{"team", "player", "event.delete", "event.insert", "match.delete", "match.insert", "setting"}
	if strings.Join(repos.steps, ",") != strings.Join(wantSteps, ",") {
		t.Fatalf("unexpected reconcile order: got=%v want=%v", repos.steps, wantSteps)
	}
	if strings.Join(teamsSeen, ",") != "TOR,MTL,BOS,OTT" {
		t.Fatalf("unexpected team upserts: %v", teamsSeen)
	}

	matthews := playersSeen["A. Matthews"]
	if matthews.Goals != 2 || matthews.Assists != 0 || matthews.TeamAbbreviation != "TOR" {
		t.Fatalf("unexpected Matthews upsert: %+v", matthews)
	}
	caufield := playersSeen["C. Caufield"]
	if caufield.Goals != 0 || caufield.Assists != 1 || caufield.TeamAbbreviation != "MTL" {
		t.Fatalf("unexpected Caufield upsert: %+v", caufield)
	}

	if matchesSeen[0].Date != "2026-02-03" || matchesSeen[0].HomeTeam != "MTL" || matchesSeen[0].AwayTeam != "BOS" {
		t.Fatalf("unexpected first match: %+v", matchesSeen[0])
	}
	if matchesSeen[1].Date != "2026-02-05" || matchesSeen[1].Status != match.StatusUpcoming {
		t.Fatalf("unexpected second match: %+v", matchesSeen[1])
	}

	if len(listener.events) != 1 {
		t.Fatalf("expected listener to be notified once, got=%d", len(listener.events))
	}
	if listener.events[0].SheetID != "sheet-1" || listener.events[0].Imported != want {
		t.Fatalf("unexpected sync event: %+v", listener.events[0])
	}
}

func TestSheetSyncService_Sync_RejectsBeforeFetching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured bool
		input      SyncInput
		wantErr    error
	}{
		{name: "missing api key", configured: false, input: SyncInput{SheetID: "sheet-1"}, wantErr: ErrNotConfigured},
		{name: "missing sheet id", configured: true, input: SyncInput{SheetID: "  "}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newSyncRepos(t)
			fetcher := &fakeSheetFetcher{configured: tt.configured}
			svc := newTestSyncService(fetcher, repos)

			_, err := svc.Sync(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(fetcher.fetched()) != 0 {
				t.Fatalf("expected no fetch, got %v", fetcher.fetched())
			}
		})
	}
}

func TestSheetSyncService_Sync_EventsFetchFailureWritesNothing(t *testing.T) {
	t.Parallel()

	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		errs:       map[string]error{"Goals!A:I": errors.New("google sheets: status 403")},
	}
	svc := newTestSyncService(fetcher, repos)

	_, err := svc.Sync(context.Background(), SyncInput{SheetID: "sheet-1", SheetName: "Goals"})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected upstream detail in error, got %v", err)
	}
}

func TestSheetSyncService_Sync_CircuitOpenIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		errs:       map[string]error{"Sheet1!A:I": resilience.ErrCircuitOpen},
	}
	svc := newTestSyncService(fetcher, repos)

	_, err := svc.Sync(context.Background(), SyncInput{SheetID: "sheet-1"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSheetSyncService_Sync_HeaderOnlyIsNoData(t *testing.T) {
	t.Parallel()

	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {{"Date", "Scorer", "Team"}},
		},
	}
	listener := &recordingListener{}
	svc := newTestSyncService(fetcher, repos, listener)

	got, err := svc.Sync(context.Background(), SyncInput{SheetID: "sheet-1"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Message != "No data to sync" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	if got.Imported != (ImportCounts{}) {
		t.Fatalf("expected zero counts, got %+v", got.Imported)
	}
	if fetched := fetcher.fetched(); len(fetched) != 1 {
		t.Fatalf("calendar must not be fetched when events are empty, got %v", fetched)
	}
	if len(listener.events) != 0 {
		t.Fatalf("listener must not run without a sync")
	}
}

func TestSheetSyncService_Sync_CalendarFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
			},
		},
		errs: map[string]error{"Calendrier!A:E": errors.New("google sheets: status 400: unable to parse range")},
	}

	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Once()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.On("Insert", matchCtx(ctx), mock.AnythingOfType("matchevent.Event")).Return(nil).Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	svc := newTestSyncService(fetcher, repos)
	got, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	want := ImportCounts{Events: 1, Players: 1, Teams: 1, Matches: 0}
	if got.Imported != want {
		t.Fatalf("unexpected counts: got=%+v want=%+v", got.Imported, want)
	}
}

func TestSheetSyncService_Sync_EmptyCalendarNameSkipsCalendar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
			},
		},
	}

	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Once()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.On("Insert", matchCtx(ctx), mock.AnythingOfType("matchevent.Event")).Return(nil).Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	empty := ""
	svc := newTestSyncService(fetcher, repos)
	if _, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &empty}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if fetched := fetcher.fetched(); len(fetched) != 1 || fetched[0] != "Sheet1!A:I" {
		t.Fatalf("expected only the events range to be fetched, got %v", fetched)
	}
}

func TestSheetSyncService_Sync_HeaderOnlyCalendarKeepsMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
			},
			"Schedule!A:E": {{"Date", "Away", "Home"}},
		},
	}

	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Once()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.On("Insert", matchCtx(ctx), mock.AnythingOfType("matchevent.Event")).Return(nil).Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	calendar := "Schedule"
	svc := newTestSyncService(fetcher, repos)
	got, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &calendar})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Imported.Matches != 0 {
		t.Fatalf("expected zero matches, got %d", got.Imported.Matches)
	}
}

func TestSheetSyncService_Sync_EventInsertFailureIsSkipped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
				{"E. Malkin", "PIT"},
			},
		},
	}

	empty := ""
	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Twice()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.
		On("Insert", matchCtx(ctx), mock.MatchedBy(func(v matchevent.Event) bool { return v.Scorer == "S. Crosby" })).
		Return(errors.New("duplicate key")).
		Once()
	repos.event.
		On("Insert", matchCtx(ctx), mock.MatchedBy(func(v matchevent.Event) bool { return v.Scorer == "E. Malkin" })).
		Return(nil).
		Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	svc := newTestSyncService(fetcher, repos)
	got, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &empty})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Imported.Events != 2 {
		t.Fatalf("events count reports parsed events, got %d", got.Imported.Events)
	}
}

func TestSheetSyncService_Sync_TeamUpsertFailureAborts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
			},
		},
	}

	empty := ""
	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(errors.New("connection refused")).Once()

	svc := newTestSyncService(fetcher, repos)
	_, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &empty})
	if err == nil || !strings.Contains(err.Error(), "upsert team PIT") {
		t.Fatalf("expected team upsert error, got %v", err)
	}
}

func TestSheetSyncService_Sync_ListenerFailureDoesNotFailSync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
			},
		},
	}

	empty := ""
	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Once()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.On("Insert", matchCtx(ctx), mock.AnythingOfType("matchevent.Event")).Return(nil).Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	failing := &recordingListener{err: errors.New("redis unavailable")}
	after := &recordingListener{}
	svc := newTestSyncService(fetcher, repos, failing, after)

	got, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &empty})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Message != "Sync completed successfully" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	if len(after.events) != 1 {
		t.Fatalf("later listeners must still run")
	}
}

type failingNthID struct {
	fail int
	seq  id.Sequence
	n    int
}

func (g *failingNthID) NewID() (string, error) {
	g.n++
	if g.n == g.fail {
		return "", errors.New("entropy exhausted")
	}
	return g.seq.NewID()
}

func TestSheetSyncService_Sync_EventIDFailureIsSkipped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newSyncRepos(t)
	fetcher := &fakeSheetFetcher{
		configured: true,
		grids: map[string]sheetimport.Grid{
			"Sheet1!A:I": {
				{"Scorer", "Team"},
				{"S. Crosby", "PIT"},
				{"E. Malkin", "PIT"},
			},
		},
	}

	empty := ""
	repos.team.On("Upsert", matchCtx(ctx), mock.AnythingOfType("team.Team")).Return(nil).Once()
	repos.player.On("Upsert", matchCtx(ctx), mock.AnythingOfType("player.Player")).Return(nil).Twice()
	repos.event.On("DeleteAll", matchCtx(ctx)).Return(nil).Once()
	repos.event.
		On("Insert", matchCtx(ctx), mock.MatchedBy(func(v matchevent.Event) bool { return v.Scorer == "E. Malkin" && v.ID != "" })).
		Return(nil).
		Once()
	repos.setting.On("Upsert", matchCtx(ctx), mock.AnythingOfType("sheetsetting.Setting")).Return(nil).Once()

	svc := newTestSyncService(fetcher, repos)
	// one team and two players take ids 1-3, so the first event id fails
	svc.idGen = &failingNthID{fail: 4}

	got, err := svc.Sync(ctx, SyncInput{SheetID: "sheet-1", CalendarSheetName: &empty})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Message != "Sync completed successfully" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}
