package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	basecache "github.com/riskibarqy/nhl-sheet-sync/internal/platform/cache"
)

const (
	teamKeyPrefix     = "team:"
	playerKeyPrefix   = "player:"
	eventKeyPrefix    = "event:"
	matchKeyPrefix    = "match:"
	settingsKeyPrefix = "settings:"
)

// SyncedPrefixes lists every key family a sheet sync can make stale.
var SyncedPrefixes = []string{
	teamKeyPrefix,
	playerKeyPrefix,
	eventKeyPrefix,
	matchKeyPrefix,
	settingsKeyPrefix,
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamKeyPrefix+"list", func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.load(ctx, playerKeyPrefix+"list", r.next.List)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamAbbreviation string) ([]player.Player, error) {
	return r.load(ctx, playerKeyPrefix+"team:"+teamAbbreviation, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamAbbreviation)
	})
}

func (r *PlayerRepository) load(ctx context.Context, key string, loader func(context.Context) ([]player.Player, error)) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		items, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	items, err := basecache.Load(ctx, r.cache, matchKeyPrefix+"list", func(ctx context.Context) ([]match.Match, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, matchKeyPrefix+"id:"+id, func(ctx context.Context) (cachedMatchByID, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return cachedMatchByID{}, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return cached.value, cached.exists, nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return nil
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) error {
	if err := r.next.Insert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return nil
}

type MatchEventRepository struct {
	next  matchevent.Repository
	cache *basecache.Store
}

func NewMatchEventRepository(next matchevent.Repository, cache *basecache.Store) *MatchEventRepository {
	return &MatchEventRepository{next: next, cache: cache}
}

func (r *MatchEventRepository) ListRecent(ctx context.Context, limit int) ([]matchevent.Event, error) {
	key := eventKeyPrefix + "recent:" + strconv.Itoa(limit)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]matchevent.Event, error) {
		items, err := r.next.ListRecent(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]matchevent.Event(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]matchevent.Event(nil), items...), nil
}

func (r *MatchEventRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, eventKeyPrefix)
	return nil
}

func (r *MatchEventRepository) Insert(ctx context.Context, item matchevent.Event) error {
	if err := r.next.Insert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, eventKeyPrefix)
	return nil
}

type SheetSettingRepository struct {
	next  sheetsetting.Repository
	cache *basecache.Store
}

func NewSheetSettingRepository(next sheetsetting.Repository, cache *basecache.Store) *SheetSettingRepository {
	return &SheetSettingRepository{next: next, cache: cache}
}

func (r *SheetSettingRepository) GetBySheetID(ctx context.Context, sheetID string) (sheetsetting.Setting, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, settingsKeyPrefix+sheetID, func(ctx context.Context) (cachedSetting, error) {
		item, exists, err := r.next.GetBySheetID(ctx, sheetID)
		if err != nil {
			return cachedSetting{}, err
		}
		return cachedSetting{value: item, exists: exists}, nil
	})
	if err != nil {
		return sheetsetting.Setting{}, false, err
	}
	return cached.value, cached.exists, nil
}

type cachedSetting struct {
	value  sheetsetting.Setting
	exists bool
}

func (r *SheetSettingRepository) Upsert(ctx context.Context, item sheetsetting.Setting) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, settingsKeyPrefix)
	return nil
}
