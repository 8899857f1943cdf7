package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/nhl-sheet-sync/external/googlesheets"
	"github.com/riskibarqy/nhl-sheet-sync/internal/config"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/match"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/matchevent"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/player"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetsetting"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/team"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/notifier"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/nhl-sheet-sync/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nhl-sheet-sync/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/nhl-sheet-sync/internal/platform/cache"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/id"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/resilience"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	teams    team.Repository
	players  player.Repository
	events   matchevent.Repository
	matches  match.Repository
	settings sheetsetting.Repository
}

// NewHTTPServer wires stores, clients and services. The returned cleanup
// releases the database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	repos, closeStore, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeStore)

	var listeners []usecase.SyncListener
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repos.cached(store)
		listeners = append(listeners, cache.NewSyncInvalidator(store, logger))
	}

	if cfg.RedisURL != "" {
		publisher, err := notifier.NewRedisStreamPublisher(ctx, cfg.RedisURL, cfg.RedisSyncStream, cfg.RedisSyncStreamMaxLen)
		if err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("connect redis notifier: %w", err)
		}
		closers = append(closers, publisher.Close)
		listeners = append(listeners, publisher)
		logger.Info("sync notifications enabled", "stream", cfg.RedisSyncStream)
	}

	sheetsClient, err := googlesheets.NewClient(ctx, googlesheets.ClientConfig{
		BaseURL:    cfg.GoogleSheetsBaseURL,
		APIKey:     cfg.GoogleAPIKey,
		Timeout:    cfg.GoogleSheetsTimeout,
		MaxRetries: cfg.GoogleSheetsMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GoogleSheetsCircuitEnabled,
			FailureThreshold: cfg.GoogleSheetsCircuitFailureCount,
			OpenTimeout:      cfg.GoogleSheetsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GoogleSheetsCircuitHalfOpenMax,
		},
	})
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("create google sheets client: %w", err)
	}
	if !sheetsClient.Configured() {
		logger.Warn("GOOGLE_API_KEY is not set; sync requests will be rejected")
	}

	syncSvc := usecase.NewSheetSyncService(
		sheetsClient,
		repos.teams,
		repos.players,
		repos.events,
		repos.matches,
		repos.settings,
		id.NewUUIDGenerator(),
		usecase.SheetSyncConfig{
			DefaultSheetName:    cfg.SheetDefaultName,
			DefaultCalendarName: cfg.SheetDefaultCalendarName,
		},
		logger,
		listeners...,
	)

	handler := httpapi.NewHandler(
		syncSvc,
		usecase.NewSheetSettingService(repos.settings),
		usecase.NewTeamService(repos.teams, repos.players),
		usecase.NewPlayerService(repos.players),
		usecase.NewMatchService(repos.matches, repos.events),
		usecase.NewCombinationService(repos.matches, repos.players, cfg.CombinationWorkers),
		usecase.NewDashboardService(repos.teams, repos.players),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Info("using in-memory store with demo data")
		return repositories{
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			events:   memory.NewMatchEventRepository(),
			matches:  memory.NewMatchRepository(memory.SeedMatches()),
			settings: memory.NewSheetSettingRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("connected to postgres", "db_name", postgres.DatabaseName(cfg.DBURL))

	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(ctx, db, id.NewUUIDGenerator()); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	return repositories{
		teams:    postgres.NewTeamRepository(db),
		players:  postgres.NewPlayerRepository(db),
		events:   postgres.NewMatchEventRepository(db),
		matches:  postgres.NewMatchRepository(db),
		settings: postgres.NewSheetSettingRepository(db),
	}, db.Close, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", postgres.NormalizeDSN(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(postgres.DatabaseName(cfg.DBURL)),
		otelsql.WithQueryFormatter(postgres.FormatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (r repositories) cached(store *basecache.Store) repositories {
	return repositories{
		teams:    cache.NewTeamRepository(r.teams, store),
		players:  cache.NewPlayerRepository(r.players, store),
		events:   cache.NewMatchEventRepository(r.events, store),
		matches:  cache.NewMatchRepository(r.matches, store),
		settings: cache.NewSheetSettingRepository(r.settings, store),
	}
}
