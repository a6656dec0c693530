package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/catalog"
	"github.com/five82/fluxview/internal/config"
	"github.com/five82/fluxview/internal/dispatcher"
	"github.com/five82/fluxview/internal/journal"
	"github.com/five82/fluxview/internal/logging"
	"github.com/five82/fluxview/internal/prefs"
	"github.com/five82/fluxview/internal/store"
	"github.com/five82/fluxview/internal/ui"
)

// catalogPingTimeout bounds the startup check of the catalog database.
const catalogPingTimeout = 3 * time.Second

// Options configure the fluxview application.
type Options struct {
	ConfigPath string
	PrefsPath  string    // overrides prefs_path from the config file
	ReplayPath string    // replay this journal instead of starting the TUI
	Out        io.Writer // replay report destination; nil uses stdout
}

// Run boots fluxview until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PrefsPath != "" {
		cfg.PrefsPath = opts.PrefsPath
	}

	log, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	d := dispatcher.New(dispatcher.WithLogger(log))

	if opts.ReplayPath != "" {
		// A replay must not rewrite the user's preferences.
		p := prefs.NewMemory(prefs.Load(cfg.PrefsPath))
		stores, err := store.NewSet(d, store.Options{Prefs: p, Logger: log, SidebarVisible: cfg.SidebarVisible})
		if err != nil {
			return fmt.Errorf("init stores: %w", err)
		}
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return replay(opts.ReplayPath, d, stores, out, log)
	}

	stores, err := store.NewSet(d, store.Options{
		Prefs:          prefs.Open(cfg.PrefsPath),
		Logger:         log,
		SidebarVisible: cfg.SidebarVisible,
	})
	if err != nil {
		return fmt.Errorf("init stores: %w", err)
	}

	if cfg.JournalPath != "" {
		rec, err := journal.Create(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer func() { _ = rec.Close() }()
		if _, err := d.Register(rec.Callback()); err != nil {
			return fmt.Errorf("register journal: %w", err)
		}
		log.Info().Str("path", cfg.JournalPath).Msg("recording actions")
	}

	predictor, cleanup := openPredictor(ctx, cfg, log)
	defer cleanup()

	log.Info().Msg("starting ui")
	return ui.Run(ui.Options{
		Context:          ctx,
		Stores:           stores,
		Actions:          action.NewCreators(d),
		Predictor:        predictor,
		NotificationTTL:  cfg.NotificationTTL,
		PredictionsLimit: cfg.PredictionsLimit,
		Logger:           log,
	})
}

// openPredictor returns the Postgres catalog when one is configured and
// reachable, then the HTTP catalog service, and the in-memory title list
// otherwise.
func openPredictor(ctx context.Context, cfg config.Config, log zerolog.Logger) (catalog.Predictor, func()) {
	memory := catalog.NewMemory(cfg.CatalogTitles)
	if cfg.CatalogDSN == "" {
		if cfg.CatalogURL == "" {
			return memory, func() {}
		}
		client, err := catalog.NewHTTP(cfg.CatalogURL)
		if err != nil {
			log.Warn().Err(err).Msg("invalid catalog url, using configured titles")
			return memory, func() {}
		}
		log.Info().Str("url", cfg.CatalogURL).Msg("using catalog service")
		return client, func() {}
	}

	pool, err := catalog.Connect(ctx, cfg.CatalogDSN)
	if err != nil {
		log.Warn().Err(err).Msg("catalog unavailable, using configured titles")
		return memory, func() {}
	}

	pingCtx, cancel := context.WithTimeout(ctx, catalogPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Warn().Err(err).Msg("catalog unreachable, using configured titles")
		return memory, func() {}
	}

	pg := catalog.NewPostgres(pool)
	if err := pg.EnsureTable(pingCtx); err != nil {
		pool.Close()
		log.Warn().Err(err).Msg("catalog schema check failed, using configured titles")
		return memory, func() {}
	}
	if n, err := pg.Seed(pingCtx, cfg.CatalogTitles); err != nil {
		log.Warn().Err(err).Int("seeded", n).Msg("seed catalog titles")
	} else if n > 0 {
		log.Debug().Int("titles", n).Msg("catalog titles seeded")
	}
	log.Info().Msg("catalog connected")
	return pg, pool.Close
}
