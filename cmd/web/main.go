package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/analysis"
	"github.com/myrjola/thejury/internal/casefile"
	"github.com/myrjola/thejury/internal/chat"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/envstruct"
	"github.com/myrjola/thejury/internal/logging"
	"github.com/myrjola/thejury/internal/pprofserver"
	"github.com/myrjola/thejury/internal/restore"
	"github.com/myrjola/thejury/internal/speech"
	"github.com/myrjola/thejury/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	orchestrator   *analysis.Orchestrator
	chat           *chat.Manager
	cases          *casefile.Store
	restorer       *restore.Controller
	speech         *speech.Synthesizer
}

// aiBackend is the remote model surface the application consumes. main wires
// the real client; tests substitute a stub.
type aiBackend interface {
	analysis.Generator
	chat.Completer
	speech.Speaker
}

type config struct {
	Addr            string `env:"THEJURY_ADDR" envDefault:"localhost:4000"`
	PprofPort       string `env:"THEJURY_PPROF_PORT" envDefault:":6060"`
	SqliteURL       string `env:"THEJURY_SQLITE_URL" envDefault:"./thejury.sqlite"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	HistoryMaxBytes int64  `env:"THEJURY_HISTORY_MAX_BYTES" envDefault:"5242880"`
}

// run starts the application. A nil backend means the real remote client
// configured from the environment.
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool), backend aiBackend) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	pprofserver.Launch(cfg.PprofPort, logger)

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String("url", cfg.SqliteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	if backend == nil {
		backend = ai.NewClient(ai.Config{APIKey: cfg.OpenAIAPIKey}) //nolint:exhaustruct
	}

	chatManager := chat.NewManager(backend, logger)
	records := casefile.NewSQLiteRecordStore(db, cfg.HistoryMaxBytes)
	cases, err := casefile.NewStore(ctx, records, logger)
	if err != nil {
		return errors.Wrap(err, "initialise case file store")
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		orchestrator:   analysis.NewOrchestrator(backend, chatManager, logger),
		chat:           chatManager,
		cases:          cases,
		restorer:       restore.NewController(chatManager, logger),
		speech:         speech.NewSynthesizer(backend, logger),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	loggerHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ //nolint:exhaustruct
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(logging.NewContextHandler(loggerHandler))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv, nil); err != nil {
		logger.Error("server error", errors.SlogError(err))
		os.Exit(1)
	}
}
