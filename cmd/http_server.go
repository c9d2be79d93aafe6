package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/band"
	bandPostgres "github.com/frahmantamala/hr-records/internal/band/postgres"
	"github.com/frahmantamala/hr-records/internal/core/events"
	"github.com/frahmantamala/hr-records/internal/orgunit"
	orgunitPostgres "github.com/frahmantamala/hr-records/internal/orgunit/postgres"
	"github.com/frahmantamala/hr-records/internal/position"
	positionPostgres "github.com/frahmantamala/hr-records/internal/position/postgres"
	"github.com/frahmantamala/hr-records/internal/transport"
	"github.com/frahmantamala/hr-records/internal/transport/rest"
	"github.com/frahmantamala/hr-records/internal/worker"
	workerPostgres "github.com/frahmantamala/hr-records/internal/worker/postgres"
	"github.com/frahmantamala/hr-records/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	EventBus *events.EventBus
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config, deps.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		// in-flight event handlers finish before the pool goes away
		deps.EventBus.Wait()
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	bus := events.NewEventBus(log)
	bus.Subscribe(events.Wildcard, auditLogHandler(log))

	baseHandler := transport.NewBaseHandler(log)
	handlers := rest.Handlers{
		OrgUnits: orgunit.NewHandler(baseHandler,
			orgunit.NewService(orgunitPostgres.NewOrgUnitRepository(gormDB), bus, log)),
		Workers: worker.NewHandler(baseHandler,
			worker.NewService(workerPostgres.NewWorkerRepository(gormDB), bus, log)),
		Positions: position.NewHandler(baseHandler,
			position.NewService(positionPostgres.NewPositionRepository(gormDB), bus, log)),
		Bands: band.NewHandler(baseHandler,
			band.NewService(bandPostgres.NewBandRepository(gormDB), bus, log)),
	}

	return &Dependencies{
		Config:   config,
		Logger:   log,
		DB:       db,
		Gorm:     gormDB,
		EventBus: bus,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// auditLogHandler writes one structured line per persisted record change.
func auditLogHandler(log *slog.Logger) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		changed, ok := event.(*events.RecordChanged)
		if !ok {
			return nil
		}
		log.InfoContext(ctx, "record changed",
			"event_id", changed.EventID(),
			"event_type", changed.EventType(),
			"resource", changed.Resource,
			"record_id", changed.RecordID,
			"actor", changed.Actor,
			"occurred_at", changed.OccurredAt())
		return nil
	}
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
