package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/auth"
	authdb "github.com/itparc/asset-management/internal/auth/postgres"
	"github.com/itparc/asset-management/internal/core/cache"
	"github.com/itparc/asset-management/internal/declaration"
	declarationdb "github.com/itparc/asset-management/internal/declaration/postgres"
	"github.com/itparc/asset-management/internal/directory"
	directorydb "github.com/itparc/asset-management/internal/directory/postgres"
	"github.com/itparc/asset-management/internal/employer"
	employerdb "github.com/itparc/asset-management/internal/employer/postgres"
	"github.com/itparc/asset-management/internal/equipment"
	equipmentdb "github.com/itparc/asset-management/internal/equipment/postgres"
	"github.com/itparc/asset-management/internal/intervention"
	interventiondb "github.com/itparc/asset-management/internal/intervention/postgres"
	"github.com/itparc/asset-management/internal/license"
	licensedb "github.com/itparc/asset-management/internal/license/postgres"
	"github.com/itparc/asset-management/internal/mail"
	"github.com/itparc/asset-management/internal/maintenance"
	maintenancedb "github.com/itparc/asset-management/internal/maintenance/postgres"
	"github.com/itparc/asset-management/internal/statistics"
	statisticsdb "github.com/itparc/asset-management/internal/statistics/postgres"
	"github.com/itparc/asset-management/internal/transport/rest"
	"github.com/itparc/asset-management/internal/user"
	userdb "github.com/itparc/asset-management/internal/user/postgres"
	"github.com/itparc/asset-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
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
	DB       *gorm.DB
	SQLDB    *sqlx.DB
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

	rest.RegisterAllRoutes(deps.Router, deps.SQLDB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

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
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
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

	logger.Setup(config.Logging.Level, config.Logging.Format)
	log := logger.LoggerWrapper()

	gormDB, sqlxDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	authService := auth.NewService(authdb.NewAuthRepository(gormDB), config.Security.BCryptCost, config.Security.TokenTTL, log)
	userService := user.NewService(userdb.NewUserRepository(gormDB), log)
	directoryService := directory.NewService(directorydb.NewDirectoryRepository(gormDB, log), log)

	mailer := mail.NewMailer(config.Mail, log)
	employerService := employer.NewService(employerdb.NewEmployerRepository(gormDB, log), authService, mailer, log)

	equipmentService := equipment.NewService(equipmentdb.NewEquipmentRepository(gormDB, log), log)
	interventionService := intervention.NewService(interventiondb.NewInterventionRepository(gormDB, log), log)
	maintenanceService := maintenance.NewService(maintenancedb.NewMaintenanceRepository(gormDB, log), log)
	licenseService := license.NewService(licensedb.NewLicenseRepository(gormDB, log), log)
	declarationService := declaration.NewService(declarationdb.NewDeclarationRepository(gormDB, log), log)

	statisticsService := statistics.NewService(
		statisticsdb.NewStatisticsRepository(sqlxDB, log),
		cache.NewTTLCache(),
		config.Statistics.CacheTTL,
		log,
	)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authService),
		User:         user.NewHandler(userService),
		Directory:    directory.NewHandler(directoryService, log),
		Employer:     employer.NewHandler(employerService, log),
		Equipment:    equipment.NewHandler(equipmentService, log),
		Intervention: intervention.NewHandler(interventionService, log),
		Maintenance:  maintenance.NewHandler(maintenanceService, log),
		License:      license.NewHandler(licenseService, log),
		Declaration:  declaration.NewHandler(declarationService, log),
		Statistics:   statistics.NewHandler(statisticsService, log),
	}

	return &Dependencies{
		Config:   config,
		DB:       gormDB,
		SQLDB:    sqlxDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		Logger:   log,
	}, nil
}

// initDB opens the gorm connection for the selected driver and wraps the same
// underlying pool in a sqlx handle for the raw statistics queries.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, *sqlx.DB, error) {
	var (
		dialector  gorm.Dialector
		sqlxDriver string
	)
	switch cfg.Driver {
	case "sqlite":
		dialector = gormsqlite.Open(cfg.Source)
		sqlxDriver = "sqlite3"
	default:
		dialector = gormpostgres.Open(cfg.Source)
		sqlxDriver = "pgx"
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access db pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying pool on failure
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, sqlx.NewDb(sqlDB, sqlxDriver), nil
}
