package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/config"
	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/middleware"
	"github.com/storalia/bodega/internal/module/auth"
	"github.com/storalia/bodega/internal/module/client"
	"github.com/storalia/bodega/internal/module/maintenance"
	"github.com/storalia/bodega/internal/module/rental"
	"github.com/storalia/bodega/internal/module/user"
	"github.com/storalia/bodega/internal/module/warehouse"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	jwtSvc jwt.Service
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, domain repositories, services, handlers,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Warehouse{},
			&domain.Client{},
			&domain.Rental{},
			&domain.User{},
			&domain.MaintenanceRecord{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection: repository → service → handler → module.
	warehouseRepo := warehouse.NewWarehouseRepository(db)
	warehouseSvc := warehouse.NewWarehouseService(warehouseRepo)

	clientRepo := client.NewClientRepository(db)
	clientSvc := client.NewClientService(clientRepo)

	rentalRepo := rental.NewRentalRepository(db)
	rentalSvc := rental.NewRentalService(rentalRepo, clientRepo, warehouseRepo)

	userRepo := user.NewUserRepository(db)
	userSvc := user.NewUserService(userRepo)

	maintenanceRepo := maintenance.NewMaintenanceRepository(db)
	maintenanceSvc := maintenance.NewMaintenanceService(maintenanceRepo, warehouseRepo)

	modules := []Module{
		warehouse.NewModule(warehouse.NewWarehouseHandler(warehouseSvc)),
		client.NewModule(client.NewClientHandler(clientSvc)),
		rental.NewModule(rental.NewRentalHandler(rentalSvc)),
		user.NewModule(user.NewUserHandler(userSvc)),
		maintenance.NewModule(maintenance.NewMaintenanceHandler(maintenanceSvc)),
	}

	var jwtSvc jwt.Service
	var apiMiddleware []gin.HandlerFunc
	if cfg.Auth.Enabled {
		jwtSvc, err = jwt.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
		defer func() {
			if success {
				return
			}
			jwtSvc.Close()
		}()

		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("parse token expiry: %w", err)
		}

		authSvc := auth.NewService(jwtSvc, userRepo, tokenExpiry)
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))

		// Resolve the operator identity for audit stamping on deactivation.
		apiMiddleware = append(apiMiddleware, middleware.Identity(jwtSvc, userRepo))
	}

	// 5. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestID(),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 6. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:    modules,
		Middleware: apiMiddleware,
		DB:         db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		jwtSvc: jwtSvc,
		cfg:    cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.jwtSvc != nil {
		a.jwtSvc.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
