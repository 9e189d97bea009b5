package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pool defaults applied when the config leaves a knob unset.
const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 100
	defaultConnMaxLifetime = time.Hour
)

// SetupDatabase opens a GORM connection for the configured driver. SQLite is
// the default for single-office deployments; postgres serves multi-instance
// setups. The GORM logger mode follows the slog level and pool parameters are
// applied with defaults for unset values.
func SetupDatabase(cfg *DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("database config is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dir := filepath.Dir(cfg.SQLite.Path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory %q: %w", dir, err)
			}
		}
		// Rentals and maintenance records reference clients and warehouses,
		// so foreign key enforcement is always on.
		dialector = sqlite.Open(cfg.SQLite.Path + "?_pragma=foreign_keys(1)")
	case "postgres":
		dialector = postgres.Open(buildPostgresDSN(&cfg.Postgres))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// Debug level logs all SQL; otherwise only slow queries and errors.
	logMode := gormlogger.Warn
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	pool, err := resolvePool(&cfg.Pool)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	sqlDB.SetMaxIdleConns(pool.maxIdle)
	sqlDB.SetMaxOpenConns(pool.maxOpen)
	sqlDB.SetConnMaxLifetime(pool.maxLifetime)

	logger.Info("database connected",
		slog.String("driver", cfg.Driver),
		slog.Int("max_idle_conns", pool.maxIdle),
		slog.Int("max_open_conns", pool.maxOpen),
		slog.Duration("conn_max_lifetime", pool.maxLifetime),
	)

	return db, nil
}

type poolSettings struct {
	maxIdle     int
	maxOpen     int
	maxLifetime time.Duration
}

// resolvePool fills unset pool knobs with defaults.
func resolvePool(cfg *PoolConfig) (poolSettings, error) {
	p := poolSettings{
		maxIdle:     cfg.MaxIdleConns,
		maxOpen:     cfg.MaxOpenConns,
		maxLifetime: defaultConnMaxLifetime,
	}
	if p.maxIdle <= 0 {
		p.maxIdle = defaultMaxIdleConns
	}
	if p.maxOpen <= 0 {
		p.maxOpen = defaultMaxOpenConns
	}
	if cfg.ConnMaxLifetime != "" {
		d, err := time.ParseDuration(cfg.ConnMaxLifetime)
		if err != nil {
			return p, fmt.Errorf("invalid pool.conn_max_lifetime %q: %w", cfg.ConnMaxLifetime, err)
		}
		p.maxLifetime = d
	}
	return p, nil
}

func buildPostgresDSN(cfg *PostgresConfig) string {
	if cfg == nil {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   cfg.DBName,
	}

	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	query := url.Values{}
	if cfg.SSLMode != "" {
		query.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = query.Encode()

	return u.String()
}
