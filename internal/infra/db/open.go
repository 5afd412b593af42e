package db

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"monfluxrss/internal/pkg/config"
)

// ConnectionConfig holds connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns pool settings sized for a single API or
// worker instance against one postgres.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open connects to the database named by DATABASE_URL, applies the pool
// settings and verifies the connection with a ping. Missing DATABASE_URL or
// an unreachable database is fatal.
func Open() *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal(err)
	}

	cfg := loadConnectionConfig()
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	slog.Info("database connection established")
	return pool
}

// loadConnectionConfig reads pool settings from the environment with the
// usual fail-open policy: a bad value logs a warning and keeps the default.
func loadConnectionConfig() ConnectionConfig {
	def := DefaultConnectionConfig()
	cfg := ConnectionConfig{}

	positive := func(n int) error { return config.ValidateIntRange(n, 1, 10000) }

	res := config.LoadEnvInt("DB_MAX_OPEN_CONNS", def.MaxOpenConns, positive)
	warnAll(res.Warnings)
	cfg.MaxOpenConns = res.Value.(int)

	res = config.LoadEnvInt("DB_MAX_IDLE_CONNS", def.MaxIdleConns, positive)
	warnAll(res.Warnings)
	cfg.MaxIdleConns = res.Value.(int)

	res = config.LoadEnvDuration("DB_CONN_MAX_LIFETIME", def.ConnMaxLifetime, config.ValidatePositiveDuration)
	warnAll(res.Warnings)
	cfg.ConnMaxLifetime = res.Value.(time.Duration)

	res = config.LoadEnvDuration("DB_CONN_MAX_IDLE_TIME", def.ConnMaxIdleTime, config.ValidatePositiveDuration)
	warnAll(res.Warnings)
	cfg.ConnMaxIdleTime = res.Value.(time.Duration)

	return cfg
}

func warnAll(warnings []string) {
	for _, w := range warnings {
		slog.Warn(w)
	}
}
