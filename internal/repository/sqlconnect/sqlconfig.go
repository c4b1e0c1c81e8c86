package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/5w1tchy/catalog-api/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

// ConnectDB opens the shared pool and verifies it with a ping. The caller owns
// the returned handle and must Close it at shutdown.
func ConnectDB(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := prepare(ctx, db, cfg); err != nil {
		return nil, err
	}
	log.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("connected to database")
	return db, nil
}

// prepare applies the pool bounds and pings. Callers past MaxOpenConns block
// until a connection is released.
func prepare(ctx context.Context, db *sql.DB, cfg config.Database) error {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
