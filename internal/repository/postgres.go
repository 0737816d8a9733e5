package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

// NewPool opens the storage handle shared by all repositories. The caller
// owns it and must Close it on shutdown.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, errors.New("parsing postgres config error: " + err.Error())
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.New("pinging postgres error: " + err.Error())
	}
	return pool, nil
}

// Migrate applies goose migrations from dir over a dedicated connection.
func Migrate(pool *pgxpool.Pool, dir string) error {
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err := goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
