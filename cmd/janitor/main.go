package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/jose-valero/whybother-dashboard/internal/infra/storage"
)

const defaultRetention = 7 * 24 * time.Hour

// retention: CACHE_RETENTION (duracion Go); default 7 dias.
func retention() (time.Duration, error) {
	v := os.Getenv("CACHE_RETENTION")
	if v == "" {
		return defaultRetention, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("CACHE_RETENTION: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("CACHE_RETENTION must be positive, got %s", d)
	}
	return d, nil
}

func handler(ctx context.Context) (string, error) {
	log, _ := zap.NewProduction()
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}
	keep, err := retention()
	if err != nil {
		return err.Error(), nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := storage.NewCacheRepo(db, keep).Prune(cctx, keep)
	if err != nil {
		log.Warn("prune response_cache", zap.Error(err))
		return fmt.Sprintf("prune: %v", err), nil
	}
	log.Info("pruned response_cache", zap.Int64("rows", n), zap.Duration("retention", keep))
	return fmt.Sprintf("ok: pruned %d", n), nil
}

func main() { lambda.Start(handler) }
