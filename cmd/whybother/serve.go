package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/whybother-dashboard/internal/adapters/web"
	"github.com/jose-valero/whybother-dashboard/internal/app/service"
	"github.com/jose-valero/whybother-dashboard/internal/infra/cache"
	"github.com/jose-valero/whybother-dashboard/internal/infra/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, closeCache, err := buildCache(ctx)
		if err != nil {
			return err
		}
		defer closeCache()

		api := newAPIClient()
		logger.Info("stats api", zap.String("base_url", api.BaseURL()), zap.Bool("cache", c != nil))
		srv := web.New(service.NewDashboard(api, c, logger.Named("service")), logger.Named("web"))

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Start(cfg.HTTPAddr) })
		g.Go(func() error {
			<-gctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(sctx)
		})
		return g.Wait()
	},
}

// buildCache: memoria siempre que haya TTL; con DATABASE_URL se suma
// Postgres como segundo nivel.
func buildCache(ctx context.Context) (service.Cache, func(), error) {
	noop := func() {}
	if !cfg.CacheEnabled() {
		return nil, noop, nil
	}
	mem := cache.NewMemory(cfg.CacheTTL)
	if cfg.DatabaseURL == "" {
		return mem, noop, nil
	}

	db, err := storage.Open(ctx, cfg.DatabaseURL, storage.PoolOptions{MaxOpenConns: cfg.DBMaxConns})
	if err != nil {
		return nil, noop, err
	}
	if err := storage.Migrate(ctx, db, logger.Named("storage")); err != nil {
		_ = db.Close()
		return nil, noop, err
	}
	tiered := &cache.Tiered{L1: mem, L2: storage.NewCacheRepo(db, cfg.CacheTTL)}
	return tiered, func() { _ = db.Close() }, nil
}
