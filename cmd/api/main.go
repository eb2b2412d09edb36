package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpadp "lis-dashboard/internal/adapter/http"
	"lis-dashboard/internal/adapter/repository/mysql"
	"lis-dashboard/internal/backend"
	"lis-dashboard/internal/config"
	"lis-dashboard/internal/infrastructure/cache"
	"lis-dashboard/internal/infrastructure/db"
	"lis-dashboard/internal/infrastructure/scheduler"
	"lis-dashboard/internal/logger"
	"lis-dashboard/internal/mockstore"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	checks := map[string]httpadp.Check{}
	uow, closeStore, err := openStore(cfg, log, checks)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer closeStore()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.OpenRedis(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, address cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
			checks["redis"] = cache.Ping(rdb)
		}
	}

	api := backend.New(uow, backend.WithLogger(log))
	addresses := cache.NewAddressCache(api, rdb,
		cache.WithTTL(cfg.AddressCache.TTL),
		cache.WithLogger(log),
	)
	e := httpadp.NewRouter(addresses, httpadp.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Checks:      checks,
		Logger:      log,
	})

	sched := scheduler.New(log)
	if rdb != nil && cfg.AddressCache.WarmSchedule != "" {
		if err := sched.Add(cfg.AddressCache.WarmSchedule, "address-warm", addresses.Warm); err != nil {
			log.Fatal().Err(err).Msg("failed to schedule address warm")
		}
	}
	sched.Start()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info().Str("addr", addr).Str("store", cfg.Store.Driver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdown); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := sched.Stop(shutdown); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown")
	}
	log.Info().Msg("bye")
}

// openStore builds the unit of work for the configured driver and seeds
// it with the demo fixtures when enabled.
func openStore(cfg *config.Config, log zerolog.Logger, checks map[string]httpadp.Check) (store.UnitOfWork, func(), error) {
	var (
		uow     store.UnitOfWork
		closeFn = func() {}
	)
	switch cfg.Store.Driver {
	case config.DriverMemory:
		uow = memory.NewStore()
	default:
		dsn := cfg.Store.SQLitePath
		if cfg.Store.Driver == config.DriverMySQL {
			dsn = cfg.MySQLDSN()
		}
		gdb, err := db.OpenGorm(cfg.Store.Driver, dsn, db.WithLogger(log, cfg.LogLevel))
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { _ = sqlDB.Close() }
		checks["database"] = sqlDB.PingContext
		if err := mysql.Migrate(gdb); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		uow = mysql.NewGormUoW(gdb)
	}

	if cfg.Store.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mysql.Seed(ctx, uow, mockstore.Fill); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}
	return uow, closeFn, nil
}
