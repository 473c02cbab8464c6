// Command clubhouse serves the club membership API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/internal/db"
	"github.com/dmitrymomot/clubhouse/modules/club"
	"github.com/dmitrymomot/clubhouse/pkg/cache"
	"github.com/dmitrymomot/clubhouse/pkg/config"
	"github.com/dmitrymomot/clubhouse/pkg/httpserver"
	"github.com/dmitrymomot/clubhouse/pkg/logger"
	"github.com/dmitrymomot/clubhouse/pkg/pg"
	"github.com/dmitrymomot/clubhouse/pkg/redis"
	"github.com/dmitrymomot/clubhouse/pkg/requestid"
	"github.com/dmitrymomot/clubhouse/svc/member"
	"github.com/dmitrymomot/clubhouse/svc/sport"
	"github.com/dmitrymomot/clubhouse/svc/subscription"
)

type appConfig struct {
	Log     logger.Config
	HTTP    httpserver.Config
	PG      pg.Config
	Redis   redis.Config
	Cache   cache.Config
	Catalog sport.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log := logger.New(append(cfg.Log.Options(),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)...)
	slog.SetDefault(log)

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.PG.MigrateOnStart {
		if err := pg.MigrateFS(ctx, pool, db.Migrations, db.MigrationsDir, cfg.PG, log); err != nil {
			return err
		}
	}

	probes := []httpserver.Probe{{Name: "postgres", Check: pg.Healthcheck(pool)}}

	var store cache.Store
	switch cfg.Cache.Driver {
	case cache.DriverMemory:
		if store, err = cache.NewMemoryStore(cfg.Cache.Size); err != nil {
			return err
		}
	case cache.DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		store = cache.NewRedisStore(client, cache.WithKeyPrefix(cfg.Cache.KeyPrefix))
		probes = append(probes, httpserver.Probe{Name: "redis", Check: redis.Healthcheck(client)})
	default:
		return errors.New("unknown cache driver: " + cfg.Cache.Driver)
	}

	sqlDB := pg.OpenDB(pool)
	defer sqlDB.Close()

	members := member.NewService(
		datastore.NewPostgres(sqlDB, member.Table),
		member.WithLogger(log),
	)
	sports := sport.NewService(
		datastore.NewPostgres(sqlDB, sport.Table),
		store,
		sport.WithLogger(log),
		sport.WithCacheTTL(cfg.Catalog.CacheTTL),
	)
	subscriptions := subscription.NewService(
		datastore.NewPostgres(sqlDB, subscription.Table),
		members,
		sports,
		subscription.WithLogger(log),
	)

	errHandler := handler.NewErrorHandler(log, club.ClassifyServiceError)
	router := club.Router(club.RouterOptions{
		Members:       club.NewMembers(members, errHandler),
		Sports:        club.NewSports(sports, errHandler, club.WithCatalogMaxAge(cfg.Catalog.CacheTTL)),
		Subscriptions: club.NewSubscriptions(subscriptions, errHandler),
		Probes:        probes,
		Logger:        log,
		ErrorHandler:  errHandler,
	})

	log.InfoContext(ctx, "starting clubhouse",
		slog.String("cache_driver", cfg.Cache.Driver),
		slog.Duration("catalog_cache_ttl", cfg.Catalog.CacheTTL),
	)
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
