package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"lol-scout/internal/analysis"
	"lol-scout/internal/assets"
	"lol-scout/internal/cache"
	"lol-scout/internal/config"
	"lol-scout/internal/database"
	"lol-scout/internal/fetch"
	"lol-scout/internal/logger"
	"lol-scout/internal/reconcile"
	"lol-scout/internal/repository"
	"lol-scout/internal/scrape"
	"lol-scout/internal/server"
	"lol-scout/internal/service"
)

func ProvideFetcher(logger zerolog.Logger) fetch.Fetcher {
	return fetch.NewClient(logger)
}

func ProvideRedis(cfg *config.Config, logger zerolog.Logger) *cache.RedisClient {
	return cache.NewRedisClient(cfg.RedisURL, logger)
}

func ProvideScrapeClient(fetcher fetch.Fetcher, redis *cache.RedisClient, cfg *config.Config, logger zerolog.Logger) *scrape.Client {
	return scrape.NewClient(fetcher, redis, cfg.Region, logger)
}

func ProvideDDragon(fetcher fetch.Fetcher, logger zerolog.Logger) *assets.DDragon {
	return assets.NewDDragon(fetcher, cache.SystemClock(), logger)
}

func ProvideReconciler(client *scrape.Client, cfg *config.Config, logger zerolog.Logger) *reconcile.Reconciler {
	return reconcile.NewReconciler(client, cfg.Region, logger)
}

func ProvideEngine(client *scrape.Client, logger zerolog.Logger) *analysis.Engine {
	return analysis.NewEngine(client, logger)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// scraping pipeline
	fx.Provide(ProvideFetcher),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideScrapeClient),
	fx.Provide(ProvideDDragon),
	fx.Provide(ProvideReconciler),
	fx.Provide(ProvideEngine),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewMetaRepository),
	// svc
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewRefreshService),
	fx.Provide(service.NewAnalysisService),
	// server
	fx.Provide(server.New),
)
