package main

import (
	"context"
	"fmt"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/catalog"
	"github.com/RacoonMediaServer/rms-gallery/internal/config"
	"github.com/RacoonMediaServer/rms-gallery/internal/db"
	"github.com/RacoonMediaServer/rms-gallery/internal/migration"
	"github.com/RacoonMediaServer/rms-gallery/internal/schedule"
	"github.com/RacoonMediaServer/rms-gallery/internal/service/builds"
	"github.com/RacoonMediaServer/rms-gallery/internal/storage"
	"github.com/RacoonMediaServer/rms-gallery/internal/web"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4"
	"go-micro.dev/v4/logger"

	// Plugins
	_ "github.com/go-micro/plugins/v4/registry/etcd"
)

var Version = "v0.0.0"

const (
	serviceName         = "rms-gallery"
	shutdownTimeout     = 10 * time.Second
	refreshTimeout      = 2 * time.Minute
	catalogRefreshGroup = "catalog-refresh"
)

func main() {
	logger.Infof("%s %s", serviceName, Version)
	defer logger.Info("DONE.")

	useDebug := false

	service := micro.NewService(
		micro.Name(serviceName),
		micro.Version(Version),
		micro.Flags(
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"debug"},
				Usage:       "debug log level",
				Value:       false,
				Destination: &useDebug,
			},
		),
	)

	service.Init(
		micro.Action(func(context *cli.Context) error {
			configFile := fmt.Sprintf("/etc/rms/%s.json", serviceName)
			if context.IsSet("config") {
				configFile = context.String("config")
			}
			return config.Load(configFile)
		}),
	)

	if useDebug {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	}

	cfg := config.Config()

	policy, err := cfg.Gallery.OrderingPolicy()
	if err != nil {
		logger.Fatalf("Invalid gallery configuration: %s", err)
	}

	dirManager, err := storage.NewManager(cfg.Gallery.Directory)
	if err != nil {
		logger.Fatalf("Cannot initialize media directory: %s", err)
	}

	catalogSettings := catalog.Settings{
		Name:      cfg.Gallery.Name,
		Policy:    policy,
		Priority:  cfg.Gallery.Priority,
		Base:      cfg.Gallery.Base,
		Manifest:  cfg.Gallery.Manifest,
		Directory: dirManager,
	}

	if cfg.Database != "" {
		database, err := db.Connect(cfg.Database)
		if err != nil {
			logger.Fatalf("Connect to database failed: %s", err)
		}
		defer database.Close()
		logger.Info("Connected to database")

		m := migration.Migrator{
			CurrentVersion:  Version,
			DatabaseVersion: db.Version,
			Database:        database,
		}
		if err = m.Run(context.Background()); err != nil {
			logger.Fatalf("Migration failed: %s", err)
		}
		catalogSettings.Database = database
	} else {
		logger.Warn("Database is not configured, catalog is read-only")
	}

	catalogManager := catalog.NewManager(catalogSettings)
	sched := schedule.New()
	refresh := func(log logger.Logger, ctx context.Context) error {
		return catalogManager.Refresh(ctx)
	}

	if err = catalogManager.Refresh(context.Background()); err != nil {
		logger.Errorf("Load catalog failed: %s", err)
		loadTask := schedule.Task{
			Group: catalogRefreshGroup,
			Fn: schedule.GetRetryWrapper(
				logger.Fields(map[string]interface{}{
					"op":      "catalogLoad",
					"catalog": cfg.Gallery.Name,
				}),
				refresh,
			),
		}
		sched.Add(loadTask.Immediately().WithTimeout(refreshTimeout))
	} else {
		loaded := catalogManager.Snapshot()
		logger.Infof("Catalog '%s' loaded: %d priority, %d base items, policy %s", loaded.Name, len(loaded.Priority), len(loaded.Base), loaded.Policy)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = catalogManager.Watch(ctx); err != nil {
		logger.Warnf("Cannot watch catalog sources: %s", err)
	}

	// periodic rescan covers changes missed by the watcher
	task := schedule.Task{
		Group: catalogRefreshGroup,
		Fn: schedule.GetPeriodicWrapper(
			logger.Fields(map[string]interface{}{
				"op":      "catalogRefresh",
				"catalog": cfg.Gallery.Name,
			}),
			cfg.Gallery.RefreshPeriod(),
			refresh,
		),
	}
	sched.Add(task.After(cfg.Gallery.RefreshPeriod()).WithTimeout(refreshTimeout))

	server := web.NewServer(web.Settings{
		Builds:     builds.NewService(builds.Settings{Catalog: catalogManager}),
		Catalog:    catalogManager,
		Media:      dirManager,
		Title:      cfg.Gallery.Title,
		EagerTiles: cfg.Gallery.EagerTiles,
	})

	service.Init(
		micro.AfterStart(func() error {
			server.ListenAndServe(fmt.Sprintf("%s:%d", cfg.Http.Host, cfg.Http.Port))
			return nil
		}),
		micro.BeforeStop(func() error {
			cancel()
			sched.Cancel(catalogRefreshGroup)
			sched.Stop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			return server.Shutdown(shutdownCtx)
		}),
	)

	if err = service.Run(); err != nil {
		logger.Fatalf("Run service failed: %s", err)
	}
}

