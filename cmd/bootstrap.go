package cmd

import (
	"context"
	"fmt"

	"layout-catalog/core/config"
	"layout-catalog/core/database"
	"layout-catalog/core/logger"
	"layout-catalog/core/remote"
	"layout-catalog/core/storage"
	"layout-catalog/feature/layouts"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the wired layout service and the resources behind it.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	storage storage.Client // nil unless archiving is enabled
	service *layouts.Service
}

// bootstrap loads configuration and wires the layout pipeline.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to layout database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	store := layouts.NewStore(db)
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, err
	}

	var archive *layouts.Archive
	var client storage.Client
	if cfg.Layouts.ArchiveEnabled {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		archive = layouts.NewArchive(client, cfg.Storage.Bucket, cfg.Layouts.ArchivePrefix, l)
		if err := archive.EnsureBucket(ctx); err != nil {
			store.Close()
			return nil, err
		}
	}

	fetcher := layouts.NewFetcher(
		remote.NewFactory(cfg.Remote, nil),
		layouts.ParamBuilder{Scale: cfg.Layouts.Scale},
		l,
	)

	svc := layouts.NewService(
		fetcher,
		layouts.NewReconciler(store, l),
		layouts.NewFeed(store, l),
		store,
		archive,
		l,
	)

	return &runtime{cfg: cfg, log: l, db: db, storage: client, service: svc}, nil
}

// Close releases the service, the database and flushes the logger.
func (r *runtime) Close() {
	r.service.Close()
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.log.Sync()
}
