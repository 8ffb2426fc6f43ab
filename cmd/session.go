package cmd

import (
	"context"
	"errors"
	"fmt"

	"grail-tracker/core/api"
	"grail-tracker/core/config"
	"grail-tracker/core/database"
	"grail-tracker/core/logger"
	"grail-tracker/core/storage"
	"grail-tracker/feature/catalog"
	"grail-tracker/feature/grail"
	"grail-tracker/feature/grail/formats"
	"grail-tracker/feature/progress"
	"grail-tracker/feature/progress/remote"
	"grail-tracker/feature/useritems"

	"go.uber.org/zap"
)

// grailLocal makes the grail commands use the database and bucket directly
// instead of a running server.
var grailLocal bool

// session is one hydrated grail service. Close must be called so debounced
// writes reach the remote.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	coord   *progress.Coordinator
	service *grail.Service
}

func (s *session) Close() error {
	err := s.coord.Close()
	_ = s.logger.Sync()
	return err
}

// openSession builds the grail service for the configured user and loads
// their progress. withStorage attaches the bucket for export uploads.
func openSession(ctx context.Context, withStorage bool) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Client.UserID == "" {
		return nil, errors.New("client.user_id is required (set CLIENT_USER_ID)")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var (
		source catalog.Source
		rem    progress.Remote
		store  storage.Client
	)

	if grailLocal || withStorage {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	if grailLocal {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		items := useritems.NewService(db, logg)
		if err := items.Migrate(); err != nil {
			return nil, err
		}
		source = catalog.NewService(store, cfg.Storage.Bucket, 0, logg)
		rem = useritems.NewUserRemote(items, cfg.Client.UserID)
		logg.Debug("Using local database and bucket", zap.String("driver", cfg.Database.Driver))
	} else {
		client := api.NewClient(cfg.Client)
		source = catalog.NewFetcher(client)
		rem = remote.NewClient(client)
		logg.Debug("Using grail-tracker server", zap.String("base_url", cfg.Client.BaseURL))
	}

	coord := progress.NewCoordinator(rem, cfg.Sync, logg)
	if err := coord.Hydrate(ctx); err != nil {
		return nil, err
	}

	var opts []grail.Option
	if store != nil {
		opts = append(opts, grail.WithStorage(store, cfg.Storage.Bucket, cfg.Storage.ExportPrefix))
	}
	svc := grail.NewService(source, coord, formats.NewRegistry(logg), logg, opts...)

	return &session{cfg: cfg, logger: logg, coord: coord, service: svc}, nil
}
