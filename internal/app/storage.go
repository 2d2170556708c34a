package app

import (
	"context"
	"fmt"

	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	lite "pet-adoption/internal/adapters/storage/sqlite"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/migrations"
)

// BuildPetRepository arma el repo según storage.driver. El cleanup cierra la
// conexión (no-op para memory).
func BuildPetRepository(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (pets.Repository, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := Migrate(cfg); err != nil {
				return nil, noop, err
			}
		}
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		log.Info("pet repository configured", map[string]any{"driver": cfg.Driver})
		return pg.NewPetsRepo(db), func() { _ = db.Close() }, nil

	case config.DriverSQLite:
		if cfg.AutoMigrate {
			if err := Migrate(cfg); err != nil {
				return nil, noop, err
			}
		}
		db, err := lite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info("pet repository configured", map[string]any{
			"driver": cfg.Driver,
			"path":   cfg.SQLitePath,
		})
		return lite.NewPetsRepo(db), func() { _ = db.Close() }, nil

	default:
		log.Info("pet repository configured", map[string]any{"driver": config.DriverMemory})
		return mem.NewPetRepo(), noop, nil
	}
}

// Migrate aplica las migraciones del backend SQL configurado.
func Migrate(cfg config.StorageConfig) error {
	var (
		url string
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		url, err = migrations.PostgresURL(cfg.DSN)
		if err != nil {
			return err
		}
	case config.DriverSQLite:
		// crea el directorio si hace falta antes de que migrate abra el archivo
		db, err := lite.Open(context.Background(), cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		_ = db.Close()
		url = migrations.SQLiteURL(cfg.SQLitePath)
	default:
		return fmt.Errorf("driver %q has no migrations", cfg.Driver)
	}

	return migrations.Up(url)
}

// BuildStore carga el store de mascotas sobre el repo configurado.
func BuildStore(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (*pets.Store, func(), error) {
	repo, cleanup, err := BuildPetRepository(ctx, cfg, log)
	if err != nil {
		return nil, cleanup, err
	}

	store, err := pets.NewStore(ctx, repo, pets.WithLogger(log.With(map[string]any{"component": "pets.store"})))
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return store, cleanup, nil
}
