package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"travelog/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	databaseURL := cfg.DatabaseURL()
	if databaseURL == "" {
		return nil, errors.New("no database configured, migrations do not apply in demo mode")
	}

	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing database URL: %w", err)
	}

	query := parsed.Query()
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	parsed.RawQuery = query.Encode()

	mig, err := migrate.New("file://migrations/postgres", parsed.String())
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Up(cfg *config.Config) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed successfully")

	return nil
}

func Down(cfg *config.Config) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error rolling back migrations: %w", err)
	}

	log.Info().Msg("Database migrations rolled back successfully")

	return nil
}

func StepUp(cfg *config.Config) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed successfully")

	return nil
}

func Drop(cfg *config.Config) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error dropping migrations: %w", err)
	}

	log.Info().Msg("Database schema dropped successfully")

	return nil
}
