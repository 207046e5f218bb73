package postgres

//nolint:revive
import (
	"context"
	"time"

	"travelog/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection carries the read and write handles. The service runs against a
// single connection string, so both point at the same pool; the split is kept
// so repositories stay oblivious to the topology.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects to Postgres using the prioritized connection string from the
// environment. In demo mode no connection is attempted and the returned
// Connection is empty; repositories select the in-memory backend instead.
func New(config *config.Config) *Connection {
	url := config.DatabaseURL()
	if url == "" {
		log.Warn().Msg("No database connection string found. Using demo mode.")

		return &Connection{}
	}

	db := connect(url, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)

	return &Connection{
		Read:  db,
		Write: db,
	}
}

func connect(url string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", url)
		if err == nil {
			log.Info().Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// TestConnection reports whether a trivial query succeeds. Demo mode always
// reports false since no backend exists.
func (c *Connection) TestConnection(ctx context.Context) bool {
	if c.Read == nil {
		return false
	}

	var one int
	if err := c.Read.GetContext(ctx, &one, "SELECT 1"); err != nil {
		log.Error().Err(err).Msg("Database connectivity check failed")

		return false
	}

	return true
}
