package postgres_test

import (
	"context"
	"testing"

	"travelog/config"
	"travelog/infras/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceDemoMode(t *testing.T) {
	t.Helper()

	for _, envVar := range []string{
		"DATABASE_URL", "POSTGRES_URL", "POSTGRES_PRISMA_URL",
		"POSTGRES_URL_NON_POOLING", "DATABASE_URL_UNPOOLED",
		"PGHOST", "PGUSER", "PGPASSWORD", "PGDATABASE",
	} {
		t.Setenv(envVar, "")
	}
}

func TestConnection_DemoMode(t *testing.T) {
	forceDemoMode(t)

	conn := postgres.New(&config.Config{})
	require.NotNil(t, conn)
	assert.Nil(t, conn.Read)
	assert.Nil(t, conn.Write)

	// No backend exists, so connectivity always reports false.
	assert.False(t, conn.TestConnection(context.Background()))
	assert.False(t, (&postgres.Connection{}).TestConnection(context.Background()))
}
