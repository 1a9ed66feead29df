package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buffcalc/internal/testutil"
)

func TestRunMigrations_UpToDateSchema(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	// SetupTestDB already migrated through the same runner; a second pass is a no-op.
	require.NoError(t, RunMigrations(ctx, pool.Config().ConnString()))

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'builds')`,
	).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunMigrations_BadDSN(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunMigrations(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
