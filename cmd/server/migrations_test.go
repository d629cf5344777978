package main

import (
	"context"
	"testing"

	"github.com/phrazzld/athlete-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMigrations(t *testing.T) {
	cfg := testdb.Config(t)
	db := testdb.OpenWithConfig(t, cfg)
	ctx := context.Background()
	log := testdb.DiscardLogger()

	require.NoError(t, handleMigrations(ctx, cfg, db, "status", log))
	require.NoError(t, handleMigrations(ctx, cfg, db, "up", log))

	err := handleMigrations(ctx, cfg, db, "sideways", log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration sideways failed")
}

func TestNewApplication(t *testing.T) {
	cfg := testdb.Config(t)
	db := testdb.OpenWithConfig(t, cfg)

	app, err := newApplication(nil, testdb.DiscardLogger(), db)
	require.NoError(t, err)
	assert.NotNil(t, app.athleteService)
	assert.NotNil(t, app.categoryService)
	assert.NotNil(t, app.trainingCenterService)
	assert.NotNil(t, app.metrics)

	families, err := app.registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
