package database

import (
	"context"
	"testing"

	"github.com/sangkips/temple-billing/internal/config"
	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openSQLite(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{Driver: "sqlite", SQLitePath: "file:" + t.Name() + "?mode=memory&cache=shared", LogLevel: "silent"}
}

func TestOpenMigrateAndSeed(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: t.TempDir() + "/temple.db", LogLevel: "silent"}
	log := zap.NewNop()

	db, err := Open(cfg, log)
	require.NoError(t, err)
	require.NoError(t, Migrate(db, cfg.Driver, log))

	admin := config.AdminConfig{Username: "admin", Password: "s3cret"}
	require.NoError(t, SeedAdmin(context.Background(), db, admin, log))
	require.NoError(t, SeedAdmin(context.Background(), db, admin, log))

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsAdmin())
	assert.True(t, utils.CheckPasswordHash("s3cret", users[0].Password))

	for _, model := range Models() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	cfg := openSQLite(t)
	db, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, SeedAdmin(context.Background(), db, config.AdminConfig{}, zap.NewNop()))

	var count int64
	db.Model(&entity.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
