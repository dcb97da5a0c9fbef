// Package testdb hands tests a migrated in-memory SQLite database opened
// the same way the server opens its own.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PeteShepley/simple-point-of-sale/configs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var nameCleaner = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New returns a fresh database private to t, closed on cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := &configs.Config{
		Environment: configs.EnvProduction,
		DBDriver:    configs.DriverSQLite,
		DBSource:    fmt.Sprintf("file:%s?mode=memory&cache=shared", nameCleaner.Replace(t.Name())),
	}
	db, err := configs.ConnectionDB(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
