package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// ConnectionDB opens the configured store. gorm errors are translated so a
// unique index hit comes back as gorm.ErrDuplicatedKey on every driver.
func ConnectionDB(cfg *Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Warn
	if !cfg.IsProduction() {
		level = logger.Info
	}
	gormLog := log.With().Str("component", "gorm").Logger()
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(&gormLog, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if cfg.DBDriver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer at a time; transactions serialize instead of failing with SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		dsn, err := sqliteDSN(cfg.DBSource)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(cfg.DBSource), nil
	case DriverMySQL:
		return mysql.Open(cfg.DBSource), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// sqliteDSN makes sure the file's directory exists and adds a busy timeout
// unless the caller already passed query options.
func sqliteDSN(path string) (string, error) {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create db dir: %w", err)
		}
	}
	if strings.Contains(path, "?") {
		return path, nil
	}
	return path + "?_busy_timeout=5000", nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(entity.All()...)
}
