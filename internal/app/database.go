package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/catalog/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultPostgresIdleConns = 5

// idleConns returns the idle pool size. Without an explicit value sqlite
// keeps no idle connections, so every request works on its own
// connection, while postgres keeps a small warm pool.
func idleConns(dbcfg config.DBConfig) int {
	if dbcfg.IdleConn > 0 {
		return dbcfg.IdleConn
	}
	if dbcfg.Type == "postgres" {
		return defaultPostgresIdleConns
	}
	return 0
}

// getDatabase opens the configured database.
func getDatabase(cfg *config.AppConfig) (*gorm.DB, error) {
	dbcfg := cfg.Database
	var dialector gorm.Dialector
	switch dbcfg.Type {
	case "sqlite":
		dbfile := cfg.GetDatabasePath()
		if dir := filepath.Dir(dbfile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "create database dir %s", dir)
			}
		}
		dialector = sqlite.Open(dbfile)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			dbcfg.Host, dbcfg.Port, dbcfg.User, dbcfg.Passwd, dbcfg.Name)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbcfg.Type)
	}

	logLevel := logger.Silent
	if dbcfg.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", dbcfg.Type)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if dbcfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(dbcfg.MaxConn)
	}
	sqlDB.SetMaxIdleConns(idleConns(dbcfg))
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}
