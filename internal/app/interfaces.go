package app

import (
	"context"

	"github.com/talkincode/catalog/config"
	"github.com/talkincode/catalog/internal/repository"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// RepositoryProvider provides catalog data access
type RepositoryProvider interface {
	Products() repository.ProductRepository
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider
	RepositoryProvider

	MigrateDB() error
	SeedDemoProducts(ctx context.Context) error
	Release()
}
