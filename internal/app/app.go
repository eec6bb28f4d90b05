package app

import (
	"context"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/talkincode/catalog/config"
	"github.com/talkincode/catalog/internal/domain"
	"github.com/talkincode/catalog/internal/repository"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	products  *repository.GormProductRepository
}

// Ensure Application implements all interfaces
var (
	_ DBProvider         = (*Application)(nil)
	_ ConfigProvider     = (*Application)(nil)
	_ RepositoryProvider = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// Products returns nil until the database has been opened.
func (a *Application) Products() repository.ProductRepository {
	if a.products == nil {
		return nil
	}
	return a.products
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
	a.products = repository.NewGormProductRepository(db)
}

// Init sets up logging and the database, then creates the schema. It must
// run once before the HTTP server accepts connections.
func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	zap.ReplaceGlobals(newLogger(cfg))

	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	db, err := getDatabase(cfg)
	if err != nil {
		return err
	}
	a.OverrideDB(db)
	zap.S().Infof("Database connection successful, type: %s", cfg.Database.Type)

	if err := a.MigrateDB(); err != nil {
		return err
	}
	return nil
}

// newLogger writes to stdout, JSON in production and console otherwise.
// With file output enabled a rotated JSON log is written as well.
func newLogger(cfg *config.AppConfig) *zap.Logger {
	production := cfg.Logger.Mode == "production"

	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	stdoutEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if production {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		stdoutEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.Lock(os.Stdout), level),
	}
	if cfg.Logger.FileEnable {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   logFilePath(cfg),
				MaxSize:    64,
				MaxBackups: 7,
				MaxAge:     7,
			}),
			level,
		))
	}

	opts := []zap.Option{zap.AddCaller()}
	if !production {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...)
}

// logFilePath places a relative log filename under the workdir logs dir.
func logFilePath(cfg *config.AppConfig) string {
	filename := cfg.Logger.Filename
	if cfg.System.Workdir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(cfg.GetLogDir(), filename)
}

// MigrateDB runs the idempotent schema statements. Existing rows are never
// touched.
func (a *Application) MigrateDB() error {
	for _, stmt := range domain.Schema {
		if err := a.gormDB.Exec(stmt).Error; err != nil {
			zap.L().Error("schema init failed", zap.Error(err))
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}

// SeedDemoProducts inserts a few demo products when the catalog is empty.
func (a *Application) SeedDemoProducts(ctx context.Context) error {
	return a.checkProducts(ctx)
}

// Release releases application resources
func (a *Application) Release() {
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = zap.L().Sync()
}
