package config

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CATALOG_"

// DBConfig Database config
type DBConfig struct {
	Type     string `yaml:"type"` // sqlite or postgres
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"` // database name, or the file path for sqlite
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

// SysConfig System config
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
	// Testing disables production safety checks (panic recovery) so faults
	// surface directly in automated tests.
	Testing bool `yaml:"testing"`
}

// WebConfig HTTP listener config
type WebConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CorsOrigins []string `yaml:"cors_origins"`
}

// LogConfig Logger config
type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system"`
	Web      WebConfig `yaml:"web"`
	Database DBConfig  `yaml:"database"`
	Logger   LogConfig `yaml:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// GetDatabasePath resolves the sqlite file path. Absolute paths and an
// empty workdir leave the name untouched.
func (c *AppConfig) GetDatabasePath() string {
	name := c.Database.Name
	if name == "" {
		name = DefaultDatabaseName
	}
	if filepath.IsAbs(name) || c.System.Workdir == "" {
		return name
	}
	return filepath.Join(c.System.Workdir, name)
}

const DefaultDatabaseName = "app.db"

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Catalog",
		Location: "Local",
		Workdir:  "",
		Debug:    false,
		Testing:  false,
	},
	Web: WebConfig{
		Host:        "0.0.0.0",
		Port:        5000,
		CorsOrigins: []string{"*"},
	},
	Database: DBConfig{
		Type:     "sqlite",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     DefaultDatabaseName,
		User:     "postgres",
		Passwd:   "",
		MaxConn:  10,
		IdleConn: 0,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "catalog.log",
	},
}

// LoadConfig reads the YAML file at cfile on top of the defaults, then
// applies CATALOG_* environment overrides. A missing file is not an error.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := copyDefaults()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", cfile)
			}
		case !os.IsNotExist(err):
			return nil, errors.Wrapf(err, "read config %s", cfile)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func copyDefaults() *AppConfig {
	cfg := *DefaultAppConfig
	cfg.Web.CorsOrigins = append([]string(nil), DefaultAppConfig.Web.CorsOrigins...)
	return &cfg
}

func applyEnv(cfg *AppConfig) {
	setEnvString(&cfg.System.Workdir, "WORKDIR")
	setEnvString(&cfg.System.Location, "LOCATION")
	setEnvBool(&cfg.System.Debug, "DEBUG")
	setEnvBool(&cfg.System.Testing, "TESTING")

	setEnvString(&cfg.Web.Host, "WEB_HOST")
	setEnvInt(&cfg.Web.Port, "WEB_PORT")
	if v := os.Getenv(envPrefix + "WEB_CORS_ORIGINS"); v != "" {
		cfg.Web.CorsOrigins = strings.Split(v, ",")
	}

	setEnvString(&cfg.Database.Type, "DB_TYPE")
	setEnvString(&cfg.Database.Host, "DB_HOST")
	setEnvInt(&cfg.Database.Port, "DB_PORT")
	setEnvString(&cfg.Database.Name, "DB_NAME")
	setEnvString(&cfg.Database.User, "DB_USER")
	setEnvString(&cfg.Database.Passwd, "DB_PASSWD")
	setEnvInt(&cfg.Database.MaxConn, "DB_MAX_CONN")
	setEnvInt(&cfg.Database.IdleConn, "DB_IDLE_CONN")
	setEnvBool(&cfg.Database.Debug, "DB_DEBUG")

	setEnvString(&cfg.Logger.Mode, "LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "LOGGER_FILENAME")
}

func setEnvString(p *string, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*p = v
	}
}

func setEnvInt(p *int, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			*p = n
		}
	}
}

func setEnvBool(p *bool, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			*p = b
		}
	}
}
