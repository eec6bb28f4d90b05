package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/talkincode/catalog/config"
	"go.uber.org/zap"
)

// Server wraps a configured echo instance. Routes are bound with GET and
// friends before Start is called.
type Server struct {
	root   *echo.Echo
	config *config.AppConfig
}

func NewServer(cfg *config.AppConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.System.Debug || cfg.System.Testing
	e.JSONSerializer = new(JSONSerializer)
	e.Logger.SetLevel(log.OFF)

	// Testing mode lets handler panics reach the caller.
	if !cfg.System.Testing {
		e.Use(middleware.Recover())
	}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Web.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("namespace", "http"),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				zap.L().Error("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			zap.L().Debug("request", fields...)
			return nil
		},
	}))

	return &Server{root: e, config: cfg}
}

// Echo exposes the underlying router, mainly for httptest.
func (s *Server) Echo() *echo.Echo {
	return s.root
}

func (s *Server) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return s.root.GET(path, h, m...)
}

func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Web.Host, s.config.Web.Port)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	zap.S().Infof("Catalog web server running at %s", s.Addr())
	err := s.root.Start(s.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}
