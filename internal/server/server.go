package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	mw "github.com/DjordjeVuckovic/logicka/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/logicka/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	BodyLimit               = "64K"
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	healthPath    string
	ctx           context.Context
	stop          context.CancelFunc
}

// New creates the echo instance. The server context is cancelled on
// SIGINT or SIGTERM.
func New(cfg *Config, hc pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: hc,
		ctx:           ctx,
		stop:          stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return s.healthPath != "" && c.Path() == s.healthPath
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	s.Echo.Use(middleware.BodyLimit(BodyLimit))
	s.Echo.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: s.cfg.RequestTimeout,
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

// SetupHealthChecks serves 200 while the health checker passes and 503
// otherwise. Health check requests are not access logged.
func (s *Server) SetupHealthChecks(path string) *Server {
	s.healthPath = path
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled once a shutdown signal arrives.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Start serves until a shutdown signal and then drains in-flight requests.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "env", s.cfg.Env)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	slog.Info("Shutting down server", "timeout", GracefulShutdownTimeout)
	return s.Echo.Shutdown(ctx)
}
