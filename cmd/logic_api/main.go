// Package main Logicka API
// @title Logicka API
// @version 1.0
// @description Propositional logic engine: truth tables, variable extraction, simplification and satisfiability
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/logicka/docs"
	"github.com/DjordjeVuckovic/logicka/internal/engine"
	"github.com/DjordjeVuckovic/logicka/internal/router"
	"github.com/DjordjeVuckovic/logicka/internal/server"
	pkgserver "github.com/DjordjeVuckovic/logicka/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	eng := engine.New(
		engine.WithMaxFreeVariables(cfg.MaxFreeVariables),
		engine.WithLogger(slog.Default().With("component", "engine")),
	)

	healthChecker := pkgserver.NewSelfCheckHealthChecker("engine", eng)

	s := server.New(cfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Logicka API is running")
	})

	router.NewExpressionRouter(s.Echo, eng).Bind()

	if err := eng.SelfCheck(s.Context()); err != nil {
		slog.Error("Engine self-check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Expression engine ready", "max_free_variables", eng.MaxFreeVariables())

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
