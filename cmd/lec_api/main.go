package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/little-english/internal/api/server"
	"github.com/DjordjeVuckovic/little-english/internal/router"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv(storage.InMem)
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	st, err := factory.NewRunStorer(context.Background(), *storageCfg)
	if err != nil {
		slog.Error("Failed to create run storer", "type", storageCfg.Type, "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, st.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Little English API is running")
	})

	router.NewCompileRouter(s.Echo, st.Storer).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	st.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
