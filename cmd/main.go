package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"storefront/internal/apiclient"
	"storefront/internal/config"
	httpapi "storefront/internal/http"
	"storefront/internal/repository"
	"storefront/internal/service"

	_ "storefront/docs"
)

//go:generate swag init -g main.go -d .,../internal/http,../internal/domain,../internal/state,../internal/service -o ../docs

// @title Storefront gateway API
// @version 1.0
// @description Session-scoped cart, checkout and back-office state over the KJM Sports shop API.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	logger := config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Debug:   cfg.APIDebug,
		Logger:  logger,
	})

	sessions := repository.NewMemorySessions(func() *service.Storefront {
		return service.NewStorefront(api, service.Options{
			Shipping: cfg.Shipping,
			Logger:   logger,
		})
	}, repository.WithIdleTTL(cfg.SessionIdleTTL), repository.WithMaxSessions(cfg.MaxSessions))

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go sessions.Run(sweepCtx, sweepInterval(cfg.SessionIdleTTL))

	srv := httpapi.NewServer(sessions, httpapi.Options{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr, "api", cfg.APIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down")
				err := httpServer.Shutdown(ctx)
				stopSweep()
				sessions.CloseAll()
				return err
			},
		},
	)

	exitCode := <-wait
	logger.Info("exited", "code", exitCode)
	os.Exit(exitCode)
}

func sweepInterval(ttl time.Duration) time.Duration {
	if d := ttl / 4; d > time.Second {
		return d
	}
	return time.Second
}
