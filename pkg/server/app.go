package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	domrepo "MarketLens/internal/domain/repository"
	"MarketLens/internal/service/session"
	"MarketLens/internal/usecase"
	"MarketLens/pkg/config"
	xhttp "MarketLens/pkg/http"
	applogger "MarketLens/pkg/logger"
)

// App encapsulates the gateway lifecycle: the HTTP server, the background
// anomaly watcher, and the infrastructure handles that need closing on the
// way down.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	watcher    *usecase.AnomalyWatcher
	sessions   session.Store
	publisher  domrepo.AlertPublisher
	httpServer *xhttp.Server
}

// New assembles the application from its wired dependencies. The publisher
// is nil when Kafka publishing is disabled.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	watcher *usecase.AnomalyWatcher,
	sessions session.Store,
	publisher domrepo.AlertPublisher,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		handler:   handler,
		watcher:   watcher,
		sessions:  sessions,
		publisher: publisher,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsLogging(a.log, 500*time.Millisecond),
	)

	go a.watcher.Run(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("gateway started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("upstream", a.cfg.Upstream.BaseURL))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("alert publisher close error", applogger.Error(err))
		}
	}

	if err := a.sessions.Close(); err != nil {
		a.log.Warn("session store close error", applogger.Error(err))
	}

	if collector := a.log.Collector(); collector != nil {
		collector.Close()
	}

	a.log.Info("shutdown complete")
	return nil
}
