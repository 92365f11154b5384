package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/handler/api"
	"SentiPulse/internal/handler/ws"
	"SentiPulse/internal/usecase"
	"SentiPulse/pkg/config"
	xhttp "SentiPulse/pkg/http"
	applogger "SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	handler    *api.MeterHandler
	hub        *ws.Hub
	refresher  *usecase.Refresher
	store      drepo.HistoryStore
	pub        drepo.Publisher
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, handler *api.MeterHandler, hub *ws.Hub,
	refresher *usecase.Refresher, store drepo.HistoryStore, pub drepo.Publisher,
	log *applogger.Logger) *App {
	return &App{
		cfg:       cfg,
		handler:   handler,
		hub:       hub,
		refresher: refresher,
		store:     store,
		pub:       pub,
		log:       log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)
	a.hub.RegisterRoutes(a.httpServer.Echo())

	if a.cfg.Refresh.Enabled {
		go a.refreshLoop(ctx)
		a.log.Info("background refresh started",
			applogger.Duration("interval", a.cfg.Refresh.Interval),
			applogger.Bool("market_hours_only", a.cfg.Refresh.MarketHoursOnly))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// refreshLoop runs the refresh cycle on a fixed interval, optionally
// only while the market is open.
func (a *App) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.Refresh.Interval)
	defer ticker.Stop()

	a.runRefresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.runRefresh(ctx)
		}
	}
}

func (a *App) runRefresh(ctx context.Context) {
	if a.cfg.Refresh.MarketHoursOnly && !util.InMarketHours(util.NowIST()) {
		return
	}
	result, err := a.refresher.Refresh(ctx)
	if err != nil {
		a.log.Error("scheduled refresh failed", applogger.Error(err))
		return
	}
	a.hub.Broadcast(result)
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}
	if err := a.hub.Close(); err != nil {
		a.log.Warn("websocket hub close error", applogger.Error(err))
	}
	if a.pub != nil {
		if err := a.pub.Close(); err != nil {
			a.log.Warn("publisher close error", applogger.Error(err))
		}
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn("history store close error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
