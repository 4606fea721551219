// Package server wires the full application together: config, database,
// cache, log sinks, event listeners, middleware stack, and the HTTP
// listener with graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/routes"
	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/config"
	"github.com/trixtech/trixtech/pkg/cache"
	"github.com/trixtech/trixtech/pkg/database"
	"github.com/trixtech/trixtech/pkg/event"
	"github.com/trixtech/trixtech/pkg/logger"
	"github.com/trixtech/trixtech/pkg/metrics"
	"github.com/trixtech/trixtech/pkg/middleware"
	"github.com/trixtech/trixtech/pkg/reqid"
	"github.com/trixtech/trixtech/pkg/router"
)

// Start boots the platform and blocks until SIGINT/SIGTERM or a listener
// error.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.LogMongoURI(); uri != "" {
		if err := logger.EnableMongoSink(uri, "trixtech", "logs"); err != nil {
			logger.Warn("mongo log sink unavailable, using stdout only", "error", err.Error())
		}
	}
	defer logger.Shutdown()

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", "error", err.Error())
	}

	RegisterEventListeners()

	r := NewRouter()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// NewRouter assembles the middleware stack and mounts every route,
// including the Prometheus scrape endpoint.
func NewRouter() *router.Router {
	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(300, time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r, database.DB)
	return r
}

// RegisterEventListeners attaches the booking lifecycle log listeners.
// There is no external delivery; the listeners record what happened.
func RegisterEventListeners() {
	logBooking := func(msg string) event.Handler {
		return func(payload interface{}) {
			b, ok := payload.(models.Booking)
			if !ok {
				return
			}
			logger.Info(msg,
				"booking_id", b.ID,
				"user_id", b.UserID,
				"service_id", b.ServiceID,
				"status", b.Status,
				"total_price", b.TotalPrice,
			)
		}
	}

	event.Listen(services.EventBookingCreated, logBooking("booking created"))
	event.Listen(services.EventBookingApproved, logBooking("booking approved"))
	event.Listen(services.EventBookingCompleted, logBooking("booking completed"))
	event.Listen(services.EventBookingCancelled, logBooking("booking cancelled"))
	event.Listen(services.EventBookingDeleted, logBooking("booking deleted"))
}
