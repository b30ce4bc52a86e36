package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stuffSharing/internal/config"
	"stuffSharing/internal/http-server/handlers/booking/approveBooking"
	"stuffSharing/internal/http-server/handlers/booking/createBooking"
	"stuffSharing/internal/http-server/handlers/booking/getBooking"
	"stuffSharing/internal/http-server/handlers/booking/getOwnerBookings"
	"stuffSharing/internal/http-server/handlers/booking/getUserBookings"
	"stuffSharing/internal/http-server/handlers/item/createItem"
	"stuffSharing/internal/http-server/handlers/item/getItem"
	"stuffSharing/internal/http-server/handlers/item/getOwnerItems"
	"stuffSharing/internal/http-server/handlers/item/patchItem"
	"stuffSharing/internal/http-server/handlers/item/postComment"
	"stuffSharing/internal/http-server/handlers/item/searchItems"
	"stuffSharing/internal/http-server/handlers/user/createUser"
	"stuffSharing/internal/http-server/handlers/user/getUser"
	"stuffSharing/internal/http-server/handlers/user/getUsers"
	"stuffSharing/internal/http-server/handlers/user/patchUser"
	"stuffSharing/internal/http-server/middleware/mwlogger"
	"stuffSharing/internal/lib/logger/handlers/slogpretty"
	"stuffSharing/internal/lib/logger/sl"
	bookingsvc "stuffSharing/internal/service/booking"
	itemsvc "stuffSharing/internal/service/item"
	"stuffSharing/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting stuff sharing service", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	bookings := bookingsvc.New(storage, storage, storage, time.Now)
	items := itemsvc.New(storage, storage, storage, storage, time.Now)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/bookings", func(r chi.Router) {
		r.Post("/", createBooking.New(log, bookings))
		r.Get("/", getUserBookings.New(log, bookings))
		r.Get("/owner", getOwnerBookings.New(log, bookings))
		r.Get("/{bookingId}", getBooking.New(log, bookings))
		r.Patch("/{bookingId}", approveBooking.New(log, bookings))
	})

	router.Route("/items", func(r chi.Router) {
		r.Post("/", createItem.New(log, items))
		r.Get("/", getOwnerItems.New(log, items))
		r.Get("/search", searchItems.New(log, items))
		r.Get("/{itemId}", getItem.New(log, items))
		r.Patch("/{itemId}", patchItem.New(log, items))
		r.Post("/{itemId}/comment", postComment.New(log, items))
	})

	router.Route("/users", func(r chi.Router) {
		r.Post("/", createUser.New(log, storage))
		r.Get("/", getUsers.New(log, storage))
		r.Get("/{userId}", getUser.New(log, storage))
		r.Patch("/{userId}", patchUser.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
