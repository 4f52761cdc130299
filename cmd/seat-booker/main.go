package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seatBooker/internal/booking"
	"seatBooker/internal/config"
	"seatBooker/internal/http-server/handlers/booking/bookedSeats"
	"seatBooker/internal/http-server/handlers/booking/clearSheet"
	"seatBooker/internal/http-server/handlers/booking/submit"
	"seatBooker/internal/http-server/handlers/form"
	"seatBooker/internal/http-server/handlers/health"
	"seatBooker/internal/http-server/handlers/qr"
	"seatBooker/internal/http-server/middleware/mwlogger"
	"seatBooker/internal/http-server/middleware/ratelimit"
	"seatBooker/internal/lib/logger/handlers/slogpretty"
	"seatBooker/internal/lib/logger/sl"
	"seatBooker/internal/models"
	"seatBooker/internal/notifier/whatsapp"
	"seatBooker/internal/storage/postgres"
	rediscache "seatBooker/internal/storage/redis"
	"seatBooker/internal/storage/sheets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

type ledger interface {
	AppendBooking(ctx context.Context, row models.BookingRow, ts time.Time) error
	OccupiedSeats(ctx context.Context) ([]int, error)
	ClearAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting seat booker",
		slog.String("env", cfg.Env),
		slog.String("ledger", cfg.LedgerBackend),
	)
	log.Debug("Debug messages are enabled")

	store, err := openLedger(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	pingLedger(log, store)

	notifier := whatsapp.New(log, cfg.Twilio)
	if !cfg.Twilio.Configured() {
		log.Warn("twilio credentials or content sid missing, notifications disabled")
	}

	limit := setupRateLimit(log, cfg)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Get("/", form.New(log, booking.MaxSeat))
	router.With(limit("submit")).Post("/submit", submit.New(log, store, notifier, cfg.EventTime))
	router.Get("/booked-seats", bookedSeats.New(log, store))
	router.Get("/qr", qr.New(log, cfg.BaseURL))
	router.With(limit("clear")).Post("/clear-sheet", clearSheet.New(log, store, cfg.ClearToken))
	router.Get("/health", health.New())
	router.Head("/health", health.New())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close ledger", sl.Err(err))
	}

	log.Info("ledger closed")
}

func openLedger(cfg *config.Config) (ledger, error) {
	switch cfg.LedgerBackend {
	case config.BackendPostgres:
		return postgres.InitDB(&cfg.Database)
	case config.BackendSheets:
		return sheets.New(cfg.Sheet), nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}

// pingLedger only reports. An unreachable ledger is retried on each request.
func pingLedger(log *slog.Logger, store ledger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		log.Warn("ledger unavailable at startup", sl.Err(err))
		return
	}

	log.Info("ledger ready")
}

// setupRateLimit returns a per-scope middleware factory. Without Redis every
// scope passes requests straight through.
func setupRateLimit(log *slog.Logger, cfg *config.Config) func(scope string) func(http.Handler) http.Handler {
	passThrough := func(string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler { return next }
	}

	if cfg.Redis.Addr == "" {
		log.Info("rate limiting disabled")
		return passThrough
	}

	rdb, err := rediscache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, rate limiting disabled", sl.Err(err))
		return passThrough
	}

	limiter := rediscache.NewSlidingWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	return func(scope string) func(http.Handler) http.Handler {
		return ratelimit.New(log, limiter, scope, cfg.RateLimit.TrustedProxies)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default: // prod
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
