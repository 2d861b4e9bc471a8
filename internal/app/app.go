package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/surovp/tg-bot-feedback/internal/adapter/postgres"
	"github.com/surovp/tg-bot-feedback/internal/adapter/postgres/feedback"
	"github.com/surovp/tg-bot-feedback/internal/adapter/sheets"
	"github.com/surovp/tg-bot-feedback/internal/config"
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"github.com/surovp/tg-bot-feedback/internal/metrics"
	"github.com/surovp/tg-bot-feedback/internal/service/access"
	"github.com/surovp/tg-bot-feedback/internal/service/admin"
	"github.com/surovp/tg-bot-feedback/internal/service/conversation"
	"github.com/surovp/tg-bot-feedback/internal/transport/bot"
	"github.com/surovp/tg-bot-feedback/internal/transport/middleware"
	"github.com/surovp/tg-bot-feedback/internal/transport/rest"
	"github.com/surovp/tg-bot-feedback/internal/transport/telegram"
	"github.com/surovp/tg-bot-feedback/migrations"
)

// archive is a batch sink that can also report its own health.
type archive interface {
	Submit(ctx context.Context, entries []domain.FeedbackEntry) error
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// the batch sink and the Bot API, and serves updates until SIGINT/SIGTERM.
// Updates already queued are answered before Run returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Telegram.Token)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("sink", cfg.Sink.Driver),
		slog.Int("admins", len(cfg.Admin.IDs)),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closeSink, err := newArchive(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	return serve(ctx, cfg, logger, sink)
}

// serve wires the bot around sink and blocks until ctx is done or a
// component fails.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, sink archive) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewRecorder(reg)

	api, err := telegram.Connect(cfg.Telegram, logger)
	if err != nil {
		return err
	}
	client := telegram.NewClient(api, logger)

	state := access.NewState()
	guard := access.NewGuard(state, adminIDs(cfg.Admin.IDs))
	store := conversation.NewStore()
	machine := conversation.NewMachine(logger, store, sink, client, rec)
	adminSvc := admin.NewService(logger, state, guard, store, client, rec)
	router := bot.NewRouter(logger, machine, adminSvc)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger, rec),
		middleware.Guard(logger, guard, client, rec),
	)(router.Handle)

	poller := telegram.NewPoller(api, logger, telegram.Handler(handler), telegram.PollerConfig{
		Timeout:   cfg.Telegram.PollTimeout,
		Workers:   cfg.Dispatch.Workers,
		QueueSize: cfg.Dispatch.QueueSize,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})

	if cfg.Ops.Enabled {
		health := rest.NewHealthHandler(BuildVersion(), rest.Check{Name: cfg.Sink.Driver, Pinger: sink})
		srv := &http.Server{
			Addr:              net.JoinHostPort(cfg.Ops.Host, strconv.Itoa(cfg.Ops.Port)),
			Handler:           rest.NewRouter(health, reg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("ops server listening", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Ops.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Info("application stopped", slog.Int("sessions", store.Len()))
	return err
}

// newArchive opens the configured batch sink. The returned func releases it.
func newArchive(ctx context.Context, cfg *config.Config, logger *slog.Logger) (archive, func(), error) {
	switch cfg.Sink.Driver {
	case config.SinkPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("app: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("app: %w", err)
			}
		}
		return feedback.New(pool, postgres.NewTxManager(pool), logger), pool.Close, nil
	default:
		sink, err := sheets.New(ctx, cfg.Sheets, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("app: %w", err)
		}
		return sink, func() {}, nil
	}
}

func adminIDs(ids []int64) []domain.UserID {
	out := make([]domain.UserID, len(ids))
	for i, id := range ids {
		out[i] = domain.UserID(id)
	}
	return out
}
