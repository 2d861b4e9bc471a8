package telegram

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Handler processes one converted update.
type Handler func(ctx context.Context, upd domain.Update) error

// PollerConfig configures a Poller.
type PollerConfig struct {
	Timeout   int
	Workers   int
	QueueSize int
}

// Poller long-polls the Bot API and dispatches updates to a fixed pool of
// workers. Updates are sharded by user, so one user's updates are handled
// in arrival order while different users proceed in parallel.
type Poller struct {
	api     botAPI
	log     *slog.Logger
	handler Handler
	cfg     PollerConfig
}

// NewPoller creates a Poller. Workers below 1 are raised to 1.
func NewPoller(api botAPI, log *slog.Logger, handler Handler, cfg PollerConfig) *Poller {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Poller{
		api:     api,
		log:     log.With("component", "poller"),
		handler: handler,
		cfg:     cfg,
	}
}

// Run polls until ctx is done, then stops polling and waits for the
// workers to finish the updates already queued.
func (p *Poller) Run(ctx context.Context) error {
	uc := tgbotapi.NewUpdate(0)
	uc.Timeout = p.cfg.Timeout
	uc.AllowedUpdates = []string{"message", "callback_query"}
	updates := p.api.GetUpdatesChan(uc)

	// Handlers outlive ctx so queued updates are answered during shutdown.
	workCtx := context.WithoutCancel(ctx)

	queues := make([]chan domain.Update, p.cfg.Workers)
	var wg sync.WaitGroup
	for i := range queues {
		queues[i] = make(chan domain.Update, p.cfg.QueueSize)
		wg.Add(1)
		go func(q <-chan domain.Update) {
			defer wg.Done()
			for upd := range q {
				// Errors are logged by the middleware chain.
				_ = p.handler(workCtx, upd)
			}
		}(queues[i])
	}

	p.log.InfoContext(ctx, "polling started", slog.Int("workers", p.cfg.Workers))

	p.dispatch(ctx, updates, queues)

	p.api.StopReceivingUpdates()
	for _, q := range queues {
		close(q)
	}
	wg.Wait()

	p.log.InfoContext(workCtx, "polling stopped")
	return nil
}

func (p *Poller) dispatch(ctx context.Context, updates tgbotapi.UpdatesChannel, queues []chan domain.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			upd, ok := toUpdate(u)
			if !ok {
				p.log.DebugContext(ctx, "update skipped", slog.Int("update_id", u.UpdateID))
				continue
			}
			select {
			case queues[shard(upd.Author.ID, len(queues))] <- upd:
			case <-ctx.Done():
				return
			}
		}
	}
}

func shard(id domain.UserID, n int) int {
	return int(uint64(id) % uint64(n))
}
