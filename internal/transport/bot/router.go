// Package bot routes platform-neutral updates to the conversation and
// admin services.
package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/surovp/tg-bot-feedback/internal/domain"
	"github.com/surovp/tg-bot-feedback/internal/service/admin"
)

// Command names.
const (
	CmdStart       = "start"
	CmdBan         = "ban"
	CmdUnban       = "unban"
	CmdBlacklist   = "blacklist"
	CmdMaintenance = "maintenance"
	CmdFlushQueue  = "flush_queue"
)

type dialog interface {
	Start(ctx context.Context, author domain.Author) error
	Handle(ctx context.Context, msg domain.Message) error
}

type adminCommands interface {
	Ban(ctx context.Context, upd domain.Update) error
	Unban(ctx context.Context, upd domain.Update) error
	ListBanned(ctx context.Context, upd domain.Update) error
	ToggleMaintenance(ctx context.Context, upd domain.Update) error
	FlushSessions(ctx context.Context, upd domain.Update) error
	UnbanCallback(ctx context.Context, upd domain.Update) error
}

// Router dispatches an update to the service that owns it.
type Router struct {
	log    *slog.Logger
	dialog dialog
	admin  adminCommands

	commands map[string]func(context.Context, domain.Update) error
}

// NewRouter creates a Router.
func NewRouter(log *slog.Logger, d dialog, a adminCommands) *Router {
	r := &Router{
		log:    log.With("component", "router"),
		dialog: d,
		admin:  a,
	}
	r.commands = map[string]func(context.Context, domain.Update) error{
		CmdStart: func(ctx context.Context, upd domain.Update) error {
			return r.dialog.Start(ctx, upd.Author)
		},
		CmdBan:         a.Ban,
		CmdUnban:       a.Unban,
		CmdBlacklist:   a.ListBanned,
		CmdMaintenance: a.ToggleMaintenance,
		CmdFlushQueue:  a.FlushSessions,
	}
	return r
}

// Handle routes upd. Unknown commands are treated as dialog text; unknown
// callbacks are dropped.
func (r *Router) Handle(ctx context.Context, upd domain.Update) error {
	switch upd.Kind {
	case domain.UpdateKindCommand:
		if cmd, ok := r.commands[upd.Command]; ok {
			return cmd(ctx, upd)
		}
	case domain.UpdateKindCallback:
		if strings.HasPrefix(upd.CallbackData, admin.UnbanCallbackPrefix) {
			return r.admin.UnbanCallback(ctx, upd)
		}
		r.log.DebugContext(ctx, "unknown callback",
			slog.String("data", upd.CallbackData),
			slog.String("user_id", upd.Author.ID.String()),
		)
		return nil
	}

	return r.dialog.Handle(ctx, domain.NewMessage(upd.Author, upd.Text))
}
