package telegram

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/surovp/tg-bot-feedback/internal/config"
)

// Connect creates a Bot API client and verifies the token with getMe.
// A failure here means the bot must not start.
func Connect(cfg config.TelegramConfig, log *slog.Logger) (*tgbotapi.BotAPI, error) {
	// Long polling holds requests open for PollTimeout seconds.
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.PollTimeout)*time.Second + 30*time.Second,
	}

	if err := tgbotapi.SetLogger(botLogger{log: log.With("component", "tgbotapi")}); err != nil {
		return nil, fmt.Errorf("telegram.Connect: set logger: %w", err)
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, cfg.Endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("telegram.Connect: %w", err)
	}
	api.Debug = cfg.Debug

	log.Info("telegram connected", slog.String("bot", api.Self.UserName))
	return api, nil
}

// botLogger routes library log output into slog.
type botLogger struct {
	log *slog.Logger
}

func (l botLogger) Println(v ...interface{}) {
	l.log.Debug(fmt.Sprint(v...))
}

func (l botLogger) Printf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
