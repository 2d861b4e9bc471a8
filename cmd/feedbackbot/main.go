// Command feedbackbot runs the Telegram feedback collection bot.
//
// Configuration comes from CONFIG_PATH (YAML) or the environment. A .env file
// in the working directory, if present, is loaded into the environment first.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/surovp/tg-bot-feedback/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("load .env", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
