package config

import (
	"slices"
	"time"
)

// Sink drivers.
const (
	SinkSheets   = "sheets"
	SinkPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Admin    AdminConfig    `yaml:"admin"`
	Sink     SinkConfig     `yaml:"sink"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Database DatabaseConfig `yaml:"database"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Ops      OpsConfig      `yaml:"ops"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds Bot API settings.
type TelegramConfig struct {
	Token       string `yaml:"token"        env:"BOT_TOKEN"             env-required:"true"`
	PollTimeout int    `yaml:"poll_timeout" env:"TELEGRAM_POLL_TIMEOUT" env-default:"60"`
	Debug       bool   `yaml:"debug"        env:"TELEGRAM_DEBUG"        env-default:"false"`
	// Endpoint is the Bot API URL template with %s for token and method.
	Endpoint string `yaml:"endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
}

// AdminConfig holds the static admin id set.
type AdminConfig struct {
	IDsRaw string `yaml:"ids" env:"ADMIN_IDS"`

	// IDs is parsed from IDsRaw during validation.
	IDs []int64 `yaml:"-" env:"-"`
}

// IsAdmin reports whether id is in the configured admin set.
func (c AdminConfig) IsAdmin(id int64) bool {
	return slices.Contains(c.IDs, id)
}

// SinkConfig selects where confirmed batches are written.
type SinkConfig struct {
	Driver string `yaml:"driver" env:"SINK_DRIVER" env-default:"sheets"`
}

// SheetsConfig holds Google Sheets settings.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"   env:"GOOGLE_SHEET_ID"`
	SheetName       string `yaml:"sheet_name"       env:"GOOGLE_SHEET_NAME"       env-default:"Feedback"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE" env-default:"credentials.json"`
	// Endpoint overrides the API base URL (tests, proxies).
	Endpoint string `yaml:"endpoint" env:"GOOGLE_SHEETS_ENDPOINT"`
}

// DatabaseConfig holds PostgreSQL settings for the archive sink.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// DispatchConfig controls how updates are spread over workers.
type DispatchConfig struct {
	Workers   int `yaml:"workers"    env:"DISPATCH_WORKERS"    env-default:"8"`
	QueueSize int `yaml:"queue_size" env:"DISPATCH_QUEUE_SIZE" env-default:"64"`
}

// OpsConfig holds the health/metrics HTTP server settings.
type OpsConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"OPS_ENABLED"          env-default:"true"`
	Host            string        `yaml:"host"             env:"OPS_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"OPS_PORT"             env-default:"9090"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"OPS_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
