package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("telegram.poll_timeout must be >= 0 (got %d)", c.Telegram.PollTimeout)
	}

	ids, err := ParseAdminIDs(c.Admin.IDsRaw)
	if err != nil {
		return fmt.Errorf("admin.ids: %w", err)
	}
	c.Admin.IDs = ids

	if err := c.validateSink(); err != nil {
		return fmt.Errorf("sink: %w", err)
	}

	if c.Dispatch.Workers <= 0 {
		return fmt.Errorf("dispatch.workers must be > 0 (got %d)", c.Dispatch.Workers)
	}
	if c.Dispatch.QueueSize < 0 {
		return fmt.Errorf("dispatch.queue_size must be >= 0 (got %d)", c.Dispatch.QueueSize)
	}
	if !strings.Contains(c.Telegram.Endpoint, "%s") {
		return fmt.Errorf("telegram.endpoint must contain %%s placeholders")
	}

	return nil
}

func (c *Config) validateSink() error {
	switch c.Sink.Driver {
	case SinkSheets:
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("sheets.spreadsheet_id is required for the %q driver", SinkSheets)
		}
		if c.Sheets.SheetName == "" {
			return fmt.Errorf("sheets.sheet_name must not be empty")
		}
	case SinkPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %q driver", SinkPostgres)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", c.Sink.Driver, SinkSheets, SinkPostgres)
	}
	return nil
}

// ParseAdminIDs parses a comma-separated list of numeric user ids
// (e.g. "407808584,12345"). An empty string returns a nil slice.
func ParseAdminIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
