// Package sheets appends confirmed feedback batches to a Google Sheets
// worksheet.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/surovp/tg-bot-feedback/internal/config"
	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Name identifies this sink in errors, logs and health output.
const Name = "sheets"

// timestampLayout is how created_at is written; USER_ENTERED makes Sheets
// parse it as a date.
const timestampLayout = "2006-01-02 15:04:05"

// Sink writes one row per feedback entry:
// name, company, feedback, timestamp, author display name, author id.
type Sink struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	log           *slog.Logger
}

// New creates a Sink authenticated with the service account key in
// cfg.CredentialsFile.
func New(ctx context.Context, cfg config.SheetsConfig, log *slog.Logger) (*Sink, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	return newSink(ctx, cfg, log, opts...)
}

func newSink(ctx context.Context, cfg config.SheetsConfig, log *slog.Logger, opts ...option.ClientOption) (*Sink, error) {
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets.New: %w", err)
	}
	return &Sink{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		log:           log.With("sink", Name),
	}, nil
}

// Submit appends entries in a single API call, so either all rows are
// written or none.
func (s *Sink) Submit(ctx context.Context, entries []domain.FeedbackEntry) error {
	if len(entries) == 0 {
		return nil
	}

	vr := &gsheets.ValueRange{Values: rows(entries)}
	resp, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.appendRange(), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &domain.SinkError{Sink: Name, Count: len(entries), Err: err}
	}

	attrs := []any{slog.Int("count", len(entries))}
	if resp.Updates != nil {
		attrs = append(attrs, slog.String("range", resp.Updates.UpdatedRange))
	}
	s.log.InfoContext(ctx, "rows appended", attrs...)
	return nil
}

// Ping checks that the spreadsheet is reachable with the configured
// credentials.
func (s *Sink) Ping(ctx context.Context) error {
	if _, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets.Ping: %w", err)
	}
	return nil
}

// appendRange covers columns A:F of the worksheet. The sheet name is
// quoted with embedded quotes doubled.
func (s *Sink) appendRange() string {
	return "'" + strings.ReplaceAll(s.sheetName, "'", "''") + "'!A:F"
}

func rows(entries []domain.FeedbackEntry) [][]interface{} {
	out := make([][]interface{}, len(entries))
	for i, e := range entries {
		out[i] = []interface{}{
			e.DeclaredName,
			e.CompanyInfo,
			e.FeedbackText,
			e.CreatedAt.Format(timestampLayout),
			e.AuthorDisplayName,
			e.AuthorID.String(),
		}
	}
	return out
}
