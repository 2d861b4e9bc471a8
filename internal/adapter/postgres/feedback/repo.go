// Package feedback archives confirmed feedback batches in PostgreSQL.
package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/surovp/tg-bot-feedback/internal/adapter/postgres"
	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Name identifies this sink in errors, logs and health output.
const Name = "postgres"

const table = "feedback_entries"

var insertColumns = []string{
	"id", "declared_name", "company_info", "feedback_text",
	"created_at", "author_display_name", "author_id",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo is a batch sink backed by the feedback_entries table.
type Repo struct {
	pool *pgxpool.Pool
	tx   txManager
	log  *slog.Logger
}

// New creates a feedback archive repository.
func New(pool *pgxpool.Pool, tx txManager, log *slog.Logger) *Repo {
	return &Repo{pool: pool, tx: tx, log: log.With("sink", Name)}
}

// Submit inserts the whole batch in one transaction. Rows whose id is already
// archived are skipped, so resubmitting a batch after an ambiguous failure
// does not duplicate it.
func (r *Repo) Submit(ctx context.Context, entries []domain.FeedbackEntry) error {
	if len(entries) == 0 {
		return nil
	}

	insert := psql.Insert(table).Columns(insertColumns...)
	for _, e := range entries {
		insert = insert.Values(
			e.ID, e.DeclaredName, e.CompanyInfo, e.FeedbackText,
			e.CreatedAt, e.AuthorDisplayName, int64(e.AuthorID),
		)
	}
	insert = insert.Suffix("ON CONFLICT (id) DO NOTHING")

	query, args, err := insert.ToSql()
	if err != nil {
		return &domain.SinkError{Sink: Name, Count: len(entries), Err: fmt.Errorf("build insert: %w", err)}
	}

	var inserted int64
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "feedback_batch", entries[0].AuthorID)
		}
		inserted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return &domain.SinkError{Sink: Name, Count: len(entries), Err: err}
	}

	r.log.InfoContext(ctx, "rows archived",
		slog.Int("count", len(entries)),
		slog.Int64("inserted", inserted),
	)
	return nil
}

// ListByAuthor returns the archived entries of one author, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID domain.UserID, limit int) ([]domain.FeedbackEntry, error) {
	query, args, err := psql.
		Select(insertColumns...).
		From(table).
		Where(squirrel.Eq{"author_id": int64(authorID)}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("feedback.ListByAuthor: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feedback_author", authorID)
	}
	defer rows.Close()

	var out []domain.FeedbackEntry
	for rows.Next() {
		var (
			e      domain.FeedbackEntry
			author int64
		)
		if err := rows.Scan(
			&e.ID, &e.DeclaredName, &e.CompanyInfo, &e.FeedbackText,
			&e.CreatedAt, &e.AuthorDisplayName, &author,
		); err != nil {
			return nil, fmt.Errorf("feedback.ListByAuthor: scan: %w", err)
		}
		e.AuthorID = domain.UserID(author)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feedback_author", authorID)
	}
	return out, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("feedback.Ping: %w", err)
	}
	return nil
}
