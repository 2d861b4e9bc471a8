package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// SeedEntries inserts n archived entries for author with created_at one
// minute apart, oldest first. Returns them in insertion order.
func SeedEntries(t *testing.T, pool *pgxpool.Pool, author domain.Author, n int) []domain.FeedbackEntry {
	t.Helper()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	out := make([]domain.FeedbackEntry, 0, n)

	for i := range n {
		e := domain.NewFeedbackEntry(
			"Test User",
			"Acme",
			fmt.Sprintf("feedback %d", i+1),
			author,
			base.Add(time.Duration(i)*time.Minute),
		)

		_, err := pool.Exec(ctx,
			`INSERT INTO feedback_entries
			   (id, declared_name, company_info, feedback_text, created_at, author_display_name, author_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.DeclaredName, e.CompanyInfo, e.FeedbackText, e.CreatedAt, e.AuthorDisplayName, int64(e.AuthorID),
		)
		if err != nil {
			t.Fatalf("SeedEntries: insert: %v", err)
		}
		out = append(out, e)
	}

	return out
}

// CountEntries returns how many archived rows belong to author.
func CountEntries(t *testing.T, pool *pgxpool.Pool, authorID domain.UserID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM feedback_entries WHERE author_id = $1`, int64(authorID),
	).Scan(&n)
	if err != nil {
		t.Fatalf("CountEntries: %v", err)
	}
	return n
}
