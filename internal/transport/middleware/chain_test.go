package middleware

import (
	"context"
	"testing"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

func TestChain_Order(t *testing.T) {
	var order []string

	mw1 := func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) error {
			order = append(order, "mw1-before")
			err := next(ctx, upd)
			order = append(order, "mw1-after")
			return err
		}
	}

	mw2 := func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) error {
			order = append(order, "mw2-before")
			err := next(ctx, upd)
			order = append(order, "mw2-after")
			return err
		}
	}

	handler := func(ctx context.Context, upd domain.Update) error {
		order = append(order, "handler")
		return nil
	}

	chained := Chain(mw1, mw2)(handler)

	if err := chained(context.Background(), domain.Update{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"mw1-before", "mw2-before", "handler", "mw2-after", "mw1-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("order[%d] = %s, want %s", i, order[i], v)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	called := false

	handler := func(ctx context.Context, upd domain.Update) error {
		called = true
		return nil
	}

	chained := Chain()(handler)

	if err := chained(context.Background(), domain.Update{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
}
