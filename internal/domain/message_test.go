package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIsStartCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"/start", true},
		{"/start@feedback_bot", true},
		{"/start deep-link", true},
		{"  /start", true},
		{"/started", false},
		{"/ban 5", false},
		{"start", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			if got := IsStartCommand(tt.text); got != tt.want {
				t.Errorf("IsStartCommand(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWithActions_OneButtonPerAction(t *testing.T) {
	t.Parallel()

	msg := WithActions("menu", "pick", ActionNewFeedback, ActionBack)

	if msg.Keyboard.Kind != KeyboardReply {
		t.Fatalf("kind: got %q, want %q", msg.Keyboard.Kind, KeyboardReply)
	}
	if len(msg.Keyboard.Buttons) != 2 {
		t.Fatalf("buttons: got %d, want 2", len(msg.Keyboard.Buttons))
	}
	if msg.Keyboard.Buttons[0].Label != "New Feedback" || msg.Keyboard.Buttons[1].Label != "Back" {
		t.Errorf("unexpected labels: %+v", msg.Keyboard.Buttons)
	}
	if msg.Keyboard.Placeholder != "pick" {
		t.Errorf("placeholder: got %q", msg.Keyboard.Placeholder)
	}
}

func TestNewFeedbackEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewFeedbackEntry("Ivan Petrov", "Acme Corp", "Great event", Author{ID: 7, DisplayName: "Ivan"}, now)

	if e.ID == uuid.Nil {
		t.Error("entry id should be set")
	}
	if e.AuthorID != 7 || e.AuthorDisplayName != "Ivan" {
		t.Errorf("author: got %d/%q", e.AuthorID, e.AuthorDisplayName)
	}
	if !e.CreatedAt.Equal(now) {
		t.Errorf("created_at: got %v, want %v", e.CreatedAt, now)
	}
}

func TestParseUserID(t *testing.T) {
	t.Parallel()

	id, err := ParseUserID("407808584")
	if err != nil || id != 407808584 {
		t.Fatalf("ParseUserID: got %d, %v", id, err)
	}
	if _, err := ParseUserID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
