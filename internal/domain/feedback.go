package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UserID is the chat platform's numeric user identifier.
type UserID int64

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseUserID parses a decimal user id as typed in an admin command.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError("user_id", "must be a number")
	}
	return UserID(n), nil
}

// FeedbackEntry is one draft feedback record held in memory until the
// author confirms batch submission.
type FeedbackEntry struct {
	ID                uuid.UUID
	DeclaredName      string
	CompanyInfo       string
	FeedbackText      string
	CreatedAt         time.Time
	AuthorDisplayName string
	AuthorID          UserID
}

// NewFeedbackEntry builds an entry stamped with a fresh id.
func NewFeedbackEntry(declaredName, companyInfo, text string, author Author, now time.Time) FeedbackEntry {
	return FeedbackEntry{
		ID:                uuid.New(),
		DeclaredName:      declaredName,
		CompanyInfo:       companyInfo,
		FeedbackText:      text,
		CreatedAt:         now,
		AuthorDisplayName: author.DisplayName,
		AuthorID:          author.ID,
	}
}

// Author identifies the sender of an inbound message.
type Author struct {
	ID          UserID
	DisplayName string
}
