package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength is the longest comment content accepted, in runes.
const MaxCommentLength = 500

// Comment is a single comment on an article. Comments are immutable after
// creation except for deletion.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Pending marks a locally stamped placeholder awaiting server
	// confirmation. Pending comments are never persisted.
	Pending bool `json:"-"`
}

// NormalizeCommentContent trims the content and validates it, returning
// the trimmed form. Empty-after-trim and over-length content is rejected
// with a ValidationError before any network call is made.
func NormalizeCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return "", ValidationError{Field: "content", Reason: "must not exceed 500 characters"}
	}
	return trimmed, nil
}
