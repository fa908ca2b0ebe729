package domain

import (
	"time"
)

// InteractionKind identifies a toggleable per-article interaction.
type InteractionKind string

const (
	InteractionKindLike     InteractionKind = "like"
	InteractionKindFavorite InteractionKind = "favorite"
)

// InteractionRecord is the locally persisted interaction state for one
// article. Absence of a record means no recorded interaction, not an
// explicit false.
type InteractionRecord struct {
	ArticleID string    `json:"article_id"`
	Liked     bool      `json:"liked"`
	Favorited bool      `json:"favorited"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InteractionUpdate is a partial update merged into a stored record.
// Nil fields keep their current value.
type InteractionUpdate struct {
	Liked     *bool
	Favorited *bool
}

// Empty reports whether the update would change nothing.
func (u InteractionUpdate) Empty() bool {
	return u.Liked == nil && u.Favorited == nil
}

// UserInteraction is one server-side interaction row, as returned by the
// user interaction listing endpoint.
type UserInteraction struct {
	ID              string    `json:"id"`
	ArticleID       string    `json:"article_id"`
	InteractionType string    `json:"interaction_type"`
	IsActive        bool      `json:"is_active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Favorite is a server-side favorite row.
type Favorite struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	FolderName string    `json:"folder_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ArticleStats carries an article's visible interaction counters, plus the
// caller's own flags when the stats were fetched with a credential.
type ArticleStats struct {
	ArticleID       string              `json:"article_id"`
	LikeCount       int                 `json:"like_count"`
	CommentCount    int                 `json:"comment_count"`
	FavoriteCount   int                 `json:"favorite_count"`
	UserInteraction *InteractionSummary `json:"user_interaction,omitempty"`
}

// InteractionSummary is the caller's own interaction flags for one article.
type InteractionSummary struct {
	Liked     bool `json:"liked"`
	Favorited bool `json:"favorited"`
	Commented bool `json:"commented"`
}
