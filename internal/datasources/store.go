package datasources

import (
	"context"

	"github.com/newshub-app/interactions/internal/domain"
)

// Persisted namespaces, mirroring the origin storage keys the web client
// uses for the same data. Independently loaded consumers share these;
// never introduce a second namespace for the same logical data.
const (
	NamespaceSession         = "session"
	NamespaceFeedbackHistory = "feedback_history"
	NamespaceCategoryHistory = "category_history"
)

// InteractionStore is the durable local record of the user's per-article
// interaction flags. A missing record is not an error; implementations
// recover from corrupt persisted state by resetting to empty rather than
// failing.
type InteractionStore interface {
	// Get returns the record for an article, reporting ok=false when no
	// interaction was ever recorded.
	Get(ctx context.Context, articleID string) (rec domain.InteractionRecord, ok bool, err error)

	// Set merges a partial update into the stored record, creating one if
	// absent, and stamps the update time.
	Set(ctx context.Context, articleID string, update domain.InteractionUpdate) (domain.InteractionRecord, error)

	// All returns every stored record, in no particular order. Used at
	// startup to re-apply state to freshly rendered cards.
	All(ctx context.Context) ([]domain.InteractionRecord, error)
}

// CommentCache is the offline fallback copy of fetched comment lists. The
// server remains the source of truth; pending placeholders are never
// cached.
type CommentCache interface {
	CacheComments(ctx context.Context, articleID string, comments []domain.Comment) error
	CachedComments(ctx context.Context, articleID string) ([]domain.Comment, error)
}

// KVStore persists small JSON payloads under fixed namespaces. A corrupt
// payload is discarded and reported as absent, never as an error.
type KVStore interface {
	GetJSON(ctx context.Context, ns string, v any) (ok bool, err error)
	SetJSON(ctx context.Context, ns string, v any) error
	Delete(ctx context.Context, ns string) error
}
