// Package reconciler keeps like, favorite, and comment state consistent
// across the local store, optimistic rendering, and the backend. All
// mutation of interaction state flows through it; presenters only hold
// read references.
package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/newshub-app/interactions/internal/datasources"
	"github.com/newshub-app/interactions/internal/domain"
	"github.com/newshub-app/interactions/internal/notify"
)

// ErrInFlight rejects a re-entrant trigger while a mutation for the same
// article and action has not yet resolved. Callers should disable the
// triggering control for the duration.
var ErrInFlight = errors.New("mutation already in flight for this article")

const signInMessage = "Please sign in to continue"

// SessionSource supplies the caller's current authentication state.
type SessionSource interface {
	Current() domain.Session
}

// Presenter receives reconciled state to render. Records passed in are
// read-only snapshots.
type Presenter interface {
	// ApplyInteraction renders an article's interaction flags. It is
	// called for optimistic updates, rollbacks, and confirmed state
	// alike.
	ApplyInteraction(articleID string, rec domain.InteractionRecord)

	// ApplyStats renders an article's visible counters.
	ApplyStats(stats domain.ArticleStats)

	// ShowComments replaces the rendered comment list for an article.
	ShowComments(articleID string, comments []domain.Comment)

	// RedirectToSignIn sends the user to the authentication entry point.
	RedirectToSignIn()
}

// NullPresenter is a null implementation of Presenter.
type NullPresenter struct{}

var _ Presenter = NullPresenter{}

func (NullPresenter) ApplyInteraction(_ string, _ domain.InteractionRecord) {}
func (NullPresenter) ApplyStats(_ domain.ArticleStats)                      {}
func (NullPresenter) ShowComments(_ string, _ []domain.Comment)             {}
func (NullPresenter) RedirectToSignIn()                                     {}

type actionKind string

const (
	actionLike     actionKind = "like"
	actionFavorite actionKind = "favorite"
	actionComment  actionKind = "comment"
)

type stateKey struct {
	articleID string
	action    actionKind
}

type Reconciler struct {
	Store     datasources.InteractionStore
	Comments  datasources.CommentCache
	Gateway   datasources.Gateway
	Sessions  SessionSource
	Emitter   notify.Emitter
	Presenter Presenter

	// now is swapped out by tests.
	now func() time.Time

	mu      sync.Mutex
	pending map[stateKey]struct{}
	counts  map[string]domain.ArticleStats
}

func New(
	store datasources.InteractionStore,
	comments datasources.CommentCache,
	gateway datasources.Gateway,
	sessions SessionSource,
	emitter notify.Emitter,
	presenter Presenter,
) *Reconciler {
	if emitter == nil {
		emitter = notify.NullEmitter{}
	}
	if presenter == nil {
		presenter = NullPresenter{}
	}
	return &Reconciler{
		Store:     store,
		Comments:  comments,
		Gateway:   gateway,
		Sessions:  sessions,
		Emitter:   emitter,
		Presenter: presenter,
		now:       time.Now,
		pending:   make(map[stateKey]struct{}),
		counts:    make(map[string]domain.ArticleStats),
	}
}

// acquire takes the per-key mutation lock. At most one mutation may be in
// flight per (article, action) pair.
func (r *Reconciler) acquire(articleID string, action actionKind) bool {
	key := stateKey{articleID: articleID, action: action}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, inFlight := r.pending[key]; inFlight {
		return false
	}
	r.pending[key] = struct{}{}
	return true
}

func (r *Reconciler) release(articleID string, action actionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, stateKey{articleID: articleID, action: action})
}

func (r *Reconciler) isPending(articleID string, action actionKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, inFlight := r.pending[stateKey{articleID: articleID, action: action}]
	return inFlight
}

// ensureSession short-circuits mutations with no usable credential:
// prompt, redirect, no network.
func (r *Reconciler) ensureSession(ctx context.Context) error {
	if r.Sessions.Current().IsActive() {
		return nil
	}
	r.Emitter.Info(ctx, signInMessage)
	r.Presenter.RedirectToSignIn()
	return domain.ErrUnauthenticated
}

func (r *Reconciler) emitFailure(ctx context.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		r.Emitter.Info(ctx, signInMessage)
		r.Presenter.RedirectToSignIn()
	case errors.Is(err, domain.ErrForbidden):
		r.Emitter.Failure(ctx, "You don't have permission to do that")
	default:
		r.Emitter.Failure(ctx, message)
	}
}

// setCounts replaces the cached counters for an article with server truth.
func (r *Reconciler) setCounts(stats domain.ArticleStats) {
	r.mu.Lock()
	stats.UserInteraction = nil
	r.counts[stats.ArticleID] = stats
	r.mu.Unlock()
}

// adjustCount shifts one cached counter by delta and re-renders the
// counters. The cache keeps the raw sum, so a rollback delta restores the
// exact pre-trigger value; clamping happens only at render time.
func (r *Reconciler) adjustCount(articleID string, action actionKind, delta int) {
	r.mu.Lock()
	stats := r.counts[articleID]
	stats.ArticleID = articleID

	switch action {
	case actionLike:
		stats.LikeCount += delta
	case actionFavorite:
		stats.FavoriteCount += delta
	case actionComment:
		stats.CommentCount += delta
	}

	r.counts[articleID] = stats
	r.mu.Unlock()

	r.Presenter.ApplyStats(clampStats(stats))
}

// clampStats floors each rendered counter at zero.
func clampStats(stats domain.ArticleStats) domain.ArticleStats {
	if stats.LikeCount < 0 {
		stats.LikeCount = 0
	}
	if stats.FavoriteCount < 0 {
		stats.FavoriteCount = 0
	}
	if stats.CommentCount < 0 {
		stats.CommentCount = 0
	}
	return stats
}
