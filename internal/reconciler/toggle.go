package reconciler

import (
	"context"

	"github.com/newshub-app/interactions/internal/domain"
)

// ToggleLike flips the caller's like for an article, rendering the new
// value optimistically and rolling back if the backend refuses it.
func (r *Reconciler) ToggleLike(ctx context.Context, articleID string) error {
	return r.toggle(ctx, articleID, domain.InteractionKindLike)
}

// ToggleFavorite flips the caller's favorite for an article. The gateway
// toggle is idempotent, so a re-trigger after an ambiguous failure cannot
// double-apply.
func (r *Reconciler) ToggleFavorite(ctx context.Context, articleID string) error {
	return r.toggle(ctx, articleID, domain.InteractionKindFavorite)
}

func (r *Reconciler) toggle(ctx context.Context, articleID string, kind domain.InteractionKind) error {
	logger := domain.LoggerFromContext(ctx)

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	action := actionFor(kind)
	if !r.acquire(articleID, action) {
		return ErrInFlight
	}
	defer r.release(articleID, action)

	base, _, err := r.Store.Get(ctx, articleID)
	if err != nil {
		// A broken local read degrades to "no recorded interaction".
		logger.WarnContext(ctx, "failed to read interaction record", "error", err, "article_id", articleID)
		base = domain.InteractionRecord{}
	}
	base.ArticleID = articleID

	prev := flagValue(base, kind)
	next := !prev

	// Optimistic render before the round trip.
	r.Presenter.ApplyInteraction(articleID, withFlag(base, kind, next))
	r.adjustCount(articleID, action, countDelta(next))

	err = r.send(ctx, articleID, kind, next)
	if err != nil {
		// Roll back to the exact pre-trigger value. No automatic retry;
		// the user may re-trigger.
		r.Presenter.ApplyInteraction(articleID, base)
		r.adjustCount(articleID, action, countDelta(prev))
		r.emitFailure(ctx, err, failureMessage(kind))
		return err
	}

	rec, err := r.Store.Set(ctx, articleID, updateFor(kind, next))
	if err != nil {
		// Local persistence is best-effort; the server confirmed the
		// mutation, so the toggle stands.
		logger.WarnContext(ctx, "failed to persist interaction locally", "error", err, "article_id", articleID)
		rec = withFlag(base, kind, next)
	}
	r.Presenter.ApplyInteraction(articleID, rec)
	r.Emitter.Success(ctx, successMessage(kind, next))
	return nil
}

func (r *Reconciler) send(ctx context.Context, articleID string, kind domain.InteractionKind, active bool) error {
	switch kind {
	case domain.InteractionKindFavorite:
		return r.Gateway.SetFavorite(ctx, articleID, active)
	default:
		return r.Gateway.SetLike(ctx, articleID, active)
	}
}

func actionFor(kind domain.InteractionKind) actionKind {
	if kind == domain.InteractionKindFavorite {
		return actionFavorite
	}
	return actionLike
}

func flagValue(rec domain.InteractionRecord, kind domain.InteractionKind) bool {
	if kind == domain.InteractionKindFavorite {
		return rec.Favorited
	}
	return rec.Liked
}

func withFlag(rec domain.InteractionRecord, kind domain.InteractionKind, value bool) domain.InteractionRecord {
	if kind == domain.InteractionKindFavorite {
		rec.Favorited = value
	} else {
		rec.Liked = value
	}
	return rec
}

func updateFor(kind domain.InteractionKind, value bool) domain.InteractionUpdate {
	if kind == domain.InteractionKindFavorite {
		return domain.InteractionUpdate{Favorited: &value}
	}
	return domain.InteractionUpdate{Liked: &value}
}

func countDelta(active bool) int {
	if active {
		return 1
	}
	return -1
}

func successMessage(kind domain.InteractionKind, active bool) string {
	switch {
	case kind == domain.InteractionKindFavorite && active:
		return "Saved to favorites"
	case kind == domain.InteractionKindFavorite:
		return "Removed from favorites"
	case active:
		return "Liked"
	default:
		return "Like removed"
	}
}

func failureMessage(kind domain.InteractionKind) string {
	if kind == domain.InteractionKindFavorite {
		return "Favorite failed, please try again"
	}
	return "Like failed, please try again"
}
