package reconciler

import (
	"context"

	"github.com/newshub-app/interactions/internal/domain"
)

// LoadArticle fetches an article's counters, the caller's own flags, and
// its comments for the detail view. When the backend is unreachable it
// falls back to locally persisted state rather than failing the view.
func (r *Reconciler) LoadArticle(ctx context.Context, articleID string) {
	logger := domain.LoggerFromContext(ctx)

	stats, err := r.Gateway.FetchStats(ctx, articleID)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch article stats, using local state",
			"error", err, "article_id", articleID)

		if rec, ok, serr := r.Store.Get(ctx, articleID); serr == nil && ok {
			r.Presenter.ApplyInteraction(articleID, rec)
		}
	} else {
		r.setCounts(stats)
		r.Presenter.ApplyStats(stats)
		r.applySummary(ctx, articleID, stats.UserInteraction)
	}

	comments, err := r.Gateway.ListComments(ctx, articleID)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch comments, using cached copy",
			"error", err, "article_id", articleID)

		cached, cerr := r.Comments.CachedComments(ctx, articleID)
		if cerr != nil {
			logger.WarnContext(ctx, "failed to read cached comments", "error", cerr, "article_id", articleID)
		}
		r.Presenter.ShowComments(articleID, cached)
		return
	}

	if err := r.Comments.CacheComments(ctx, articleID, comments); err != nil {
		logger.WarnContext(ctx, "failed to cache comments", "error", err, "article_id", articleID)
	}
	r.Presenter.ShowComments(articleID, comments)
}

// applySummary reconciles server-reported flags into the local store. A
// key with a mutation in flight keeps its optimistic value: the in-flight
// result takes precedence over the snapshot.
func (r *Reconciler) applySummary(ctx context.Context, articleID string, summary *domain.InteractionSummary) {
	if summary == nil {
		return
	}

	update := domain.InteractionUpdate{}
	if !r.isPending(articleID, actionLike) {
		update.Liked = &summary.Liked
	}
	if !r.isPending(articleID, actionFavorite) {
		update.Favorited = &summary.Favorited
	}
	if update.Empty() {
		return
	}

	rec, err := r.Store.Set(ctx, articleID, update)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to persist server interaction state",
			"error", err, "article_id", articleID)
		return
	}
	r.Presenter.ApplyInteraction(articleID, rec)
}
