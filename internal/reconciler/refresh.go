package reconciler

import (
	"context"
	"fmt"

	"github.com/newshub-app/interactions/internal/domain"
)

const refreshPageLimit = 100

// Refresh reapplies server-confirmed interaction state to the local
// store, as at startup or after a sign-in. Keys with a mutation in flight
// are left untouched; the in-flight result wins over the snapshot.
func (r *Reconciler) Refresh(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	if !r.Sessions.Current().IsActive() {
		logger.DebugContext(ctx, "skipping interaction refresh, no session")
		return nil
	}

	// A short page marks the end of a listing; the snapshot is complete
	// only once every page has been read.
	liked := make(map[string]bool)
	for page := 1; ; page++ {
		likes, err := r.Gateway.ListUserInteractions(ctx, domain.InteractionKindLike, page, refreshPageLimit)
		if err != nil {
			return fmt.Errorf("refreshing likes: %w", err)
		}
		for _, it := range likes {
			if it.InteractionType == string(domain.InteractionKindLike) {
				liked[it.ArticleID] = it.IsActive
			}
		}
		if len(likes) < refreshPageLimit {
			break
		}
	}

	favorited := make(map[string]bool)
	for page := 1; ; page++ {
		favorites, err := r.Gateway.ListFavorites(ctx, page, refreshPageLimit)
		if err != nil {
			return fmt.Errorf("refreshing favorites: %w", err)
		}
		for _, f := range favorites {
			favorited[f.ArticleID] = true
		}
		if len(favorites) < refreshPageLimit {
			break
		}
	}

	articleIDs := make(map[string]struct{}, len(liked)+len(favorited))
	for id := range liked {
		articleIDs[id] = struct{}{}
	}
	for id := range favorited {
		articleIDs[id] = struct{}{}
	}

	// Locally known articles the snapshot no longer mentions reset to
	// inactive; articles never seen anywhere stay absent.
	records, err := r.Store.All(ctx)
	if err != nil {
		return fmt.Errorf("listing local interaction records: %w", err)
	}
	for _, rec := range records {
		articleIDs[rec.ArticleID] = struct{}{}
	}

	for articleID := range articleIDs {
		update := domain.InteractionUpdate{}
		if !r.isPending(articleID, actionLike) {
			active := liked[articleID]
			update.Liked = &active
		}
		if !r.isPending(articleID, actionFavorite) {
			active := favorited[articleID]
			update.Favorited = &active
		}
		if update.Empty() {
			continue
		}

		rec, err := r.Store.Set(ctx, articleID, update)
		if err != nil {
			logger.WarnContext(ctx, "failed to reapply interaction state",
				"error", err, "article_id", articleID)
			continue
		}
		r.Presenter.ApplyInteraction(articleID, rec)
	}

	logger.DebugContext(ctx, "interaction refresh complete",
		"likes", len(liked), "favorites", len(favorited))
	return nil
}
