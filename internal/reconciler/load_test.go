package reconciler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newshub-app/interactions/internal/domain"
)

func TestReconciler_LoadArticle(t *testing.T) {
	ctx := testContext()
	f := setupReconciler(t, activeSession())

	f.gateway.EXPECT().
		FetchStats(mock.Anything, "article-1").
		Return(domain.ArticleStats{
			ArticleID:     "article-1",
			LikeCount:     3,
			CommentCount:  1,
			FavoriteCount: 2,
			UserInteraction: &domain.InteractionSummary{
				Liked:     true,
				Favorited: false,
			},
		}, nil).
		Once()

	comments := []domain.Comment{{ID: "comment-1", ArticleID: "article-1", Content: "Hello"}}
	f.gateway.EXPECT().
		ListComments(mock.Anything, "article-1").
		Return(comments, nil).
		Once()

	f.reconciler.LoadArticle(ctx, "article-1")

	stats := f.presenter.lastStats(t)
	assert.Equal(t, 3, stats.LikeCount)
	assert.Equal(t, 2, stats.FavoriteCount)

	// Server-reported flags land in the local store.
	rec, ok, err := f.store.Get(ctx, "article-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rec.Liked)
	assert.False(t, rec.Favorited)

	assert.Equal(t, comments, f.presenter.lastComments(t))
	cached, err := f.store.CachedComments(ctx, "article-1")
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestReconciler_LoadArticle_BackendDown(t *testing.T) {
	ctx := testContext()
	f := setupReconciler(t, activeSession())

	_, err := f.store.Set(ctx, "article-1", domain.InteractionUpdate{Liked: boolPtr(true)})
	require.NoError(t, err)
	cached := []domain.Comment{{ID: "comment-1", ArticleID: "article-1", Content: "Cached"}}
	require.NoError(t, f.store.CacheComments(ctx, "article-1", cached))

	transient := domain.TransientError{Op: "fetching stats", Err: errors.New("connection refused")}
	f.gateway.EXPECT().
		FetchStats(mock.Anything, "article-1").
		Return(domain.ArticleStats{}, transient).
		Once()
	f.gateway.EXPECT().
		ListComments(mock.Anything, "article-1").
		Return(nil, transient).
		Once()

	f.reconciler.LoadArticle(ctx, "article-1")

	// Locally persisted state still renders.
	assert.True(t, f.presenter.lastInteraction(t).Liked)
	got := f.presenter.lastComments(t)
	require.Len(t, got, 1)
	assert.Equal(t, "comment-1", got[0].ID)
}

func TestReconciler_LoadArticle_InFlightKeyKeepsOptimisticValue(t *testing.T) {
	ctx := testContext()
	f := setupReconciler(t, activeSession())

	// An optimistic like is in flight, but the fetched snapshot predates
	// it and still says unliked.
	_, err := f.store.Set(ctx, "article-1", domain.InteractionUpdate{Liked: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, f.reconciler.acquire("article-1", actionLike))
	defer f.reconciler.release("article-1", actionLike)

	f.gateway.EXPECT().
		FetchStats(mock.Anything, "article-1").
		Return(domain.ArticleStats{
			ArticleID:       "article-1",
			LikeCount:       1,
			UserInteraction: &domain.InteractionSummary{Liked: false, Favorited: true},
		}, nil).
		Once()
	f.gateway.EXPECT().
		ListComments(mock.Anything, "article-1").
		Return(nil, nil).
		Once()

	f.reconciler.LoadArticle(ctx, "article-1")

	rec, ok, err := f.store.Get(ctx, "article-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rec.Liked, "in-flight like must not be clobbered by the snapshot")
	assert.True(t, rec.Favorited, "idle favorite flag still reconciles")
}
