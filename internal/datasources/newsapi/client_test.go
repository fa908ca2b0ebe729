package newsapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub-app/interactions/internal/domain"
	"github.com/newshub-app/interactions/internal/newsapitest"
)

type staticSessions struct {
	session domain.Session
}

func (s staticSessions) Current() domain.Session { return s.session }

func setupClient(t *testing.T, session domain.Session) (*Client, *newsapitest.Server) {
	t.Helper()

	backend := newsapitest.NewServer()
	backend.AddUser("token-1", "user-1", "alice")
	backend.AddUser("token-2", "user-2", "bob")

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, staticSessions{session: session}, time.Second), backend
}

func authedSession() domain.Session {
	return domain.Session{Token: "token-1", UserID: "user-1", Username: "alice"}
}

func TestClient_SetLike(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	require.NoError(t, client.SetLike(ctx, "article-1", true))

	stats, err := client.FetchStats(ctx, "article-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LikeCount)
	require.NotNil(t, stats.UserInteraction)
	assert.True(t, stats.UserInteraction.Liked)

	require.NoError(t, client.SetLike(ctx, "article-1", false))
	stats, err = client.FetchStats(ctx, "article-1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.LikeCount)

	assert.Contains(t, backend.Requests(), "POST /api/v1/interactions/interactions")
}

func TestClient_MutationsShortCircuitWithoutSession(t *testing.T) {
	client, backend := setupClient(t, domain.Session{})
	ctx := context.Background()

	assert.ErrorIs(t, client.SetLike(ctx, "article-1", true), domain.ErrUnauthenticated)
	assert.ErrorIs(t, client.SetFavorite(ctx, "article-1", true), domain.ErrUnauthenticated)
	_, err := client.PostComment(ctx, "article-1", "hello")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.ErrorIs(t, client.DeleteComment(ctx, "comment-1"), domain.ErrUnauthenticated)

	// No mutating call may touch the network without a credential.
	assert.Empty(t, backend.Requests())
}

func TestClient_RejectedTokenMapsToUnauthenticated(t *testing.T) {
	client, _ := setupClient(t, domain.Session{Token: "revoked", UserID: "user-9"})

	err := client.SetLike(context.Background(), "article-1", true)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestClient_SetFavoriteIdempotent(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	require.NoError(t, client.SetFavorite(ctx, "article-1", true))
	// Repeating the same target state is a no-op success.
	require.NoError(t, client.SetFavorite(ctx, "article-1", true))

	var adds int
	for _, req := range backend.Requests() {
		if req == "POST /api/v1/interactions/favorites" {
			adds++
		}
	}
	assert.Equal(t, 1, adds)

	require.NoError(t, client.SetFavorite(ctx, "article-1", false))
	require.NoError(t, client.SetFavorite(ctx, "article-1", false))

	var removes int
	for _, req := range backend.Requests() {
		if strings.HasPrefix(req, "DELETE /api/v1/interactions/favorites/") {
			removes++
		}
	}
	assert.Equal(t, 1, removes)
}

func TestClient_RemoveUnknownFavoriteIsNoOp(t *testing.T) {
	client, _ := setupClient(t, authedSession())

	// Server has never seen this favorite; 404 on removal means done.
	assert.NoError(t, client.SetFavorite(context.Background(), "article-404", false))
}

func TestClient_PostComment(t *testing.T) {
	client, _ := setupClient(t, authedSession())
	ctx := context.Background()

	comment, err := client.PostComment(ctx, "article-1", "  looks right to me  ")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "article-1", comment.ArticleID)
	assert.Equal(t, "user-1", comment.UserID)
	assert.Equal(t, "alice", comment.Username)
	assert.Equal(t, "looks right to me", comment.Content)

	listed, err := client.ListComments(ctx, "article-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, comment.ID, listed[0].ID)
}

func TestClient_PostCommentValidation(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	var verr domain.ValidationError

	_, err := client.PostComment(ctx, "article-1", "   ")
	require.ErrorAs(t, err, &verr)

	_, err = client.PostComment(ctx, "article-1", strings.Repeat("a", domain.MaxCommentLength+1))
	require.ErrorAs(t, err, &verr)

	// Invalid content never reaches the network.
	assert.Empty(t, backend.Requests())
}

func TestClient_DeleteComment(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	backend.SeedComment(domain.Comment{
		ID:        "mine",
		ArticleID: "article-1",
		UserID:    "user-1",
		Username:  "alice",
		Content:   "to be removed",
	})
	backend.SeedComment(domain.Comment{
		ID:        "theirs",
		ArticleID: "article-1",
		UserID:    "user-2",
		Username:  "bob",
		Content:   "not yours",
	})

	require.NoError(t, client.DeleteComment(ctx, "mine"))
	assert.ErrorIs(t, client.DeleteComment(ctx, "mine"), domain.ErrNotFound)
	assert.ErrorIs(t, client.DeleteComment(ctx, "theirs"), domain.ErrForbidden)
}

func TestClient_ServerErrorIsTransient(t *testing.T) {
	client, backend := setupClient(t, authedSession())

	backend.FailNext(1)
	err := client.SetLike(context.Background(), "article-1", true)
	assert.True(t, domain.IsTransient(err), "expected transient error, got %v", err)
}

func TestClient_ListUserInteractions(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	backend.SeedLike("user-1", "article-1")
	backend.SeedLike("user-2", "article-2")

	interactions, err := client.ListUserInteractions(ctx, domain.InteractionKindLike, 1, 20)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, "article-1", interactions[0].ArticleID)
	assert.True(t, interactions[0].IsActive)
}

func TestClient_ListFavorites(t *testing.T) {
	client, backend := setupClient(t, authedSession())
	ctx := context.Background()

	backend.SeedFavorite("user-1", "article-3")

	favorites, err := client.ListFavorites(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "article-3", favorites[0].ArticleID)

	// The listing refreshed the dedup state: re-adding is a no-op.
	require.NoError(t, client.SetFavorite(ctx, "article-3", true))
	var adds int
	for _, req := range backend.Requests() {
		if req == "POST /api/v1/interactions/favorites" {
			adds++
		}
	}
	assert.Zero(t, adds)
}

func TestClient_FetchStatsAnonymous(t *testing.T) {
	client, backend := setupClient(t, domain.Session{})
	ctx := context.Background()

	backend.SeedLike("user-2", "article-1")
	backend.SeedComment(domain.Comment{ID: "c1", ArticleID: "article-1", UserID: "user-2", Content: "x"})

	stats, err := client.FetchStats(ctx, "article-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LikeCount)
	assert.Equal(t, 1, stats.CommentCount)
	assert.Nil(t, stats.UserInteraction)
}
