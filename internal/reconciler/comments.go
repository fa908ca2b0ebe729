package reconciler

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/newshub-app/interactions/internal/domain"
)

// SubmitComment posts a comment, optimistically appending a locally
// stamped placeholder to the rendered list. The placeholder is replaced
// by the server-confirmed record on success and removed on failure.
func (r *Reconciler) SubmitComment(ctx context.Context, articleID, content string) (domain.Comment, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := r.ensureSession(ctx); err != nil {
		return domain.Comment{}, err
	}

	normalized, err := domain.NormalizeCommentContent(content)
	if err != nil {
		r.Emitter.Failure(ctx, err.Error())
		return domain.Comment{}, err
	}

	if !r.acquire(articleID, actionComment) {
		return domain.Comment{}, ErrInFlight
	}
	defer r.release(articleID, actionComment)

	current, err := r.Comments.CachedComments(ctx, articleID)
	if err != nil {
		logger.WarnContext(ctx, "failed to read cached comments", "error", err, "article_id", articleID)
		current = nil
	}

	session := r.Sessions.Current()
	placeholder := domain.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		UserID:    session.UserID,
		Username:  session.Username,
		Content:   normalized,
		CreatedAt: r.now().UTC(),
		Pending:   true,
	}
	r.Presenter.ShowComments(articleID, append(slices.Clone(current), placeholder))

	confirmed, err := r.Gateway.PostComment(ctx, articleID, normalized)
	if err != nil {
		// The placeholder disappears; the input is the user's to retry.
		r.Presenter.ShowComments(articleID, current)
		r.emitFailure(ctx, err, "Comment failed to post, please try again")
		return domain.Comment{}, err
	}

	final := append(slices.Clone(current), confirmed)
	if err := r.Comments.CacheComments(ctx, articleID, final); err != nil {
		logger.WarnContext(ctx, "failed to cache comments", "error", err, "article_id", articleID)
	}
	r.Presenter.ShowComments(articleID, final)
	r.adjustCount(articleID, actionComment, 1)
	r.Emitter.Success(ctx, "Comment posted")
	return confirmed, nil
}

// RemoveComment deletes the caller's own comment, removing it from the
// rendered list optimistically and restoring it on failure. A comment the
// server has already deleted stays removed.
func (r *Reconciler) RemoveComment(ctx context.Context, comment domain.Comment) error {
	logger := domain.LoggerFromContext(ctx)

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	// UX guard only; the backend enforces ownership authoritatively.
	if comment.UserID != r.Sessions.Current().UserID {
		r.Emitter.Failure(ctx, "You can only delete your own comments")
		return domain.ErrForbidden
	}

	if !r.acquire(comment.ArticleID, actionComment) {
		return ErrInFlight
	}
	defer r.release(comment.ArticleID, actionComment)

	current, err := r.Comments.CachedComments(ctx, comment.ArticleID)
	if err != nil {
		logger.WarnContext(ctx, "failed to read cached comments", "error", err, "article_id", comment.ArticleID)
		current = nil
	}

	trimmed := slices.DeleteFunc(slices.Clone(current), func(c domain.Comment) bool {
		return c.ID == comment.ID
	})
	r.Presenter.ShowComments(comment.ArticleID, trimmed)

	err = r.Gateway.DeleteComment(ctx, comment.ID)
	if errors.Is(err, domain.ErrNotFound) {
		// Already gone server-side; the stale item stays removed.
		err = nil
	}
	if err != nil {
		r.Presenter.ShowComments(comment.ArticleID, current)
		r.emitFailure(ctx, err, "Failed to delete comment, please try again")
		return err
	}

	if err := r.Comments.CacheComments(ctx, comment.ArticleID, trimmed); err != nil {
		logger.WarnContext(ctx, "failed to cache comments", "error", err, "article_id", comment.ArticleID)
	}
	r.adjustCount(comment.ArticleID, actionComment, -1)
	r.Emitter.Success(ctx, "Comment deleted")
	return nil
}
