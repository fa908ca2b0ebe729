package datasources

import (
	"context"

	"github.com/newshub-app/interactions/internal/domain"
)

// Gateway write capabilities. Implementations map backend failures onto
// the domain error taxonomy; callers never see raw transport errors.

type LikeSetter interface {
	SetLike(ctx context.Context, articleID string, active bool) error
}

// FavoriteSetter exposes the backend's add/remove favorite pair as one
// idempotent toggle: setting a state that already holds is a no-op
// success, so a retried toggle after an ambiguous failure cannot
// double-apply.
type FavoriteSetter interface {
	SetFavorite(ctx context.Context, articleID string, active bool) error
}

type CommentPoster interface {
	PostComment(ctx context.Context, articleID, content string) (domain.Comment, error)
}

type CommentDeleter interface {
	DeleteComment(ctx context.Context, commentID string) error
}

// Gateway read capabilities.

type CommentLister interface {
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)
}

type UserInteractionLister interface {
	ListUserInteractions(
		ctx context.Context, kind domain.InteractionKind, page, limit int,
	) ([]domain.UserInteraction, error)
}

type FavoriteLister interface {
	ListFavorites(ctx context.Context, page, limit int) ([]domain.Favorite, error)
}

type StatsFetcher interface {
	FetchStats(ctx context.Context, articleID string) (domain.ArticleStats, error)
}

// Gateway groups every capability of the backend interaction API.
type Gateway interface {
	LikeSetter
	FavoriteSetter
	CommentPoster
	CommentDeleter
	CommentLister
	UserInteractionLister
	FavoriteLister
	StatsFetcher
}

// NullGateway is a null implementation of Gateway.
type NullGateway struct{}

var _ Gateway = NullGateway{}

func (NullGateway) SetLike(_ context.Context, _ string, _ bool) error {
	return nil
}

func (NullGateway) SetFavorite(_ context.Context, _ string, _ bool) error {
	return nil
}

func (NullGateway) PostComment(_ context.Context, articleID, content string) (domain.Comment, error) {
	return domain.Comment{ArticleID: articleID, Content: content}, nil
}

func (NullGateway) DeleteComment(_ context.Context, _ string) error {
	return nil
}

func (NullGateway) ListComments(_ context.Context, _ string) ([]domain.Comment, error) {
	return nil, nil
}

func (NullGateway) ListUserInteractions(
	_ context.Context, _ domain.InteractionKind, _, _ int,
) ([]domain.UserInteraction, error) {
	return nil, nil
}

func (NullGateway) ListFavorites(_ context.Context, _, _ int) ([]domain.Favorite, error) {
	return nil, nil
}

func (NullGateway) FetchStats(_ context.Context, articleID string) (domain.ArticleStats, error) {
	return domain.ArticleStats{ArticleID: articleID}, nil
}
