// Package newsapi calls the backend interactions and comments API on
// behalf of the local client, normalizing backend failures into the
// domain error taxonomy.
package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/newshub-app/interactions/internal/datasources"
	"github.com/newshub-app/interactions/internal/domain"
)

// DefaultTimeout bounds every call; a hung request resolves as a
// transient failure instead of leaving the caller pending forever.
const DefaultTimeout = 10 * time.Second

// DefaultFolderName is the favorites folder used when the caller does not
// pick one.
const DefaultFolderName = "default"

// SessionSource supplies the current credential for outbound calls.
type SessionSource interface {
	Current() domain.Session
}

var _ datasources.Gateway = (*Client)(nil)

type Client struct {
	baseURL    string
	sessions   SessionSource
	httpClient *http.Client

	// favorites holds server-confirmed favorite state so repeating a
	// toggle that already holds never issues a second network call.
	mu        sync.Mutex
	favorites map[string]bool
}

func NewClient(baseURL string, sessions SessionSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		sessions:   sessions,
		httpClient: &http.Client{Timeout: timeout},
		favorites:  make(map[string]bool),
	}
}

type interactionRequest struct {
	ArticleID       string `json:"article_id"`
	InteractionType string `json:"interaction_type"`
	IsActive        bool   `json:"is_active"`
}

func (c *Client) SetLike(ctx context.Context, articleID string, active bool) error {
	body := interactionRequest{
		ArticleID:       articleID,
		InteractionType: string(domain.InteractionKindLike),
		IsActive:        active,
	}
	return c.do(ctx, "setting like", http.MethodPost, "/api/v1/interactions/interactions", body, nil, true)
}

type favoriteRequest struct {
	ArticleID  string `json:"article_id"`
	FolderName string `json:"folder_name"`
}

func (c *Client) SetFavorite(ctx context.Context, articleID string, active bool) error {
	c.mu.Lock()
	known, tracked := c.favorites[articleID]
	c.mu.Unlock()
	if tracked && known == active {
		return nil
	}

	var err error
	if active {
		body := favoriteRequest{ArticleID: articleID, FolderName: DefaultFolderName}
		err = c.do(ctx, "adding favorite", http.MethodPost, "/api/v1/interactions/favorites", body, nil, true)
	} else {
		err = c.do(ctx, "removing favorite", http.MethodDelete,
			"/api/v1/interactions/favorites/"+url.PathEscape(articleID), nil, nil, true)
		if errors.Is(err, domain.ErrNotFound) {
			// Already gone server-side; removing it again is success.
			err = nil
		}
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.favorites[articleID] = active
	c.mu.Unlock()
	return nil
}

type commentRequest struct {
	ArticleID string `json:"article_id"`
	Content   string `json:"content"`
}

func (c *Client) PostComment(ctx context.Context, articleID, content string) (domain.Comment, error) {
	normalized, err := domain.NormalizeCommentContent(content)
	if err != nil {
		return domain.Comment{}, err
	}

	var comment domain.Comment
	body := commentRequest{ArticleID: articleID, Content: normalized}
	if err := c.do(ctx, "posting comment", http.MethodPost, "/api/v1/comments", body, &comment, true); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, "deleting comment", http.MethodDelete,
		"/api/v1/comments/"+url.PathEscape(commentID), nil, nil, true)
}

func (c *Client) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.do(ctx, "listing comments", http.MethodGet,
		"/api/v1/comments/article/"+url.PathEscape(articleID), nil, &comments, false)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) ListUserInteractions(
	ctx context.Context, kind domain.InteractionKind, page, limit int,
) ([]domain.UserInteraction, error) {
	q := url.Values{}
	q.Set("interaction_type", string(kind))
	setPagination(q, page, limit)

	var interactions []domain.UserInteraction
	err := c.do(ctx, "listing user interactions", http.MethodGet,
		"/api/v1/interactions/users/interactions?"+q.Encode(), nil, &interactions, true)
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

func (c *Client) ListFavorites(ctx context.Context, page, limit int) ([]domain.Favorite, error) {
	q := url.Values{}
	setPagination(q, page, limit)

	var favorites []domain.Favorite
	err := c.do(ctx, "listing favorites", http.MethodGet,
		"/api/v1/interactions/favorites?"+q.Encode(), nil, &favorites, true)
	if err != nil {
		return nil, err
	}

	// Server truth refreshes the toggle dedup state.
	c.mu.Lock()
	for id := range c.favorites {
		c.favorites[id] = false
	}
	for _, f := range favorites {
		c.favorites[f.ArticleID] = true
	}
	c.mu.Unlock()

	return favorites, nil
}

func (c *Client) FetchStats(ctx context.Context, articleID string) (domain.ArticleStats, error) {
	var stats domain.ArticleStats
	err := c.do(ctx, "fetching article stats", http.MethodGet,
		"/api/v1/interactions/articles/"+url.PathEscape(articleID)+"/interactions", nil, &stats, false)
	if err != nil {
		return domain.ArticleStats{}, err
	}
	return stats, nil
}

func setPagination(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}

// do runs one API call. Mutating endpoints pass requireAuth; an absent or
// expired credential then short-circuits to ErrUnauthenticated without
// touching the network.
func (c *Client) do(
	ctx context.Context, op, method, path string, body, out any, requireAuth bool,
) error {
	session := c.sessions.Current()
	if requireAuth && !session.IsActive() {
		return domain.ErrUnauthenticated
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshalling request: %w", op, err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.IsActive() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TransientError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		respBody, _ := io.ReadAll(resp.Body)
		return domain.TransientError{
			Op:  op,
			Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody)),
		}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.TransientError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}
