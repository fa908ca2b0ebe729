// Package sqlite is the durable local interaction store. It fills the role
// the browser client gives to namespaced origin storage: one row per
// article for interaction flags, JSON payloads for cached comment lists
// and small preference blobs, all surviving restarts in a per-user file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/newshub-app/interactions/internal/datasources"
	"github.com/newshub-app/interactions/internal/domain"
)

var _ datasources.InteractionStore = (*Repository)(nil)
var _ datasources.CommentCache = (*Repository)(nil)
var _ datasources.KVStore = (*Repository)(nil)

type Repository struct {
	db *sql.DB

	// now is swapped out by tests.
	now func() time.Time
}

func New(db *sql.DB) (*Repository, error) {
	r := &Repository{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrating state DB: %w", err)
	}
	return r, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interactions (
		article_id TEXT PRIMARY KEY,
		liked INTEGER NOT NULL DEFAULT 0,
		favorited INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS comment_cache (
		article_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS kv (
		ns TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *Repository) Get(ctx context.Context, articleID string) (domain.InteractionRecord, bool, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("article_id", "liked", "favorited", "updated_at").From("interactions")
	sb.Where(sb.Equal("article_id", articleID))
	query, args := sb.Build()

	var rec domain.InteractionRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&rec.ArticleID, &rec.Liked, &rec.Favorited, &rec.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InteractionRecord{}, false, nil
		}
		return domain.InteractionRecord{}, false, fmt.Errorf("reading interaction record: %w", err)
	}
	return rec, true, nil
}

func (r *Repository) Set(
	ctx context.Context, articleID string, update domain.InteractionUpdate,
) (domain.InteractionRecord, error) {
	rec, ok, err := r.Get(ctx, articleID)
	if err != nil {
		return domain.InteractionRecord{}, err
	}
	if !ok {
		rec = domain.InteractionRecord{ArticleID: articleID}
	}
	if update.Liked != nil {
		rec.Liked = *update.Liked
	}
	if update.Favorited != nil {
		rec.Favorited = *update.Favorited
	}
	rec.UpdatedAt = r.now().UTC()

	query := `INSERT INTO interactions (article_id, liked, favorited, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(article_id) DO UPDATE SET
			liked = excluded.liked,
			favorited = excluded.favorited,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, rec.ArticleID, rec.Liked, rec.Favorited, rec.UpdatedAt); err != nil {
		return domain.InteractionRecord{}, fmt.Errorf("writing interaction record: %w", err)
	}
	return rec, nil
}

func (r *Repository) All(ctx context.Context) ([]domain.InteractionRecord, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("article_id", "liked", "favorited", "updated_at").From("interactions")
	query, args := sb.Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing interaction records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.InteractionRecord
	for rows.Next() {
		var rec domain.InteractionRecord
		if err := rows.Scan(&rec.ArticleID, &rec.Liked, &rec.Favorited, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning interaction record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repository) CacheComments(ctx context.Context, articleID string, comments []domain.Comment) error {
	persistable := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.Pending {
			continue
		}
		persistable = append(persistable, c)
	}

	payload, err := json.Marshal(persistable)
	if err != nil {
		return fmt.Errorf("encoding comment cache: %w", err)
	}
	return r.upsertPayload(ctx, "comment_cache", "article_id", articleID, payload)
}

func (r *Repository) CachedComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	payload, ok, err := r.readPayload(ctx, "comment_cache", "article_id", articleID)
	if err != nil || !ok {
		return nil, err
	}

	var comments []domain.Comment
	if err := json.Unmarshal(payload, &comments); err != nil {
		r.discardCorrupt(ctx, "comment_cache", "article_id", articleID, err)
		return nil, nil
	}
	return comments, nil
}

func (r *Repository) GetJSON(ctx context.Context, ns string, v any) (bool, error) {
	payload, ok, err := r.readPayload(ctx, "kv", "ns", ns)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(payload, v); err != nil {
		r.discardCorrupt(ctx, "kv", "ns", ns, err)
		return false, nil
	}
	return true, nil
}

func (r *Repository) SetJSON(ctx context.Context, ns string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding payload for namespace [%s]: %w", ns, err)
	}
	return r.upsertPayload(ctx, "kv", "ns", ns, payload)
}

func (r *Repository) Delete(ctx context.Context, ns string) error {
	db := sqlbuilder.SQLite.NewDeleteBuilder()
	db.DeleteFrom("kv")
	db.Where(db.Equal("ns", ns))
	query, args := db.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting namespace [%s]: %w", ns, err)
	}
	return nil
}

func (r *Repository) readPayload(
	ctx context.Context, table, keyColumn, key string,
) ([]byte, bool, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("payload").From(table)
	sb.Where(sb.Equal(keyColumn, key))
	query, args := sb.Build()

	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s payload: %w", table, err)
	}
	return payload, true, nil
}

func (r *Repository) upsertPayload(
	ctx context.Context, table, keyColumn, key string, payload []byte,
) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, payload) VALUES (?, ?)
		ON CONFLICT(%s) DO UPDATE SET payload = excluded.payload`, table, keyColumn, keyColumn)
	if _, err := r.db.ExecContext(ctx, query, key, string(payload)); err != nil {
		return fmt.Errorf("writing %s payload: %w", table, err)
	}
	return nil
}

// discardCorrupt drops a malformed persisted payload so the caller starts
// from empty. Corruption is logged, never surfaced as an error.
func (r *Repository) discardCorrupt(ctx context.Context, table, keyColumn, key string, cause error) {
	logger := domain.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "discarding corrupt persisted payload",
		"table", table,
		"key", key,
		"error", cause,
	)

	db := sqlbuilder.SQLite.NewDeleteBuilder()
	db.DeleteFrom(table)
	db.Where(db.Equal(keyColumn, key))
	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.WarnContext(ctx, "failed to drop corrupt payload", "table", table, "error", err)
	}
}
