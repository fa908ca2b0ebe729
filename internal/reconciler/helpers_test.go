package reconciler

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newshub-app/interactions/internal/datasources/mocks"
	"github.com/newshub-app/interactions/internal/datasources/sqlite"
	"github.com/newshub-app/interactions/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func activeSession() domain.Session {
	return domain.Session{Token: "token-1", UserID: "user-1", Username: "alice"}
}

type staticSessions struct {
	session domain.Session
}

func (s staticSessions) Current() domain.Session {
	return s.session
}

type recordingEmitter struct {
	mu        sync.Mutex
	successes []string
	failures  []string
	infos     []string
}

func (e *recordingEmitter) Success(_ context.Context, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.successes = append(e.successes, message)
}

func (e *recordingEmitter) Failure(_ context.Context, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures = append(e.failures, message)
}

func (e *recordingEmitter) Info(_ context.Context, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.infos = append(e.infos, message)
}

type renderedComments struct {
	articleID string
	comments  []domain.Comment
}

type recordingPresenter struct {
	mu           sync.Mutex
	interactions []domain.InteractionRecord
	stats        []domain.ArticleStats
	comments     []renderedComments
	redirects    int
}

func (p *recordingPresenter) ApplyInteraction(articleID string, rec domain.InteractionRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec.ArticleID = articleID
	p.interactions = append(p.interactions, rec)
}

func (p *recordingPresenter) ApplyStats(stats domain.ArticleStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats = append(p.stats, stats)
}

func (p *recordingPresenter) ShowComments(articleID string, comments []domain.Comment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.comments = append(p.comments, renderedComments{articleID: articleID, comments: comments})
}

func (p *recordingPresenter) RedirectToSignIn() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.redirects++
}

func (p *recordingPresenter) lastInteraction(t *testing.T) domain.InteractionRecord {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.interactions)
	return p.interactions[len(p.interactions)-1]
}

func (p *recordingPresenter) lastStats(t *testing.T) domain.ArticleStats {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.stats)
	return p.stats[len(p.stats)-1]
}

func (p *recordingPresenter) lastComments(t *testing.T) []domain.Comment {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.comments)
	return p.comments[len(p.comments)-1].comments
}

type fixture struct {
	reconciler *Reconciler
	store      *sqlite.Repository
	gateway    *mocks.MockGateway
	emitter    *recordingEmitter
	presenter  *recordingPresenter
}

func setupReconciler(t *testing.T, session domain.Session) fixture {
	t.Helper()

	db, err := sqlite.Connect(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := sqlite.New(db)
	require.NoError(t, err)

	gateway := mocks.NewMockGateway(t)
	emitter := &recordingEmitter{}
	presenter := &recordingPresenter{}

	return fixture{
		reconciler: New(repo, repo, gateway, staticSessions{session: session}, emitter, presenter),
		store:      repo,
		gateway:    gateway,
		emitter:    emitter,
		presenter:  presenter,
	}
}
