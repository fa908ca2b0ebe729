package notify

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL matches the auto-dismiss delay of the web client's toasts.
const DefaultTTL = 3 * time.Second

var _ Emitter = (*Feed)(nil)

// Feed holds the currently visible notifications for a UI shell to
// render. Notifications dismiss themselves by expiry; Run prunes stale
// entries so the buffer stays bounded.
type Feed struct {
	ttl time.Duration

	// now is swapped out by tests.
	now func() time.Time

	mu     sync.Mutex
	active []Notification
}

func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Feed{ttl: ttl, now: time.Now}
}

func (f *Feed) Success(_ context.Context, message string) { f.emit(LevelSuccess, message) }
func (f *Feed) Failure(_ context.Context, message string) { f.emit(LevelFailure, message) }
func (f *Feed) Info(_ context.Context, message string)    { f.emit(LevelInfo, message) }

func (f *Feed) emit(level Level, message string) {
	now := f.now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = append(f.active, Notification{
		Level:     level,
		Message:   message,
		At:        now,
		ExpiresAt: now.Add(f.ttl),
	})
}

// Active returns the notifications that have not yet expired, oldest
// first.
func (f *Feed) Active() []Notification {
	now := f.now()
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Notification
	for _, n := range f.active {
		if n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	return out
}

// Run prunes expired notifications until the context is done.
func (f *Feed) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f.prune()
		}
	}
}

func (f *Feed) prune() {
	now := f.now()
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.active[:0]
	for _, n := range f.active {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	f.active = kept
}
