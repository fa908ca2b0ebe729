// Package prefs persists small browsing preferences: recently selected
// categories and submitted feedback ratings.
package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/newshub-app/interactions/internal/datasources"
)

// maxHistoryEntries caps each history list; the oldest entries fall off.
const maxHistoryEntries = 50

type Prefs struct {
	kv datasources.KVStore
}

func New(kv datasources.KVStore) *Prefs {
	return &Prefs{kv: kv}
}

// FeedbackEntry is one submitted article rating.
type FeedbackEntry struct {
	ArticleID string    `json:"article_id"`
	Rating    int       `json:"rating"`
	At        time.Time `json:"at"`
}

// RecordCategory moves a category to the front of the selection history.
func (p *Prefs) RecordCategory(ctx context.Context, name string) error {
	history, err := p.Categories(ctx)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(history)+1)
	updated = append(updated, name)
	for _, c := range history {
		if c != name {
			updated = append(updated, c)
		}
	}
	if len(updated) > maxHistoryEntries {
		updated = updated[:maxHistoryEntries]
	}

	if err := p.kv.SetJSON(ctx, datasources.NamespaceCategoryHistory, updated); err != nil {
		return fmt.Errorf("recording category selection: %w", err)
	}
	return nil
}

// Categories returns the selection history, most recent first. Missing or
// corrupt history reads as empty.
func (p *Prefs) Categories(ctx context.Context) ([]string, error) {
	var history []string
	if _, err := p.kv.GetJSON(ctx, datasources.NamespaceCategoryHistory, &history); err != nil {
		return nil, fmt.Errorf("reading category history: %w", err)
	}
	return history, nil
}

// RecordFeedback appends a rating to the feedback history.
func (p *Prefs) RecordFeedback(ctx context.Context, entry FeedbackEntry) error {
	history, err := p.Feedback(ctx)
	if err != nil {
		return err
	}

	history = append(history, entry)
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}

	if err := p.kv.SetJSON(ctx, datasources.NamespaceFeedbackHistory, history); err != nil {
		return fmt.Errorf("recording feedback: %w", err)
	}
	return nil
}

// Feedback returns the feedback history, oldest first.
func (p *Prefs) Feedback(ctx context.Context) ([]FeedbackEntry, error) {
	var history []FeedbackEntry
	if _, err := p.kv.GetJSON(ctx, datasources.NamespaceFeedbackHistory, &history); err != nil {
		return nil, fmt.Errorf("reading feedback history: %w", err)
	}
	return history, nil
}
