package app

import (
	"context"
	"fmt"

	"github.com/newshub-app/interactions/internal/datasources/newsapi"
	"github.com/newshub-app/interactions/internal/datasources/sqlite"
	"github.com/newshub-app/interactions/internal/notify"
	"github.com/newshub-app/interactions/internal/reconciler"
	"github.com/newshub-app/interactions/internal/session"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupStateRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up state repository: %w", err)
	}

	sessions, err := session.NewManager(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	gateway := newsapi.NewClient(
		MustGetEnvAsString(ctx, "API_BASE_URL"),
		sessions,
		MustGetEnvAsDuration(ctx, "REQUEST_TIMEOUT"),
	)

	feed := notify.NewFeed(notify.DefaultTTL)
	emitter := notify.Multi(notify.SlogEmitter{}, feed)

	rec := reconciler.New(store, store, gateway, sessions, emitter, reconciler.NullPresenter{})

	return []Component{
		feed,
		&Refresher{
			Reconciler: rec,
			Interval:   MustGetEnvAsDuration(ctx, "REFRESH_INTERVAL"),
		},
	}, nil
}

func setupStateRepository(ctx context.Context) (*sqlite.Repository, error) {
	db, err := sqlite.Connect(ctx, MustGetEnvAsString(ctx, "STATE_DB_PATH"))
	if err != nil {
		return nil, fmt.Errorf("connecting to SQLite: %w", err)
	}
	return sqlite.New(db)
}
