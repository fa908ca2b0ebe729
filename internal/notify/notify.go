// Package notify carries transient user-facing feedback about interaction
// outcomes. Emitters never block the caller and failures to deliver are
// silent; notifications are advisory, not state.
package notify

import (
	"context"
	"time"

	"github.com/newshub-app/interactions/internal/domain"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
	LevelInfo    Level = "info"
)

// Notification is one transient message. It should stop being shown once
// ExpiresAt passes.
type Notification struct {
	Level     Level
	Message   string
	At        time.Time
	ExpiresAt time.Time
}

// Emitter publishes transient feedback about interaction outcomes.
type Emitter interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
	Info(ctx context.Context, message string)
}

// NullEmitter is a null implementation of Emitter.
type NullEmitter struct{}

var _ Emitter = NullEmitter{}

func (NullEmitter) Success(_ context.Context, _ string) {}
func (NullEmitter) Failure(_ context.Context, _ string) {}
func (NullEmitter) Info(_ context.Context, _ string)    {}

// SlogEmitter writes notifications through the context logger.
type SlogEmitter struct{}

var _ Emitter = SlogEmitter{}

func (SlogEmitter) Success(ctx context.Context, message string) {
	domain.LoggerFromContext(ctx).InfoContext(ctx, "notification", "level", LevelSuccess, "message", message)
}

func (SlogEmitter) Failure(ctx context.Context, message string) {
	domain.LoggerFromContext(ctx).WarnContext(ctx, "notification", "level", LevelFailure, "message", message)
}

func (SlogEmitter) Info(ctx context.Context, message string) {
	domain.LoggerFromContext(ctx).InfoContext(ctx, "notification", "level", LevelInfo, "message", message)
}

// Multi fans each notification out to every given emitter.
func Multi(emitters ...Emitter) Emitter {
	return multiEmitter(emitters)
}

type multiEmitter []Emitter

func (m multiEmitter) Success(ctx context.Context, message string) {
	for _, e := range m {
		e.Success(ctx, message)
	}
}

func (m multiEmitter) Failure(ctx context.Context, message string) {
	for _, e := range m {
		e.Failure(ctx, message)
	}
}

func (m multiEmitter) Info(ctx context.Context, message string) {
	for _, e := range m {
		e.Info(ctx, message)
	}
}
