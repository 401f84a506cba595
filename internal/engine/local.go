// Package engine provides the in-process execution engine and the scoped
// pause used while its media is swapped.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessro/isoshelf/internal/core"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/logging"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/settings"
)

// SettingsGroup is the settings group holding the engine's media source.
const SettingsGroup = "Engine"

// SwapHook is called after the engine switched to a new image.
type SwapHook func(ctx context.Context, path string, running bool) error

// Local implements core.Engine in process. It tracks run state and the
// active media source; the actual emulation is outside its scope.
type Local struct {
	running bool
	source  core.MediaSource
	message string

	exists func(string) bool
	hook   SwapHook
	logger *slog.Logger
}

// Option configures a Local engine.
type Option func(*Local)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Local) { e.logger = logging.NewComponentLogger(logger, "engine") }
}

// WithProbe replaces the file existence check used before swapping.
func WithProbe(exists func(string) bool) Option {
	return func(e *Local) { e.exists = exists }
}

// WithSwapHook registers a hook run after every successful swap.
func WithSwapHook(hook SwapHook) Option {
	return func(e *Local) { e.hook = hook }
}

// NewLocal creates a stopped engine with no media.
func NewLocal(opts ...Option) *Local {
	e := &Local{
		source: core.MediaSource{Type: core.SourceNone},
		exists: pathutil.FileExists,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Running reports whether the engine is executing.
func (e *Local) Running() bool { return e.running }

// Start boots the engine with its current source.
func (e *Local) Start() {
	e.running = true
}

// Suspend pauses execution. Suspending a stopped engine is a no-op.
func (e *Local) Suspend(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.running {
		return nil
	}
	e.running = false
	e.logger.Debug("engine suspended")
	return nil
}

// Resume continues execution.
func (e *Local) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.running {
		return nil
	}
	e.running = true
	e.logger.Debug("engine resumed")
	return nil
}

// Current returns the active media source.
func (e *Local) Current() core.MediaSource { return e.source }

// SetSource replaces the active media source without swapping.
func (e *Local) SetSource(src core.MediaSource) {
	if src.Type == "" {
		src.Type = core.SourceNone
	}
	e.source = src
}

// LastMessage returns the message shown by the most recent swap.
func (e *Local) LastMessage() string { return e.message }

// SwapImage makes path the active image. A running engine gets the disc
// swapped in place; a stopped one is reset to boot from it.
func (e *Local) SwapImage(ctx context.Context, path, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.exists(path) {
		return fmt.Errorf("swap to %s: %w", path, apperr.ErrImageNotFound)
	}

	e.source = core.MediaSource{Type: core.SourceImage, Path: path}
	e.message = message

	mode := "reset"
	if e.running {
		mode = "swap"
	}
	e.logger.Info("image changed", slog.String("path", path), slog.String("mode", mode))

	if e.hook != nil {
		if err := e.hook(ctx, path, e.running); err != nil {
			return fmt.Errorf("swap hook: %w", err)
		}
	}
	return nil
}

// LoadFrom restores the media source from settings.
func (e *Local) LoadFrom(s settings.Section) {
	e.source = core.MediaSource{
		Type: core.ParseSourceType(s.String("Source", string(core.SourceNone))),
		Path: s.Path("CurrentImage", ""),
	}
}

// SaveTo writes the media source to settings.
func (e *Local) SaveTo(s settings.Section, portable bool) {
	s.SetString("Source", string(e.source.Type))
	s.SetPath("CurrentImage", e.source.Path, portable)
}
