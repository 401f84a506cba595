package recent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessro/isoshelf/internal/core"
	"github.com/tessro/isoshelf/internal/engine"
	apperr "github.com/tessro/isoshelf/internal/errors"
)

// Route handles a menu selection by identifier. It returns false when the
// identifier does not belong to the list, or when the entry is already the
// active image; the caller should then pass the event on. Otherwise the
// engine is paused, the image swapped and the engine resumed. Swap errors
// are returned unchanged in kind; the engine is resumed regardless.
func (l *List) Route(ctx context.Context, id int) (bool, error) {
	i, ok := l.ids[id]
	if !ok || i >= len(l.entries) {
		return false, nil
	}
	return l.swapTo(ctx, i)
}

// SelectIndex swaps to entry i as if its menu item had been chosen. It works
// without a menu host.
func (l *List) SelectIndex(ctx context.Context, i int) (bool, error) {
	if i < 0 || i >= len(l.entries) {
		return false, fmt.Errorf("entry %d: %w", i, apperr.ErrNoSuchEntry)
	}
	return l.swapTo(ctx, i)
}

// IsActive reports whether path is the image the engine is using now.
func (l *List) IsActive(path string) bool {
	if l.engine == nil {
		return false
	}
	cur := l.engine.Current()
	return cur.Type == core.SourceImage && cur.Path != "" && l.paths.Normalize(cur.Path) == path
}

func (l *List) swapTo(ctx context.Context, i int) (bool, error) {
	path := l.entries[i].Path

	// Re-selecting the active image would pause and resume the engine for
	// nothing, and can hang an engine that is already stopped.
	if l.IsActive(path) {
		l.logger.Debug("selection matches active image", slog.String("path", path))
		return false, nil
	}
	if l.engine == nil {
		return true, apperr.ErrEngineUnavailable
	}

	l.cursel = i

	pause, err := engine.Pause(ctx, l.engine)
	if err != nil {
		return true, err
	}
	defer func() { _ = pause.Release(ctx) }()

	if err := l.engine.SwapImage(ctx, path, core.ImageChangedMessage); err != nil {
		l.logger.Warn("image swap failed", slog.String("path", path), slog.Any("error", err))
		return true, err
	}
	if item := l.entries[i].item; item != nil {
		item.Check()
	}
	return true, pause.AllowResume(ctx)
}
