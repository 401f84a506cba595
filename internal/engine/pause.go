package engine

import (
	"context"
	"fmt"

	"github.com/tessro/isoshelf/internal/core"
	apperr "github.com/tessro/isoshelf/internal/errors"
)

// ScopedPause holds the engine paused for the duration of an operation.
//
//	p, err := engine.Pause(ctx, eng)
//	if err != nil {
//		return err
//	}
//	defer p.Release(ctx)
//	... work ...
//	return p.AllowResume(ctx)
//
// An engine that was already stopped is left alone, so pausing never waits
// on an engine that cannot answer.
type ScopedPause struct {
	eng  core.Engine
	owed bool
}

// Pause suspends eng if it is running. If the engine refuses, nothing is
// held and the caller must not proceed.
func Pause(ctx context.Context, eng core.Engine) (*ScopedPause, error) {
	p := &ScopedPause{eng: eng}
	if !eng.Running() {
		return p, nil
	}
	if err := eng.Suspend(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrEngineUnavailable, err)
	}
	p.owed = true
	return p, nil
}

// Held reports whether this scope suspended the engine and has not yet
// resumed it.
func (p *ScopedPause) Held() bool { return p != nil && p.owed }

// AllowResume resumes the engine on the success path.
func (p *ScopedPause) AllowResume(ctx context.Context) error {
	return p.Release(ctx)
}

// Release restores the run state the engine had before Pause. It is safe to
// call more than once and on a nil scope. The resume is not cancelled with
// ctx, so failure paths still restore the engine.
func (p *ScopedPause) Release(ctx context.Context) error {
	if p == nil || !p.owed {
		return nil
	}
	p.owed = false
	return p.eng.Resume(context.WithoutCancel(ctx))
}
