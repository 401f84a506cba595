package core

import "context"

// Engine defines the interface for controlling the execution engine that
// consumes disc images.
type Engine interface {
	// Run state
	Running() bool
	Suspend(ctx context.Context) error
	Resume(ctx context.Context) error

	// Media
	Current() MediaSource
	SwapImage(ctx context.Context, path, message string) error
}

// ImageChangedMessage is shown to the user when the mounted image is swapped
// from the recent list.
const ImageChangedMessage = "The disc image has been changed. Games may need to be rebooted to detect the new disc."
