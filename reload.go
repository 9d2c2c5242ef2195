package strata

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
)

// BuildFunc builds a fresh configuration value from its sources.
type BuildFunc[T any] func(ctx context.Context) (T, error)

// Reloadable holds the last successfully built configuration and lets it be
// atomically replaced at runtime. Load is safe for concurrent readers and
// never blocks on a rebuild. Rebuilds follow a build-then-publish discipline:
// a failed rebuild leaves the published value intact and skips the update
// callback.
type Reloadable[T any] struct {
	build    BuildFunc[T]
	current  atomic.Pointer[T]
	onUpdate func()
}

// ReloadOption configures a Reloadable.
type ReloadOption func(*reloadConfig)

type reloadConfig struct {
	onUpdate func()
}

// WithOnUpdate registers a callback invoked after each successful reload. It
// is not invoked for the initial build, nor after a failed rebuild.
func WithOnUpdate(f func()) ReloadOption {
	return func(cfg *reloadConfig) { cfg.onUpdate = f }
}

// NewReloadable performs the initial build and wraps the result. The initial
// build failing is an error; there is no previous value to fall back to.
func NewReloadable[T any](ctx context.Context, build BuildFunc[T], opts ...ReloadOption) (*Reloadable[T], error) {
	cfg := &reloadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	initial, err := build(ctx)
	if err != nil {
		return nil, err
	}

	r := &Reloadable[T]{build: build, onUpdate: cfg.onUpdate}
	r.current.Store(&initial)
	return r, nil
}

// Load returns the currently published configuration.
func (r *Reloadable[T]) Load() *T {
	return r.current.Load()
}

// Reload builds a new configuration and publishes it. On failure the previous
// value stays published and the update callback is not invoked.
func (r *Reloadable[T]) Reload(ctx context.Context) error {
	next, err := r.build(ctx)
	if err != nil {
		return err
	}
	r.current.Store(&next)
	if r.onUpdate != nil {
		r.onUpdate()
	}
	return nil
}

// HandleSignal reloads on each received signal (typically syscall.SIGHUP)
// until ctx is cancelled. Reload failures are reported on the returned channel
// without replacing the current value; the channel is closed when the watcher
// exits.
func (r *Reloadable[T]) HandleSignal(ctx context.Context, signals ...os.Signal) <-chan error {
	errCh := make(chan error, 1)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)

	go func() {
		defer close(errCh)
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				if err := r.Reload(ctx); err != nil {
					select {
					case errCh <- err:
					default:
					}
				}
			}
		}
	}()

	return errCh
}
