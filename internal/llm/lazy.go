package llm

import (
	"context"
	"sync"
)

// Factory constructs a Provider. Called at most once per LazyProvider.
type Factory func(ctx context.Context) (Provider, error)

// LazyProvider defers provider construction until the first Generate call.
// Construction runs exactly once: concurrent first callers block on the
// in-flight initialization instead of starting a second one. A failed
// initialization is remembered and every subsequent call reports
// ErrProviderUnavailable without re-attempting.
type LazyProvider struct {
	factory Factory
	once    sync.Once

	// mu guards provider and initErr so ModelID and Ready stay safe
	// against a concurrent first Generate.
	mu       sync.Mutex
	provider Provider
	initErr  error
}

// Lazy wraps a factory in a LazyProvider.
func Lazy(factory Factory) *LazyProvider {
	return &LazyProvider{factory: factory}
}

func (l *LazyProvider) init(ctx context.Context) (Provider, error) {
	l.once.Do(func() {
		p, err := l.factory(ctx)
		l.mu.Lock()
		l.provider, l.initErr = p, err
		l.mu.Unlock()
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.provider, l.initErr
}

func (l *LazyProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	p, err := l.init(ctx)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return p.Generate(ctx, req)
}

func (l *LazyProvider) ModelID() string {
	l.mu.Lock()
	p := l.provider
	l.mu.Unlock()
	if p == nil {
		return "uninitialized"
	}
	return p.ModelID()
}

// Ready reports whether the provider was initialized successfully.
// False both before first use and after a failed initialization.
func (l *LazyProvider) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.provider != nil && l.initErr == nil
}
