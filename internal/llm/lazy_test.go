package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazyInitializesOnce(t *testing.T) {
	var calls atomic.Int32
	mock := NewMockProvider()
	for i := 0; i < 20; i++ {
		mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})
	}

	p := Lazy(func(ctx context.Context) (Provider, error) {
		calls.Add(1)
		return mock, nil
	})

	if p.Ready() {
		t.Fatal("ready before first use")
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Generate(context.Background(), Request{})
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("factory ran %d times, want 1", got)
	}
	if !p.Ready() {
		t.Error("not ready after successful init")
	}
}

func TestLazyMetadataDuringInit(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := Lazy(func(ctx context.Context) (Provider, error) {
		return mock, nil
	})

	// ModelID and Ready must stay safe while the first Generate is
	// initializing the provider. Run under -race.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Generate(context.Background(), Request{})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.ModelID()
			_ = p.Ready()
		}()
	}
	wg.Wait()

	if got := p.ModelID(); got != "mock" {
		t.Errorf("ModelID() = %q after init, want mock", got)
	}
}

func TestLazyRemembersFailure(t *testing.T) {
	var calls atomic.Int32
	p := Lazy(func(ctx context.Context) (Provider, error) {
		calls.Add(1)
		return nil, errors.New("bad credentials")
	})

	for i := 0; i < 3; i++ {
		_, err := p.Generate(context.Background(), Request{})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("err = %v, want ErrProviderUnavailable", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("factory ran %d times after failure, want 1", got)
	}
	if p.Ready() {
		t.Error("ready after failed init")
	}
}
