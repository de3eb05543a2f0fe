package livequery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("stream closed unexpectedly")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

func TestObserveInitialSnapshot(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := Observe(ctx, hub, "orders", func(context.Context) ([]string, error) {
		return []string{"P-1"}, nil
	})
	if err != nil {
		t.Fatalf("observe returned error: %v", err)
	}

	got := receive(t, stream)
	if len(got) != 1 || got[0] != "P-1" {
		t.Fatalf("unexpected initial snapshot: %v", got)
	}
}

func TestObserveSeesMutationAfterSubscribe(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	data := []string{}

	stream, err := Observe(ctx, hub, "orders", func(context.Context) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), data...), nil
	})
	if err != nil {
		t.Fatalf("observe returned error: %v", err)
	}

	if got := receive(t, stream); len(got) != 0 {
		t.Fatalf("expected empty initial snapshot, got %v", got)
	}

	mu.Lock()
	data = append(data, "P-1")
	mu.Unlock()
	hub.Notify("orders")

	if got := receive(t, stream); len(got) != 1 || got[0] != "P-1" {
		t.Fatalf("expected refreshed snapshot with P-1, got %v", got)
	}
}

func TestObserveInitialQueryError(t *testing.T) {
	hub := NewHub()
	wantErr := errors.New("boom")
	_, err := Observe(context.Background(), hub, "orders", func(context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected query error, got %v", err)
	}
}

func TestObserveStopsOnRequeryError(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	stream, err := Observe(ctx, hub, "orders", func(context.Context) (int, error) {
		calls++
		if calls > 1 {
			return 0, errors.New("store gone")
		}
		return calls, nil
	})
	if err != nil {
		t.Fatalf("observe returned error: %v", err)
	}
	receive(t, stream)

	hub.Notify("orders")
	select {
	case _, ok := <-stream:
		if ok {
			t.Fatal("expected stream to close after re-query failure")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close")
	}
}

func TestObserveClosesOnContextCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := Observe(ctx, hub, "orders", func(context.Context) (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("observe returned error: %v", err)
	}
	receive(t, stream)
	cancel()

	select {
	case _, ok := <-stream:
		if ok {
			t.Fatal("expected stream to close after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close")
	}
}

func TestNotifyCoalesces(t *testing.T) {
	hub := NewHub()
	signals, cancel := hub.Subscribe("orders")
	defer cancel()

	hub.Notify("orders")
	hub.Notify("orders")
	hub.Notify("orders")

	<-signals
	select {
	case <-signals:
		t.Fatal("expected pending notifications to coalesce into one signal")
	default:
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	signals, cancel := hub.Subscribe("orders")
	cancel()

	hub.Notify("orders")
	select {
	case <-signals:
		t.Fatal("cancelled subscription must not receive signals")
	default:
	}
}
