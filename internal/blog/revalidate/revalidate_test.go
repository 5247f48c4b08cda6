package revalidate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTarget struct {
	mu    sync.Mutex
	calls int
	err   error
	ran   chan struct{}
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{ran: make(chan struct{}, 64)}
}

func (f *fakeTarget) RevalidateAllPosts(ctx context.Context) ([]blog.Post, error) {
	f.mu.Lock()
	f.calls++
	err := f.err
	f.mu.Unlock()
	select {
	case f.ran <- struct{}{}:
	default:
	}
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("revalidation context has no deadline")
	}
	return []blog.Post{{ID: "1"}}, nil
}

func (f *fakeTarget) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRunRevalidatesOnInterval(t *testing.T) {
	target := newFakeTarget()
	r := New(target, 20*time.Millisecond, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-target.ran:
		case <-time.After(5 * time.Second):
			t.Fatalf("revalidation %d never ran", i+1)
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if calls := target.Calls(); calls < 2 {
		t.Fatalf("calls = %d, want at least 2", calls)
	}
}

func TestRunDisabledWaitsForContext(t *testing.T) {
	target := newFakeTarget()
	r := New(target, 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls := target.Calls(); calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestRunRequiresTarget(t *testing.T) {
	if err := New(nil, time.Second, nil).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing target")
	}
}

func TestRunOnceReportsErrors(t *testing.T) {
	target := newFakeTarget()
	target.err = &blog.FetchError{StatusCode: 503}
	r := New(target, time.Minute, nil)

	err := r.RunOnce(context.Background())
	var fetchErr *blog.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("RunOnce() error = %v, want *FetchError", err)
	}

	target.mu.Lock()
	target.err = nil
	target.mu.Unlock()
	if err := r.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}
}
