package listing

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu     sync.Mutex
	values []string
	fired  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerDeliversFinalValueOnce(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	d := NewDebouncer(30*time.Millisecond, rec.record)
	for _, v := range []string{"d", "de", "des", "desi", "design"} {
		d.Set(v)
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-rec.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}
	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "design" {
		t.Fatalf("delivered = %v, want [design]", got)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.record)
	d.Set("a")
	<-rec.fired
	d.Set("b")
	<-rec.fired

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("delivered = %v, want [a b]", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	d := NewDebouncer(time.Hour, rec.record)
	if d.Flush() {
		t.Fatal("Flush with nothing pending reported true")
	}
	d.Set("x")
	d.Set("y")
	if !d.Flush() {
		t.Fatal("Flush with a pending value reported false")
	}
	got := rec.snapshot()
	if len(got) != 1 || got[0] != "y" {
		t.Fatalf("delivered = %v, want [y]", got)
	}
	if d.Flush() {
		t.Fatal("second Flush reported true")
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	d := NewDebouncer(5*time.Millisecond, rec.record)
	d.Set("dropped")
	d.Stop()
	d.Set("ignored")
	time.Sleep(30 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("delivered = %v, want none", got)
	}
}
