package util

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	debounced := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 10; i++ {
		debounced()
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected 1 call after a burst, got %d", n)
	}

	debounced()
	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 2 {
		t.Errorf("expected 2 calls after a second burst, got %d", n)
	}
}

func TestDebouncer_WaitsForSilence(t *testing.T) {
	var calls atomic.Int32
	debounced := NewDebouncer(50*time.Millisecond, func() { calls.Add(1) })
	debounced()
	time.Sleep(10 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no call before the delay elapsed, got %d", n)
	}
	time.Sleep(150 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}
