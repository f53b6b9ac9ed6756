package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulatesThenResets(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)

	if fs.Advance(4 * time.Millisecond) {
		t.Fatal("fired before the period elapsed")
	}
	if fs.Advance(4 * time.Millisecond) {
		t.Fatal("fired before the period elapsed")
	}
	if !fs.Advance(4 * time.Millisecond) {
		t.Fatal("expected a tick once 12ms accumulated")
	}
	if fs.Pending() != 0 {
		t.Fatalf("accumulator should reset after firing, got %s", fs.Pending())
	}

	// A long frame fires once and drops the surplus.
	if !fs.Advance(35 * time.Millisecond) {
		t.Fatal("expected a tick for a long frame")
	}
	if fs.Advance(0) {
		t.Fatal("surplus time must not carry into the next call")
	}
	if fs.Advance(-time.Second) {
		t.Fatal("negative deltas must be ignored")
	}
}

func TestFixedStepWallClock(t *testing.T) {
	now := time.Unix(1000, 0)
	fs := NewFixedStep(5 * time.Millisecond)
	fs.now = func() time.Time { return now }

	if fs.ShouldStep() {
		t.Fatal("first call only records the start time")
	}
	now = now.Add(3 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired after 3ms of a 5ms period")
	}
	now = now.Add(2 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after 5ms")
	}

	fs.Restart()
	now = now.Add(time.Hour)
	if fs.ShouldStep() {
		t.Fatal("time before Restart's next call must not count")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	if got := NewFixedStep(0).Period(); got != time.Second/60 {
		t.Fatalf("non-positive period should fall back to 60 TPS, got %s", got)
	}
	if got := NewFixedStepTPS(100).Period(); got != 10*time.Millisecond {
		t.Fatalf("100 TPS should be 10ms, got %s", got)
	}
	if got := NewFixedStepTPS(-1).Period(); got != time.Second/60 {
		t.Fatalf("invalid TPS should fall back to 60, got %s", got)
	}
}
