package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	fs.Restart()
	start := time.Unix(100, 0)
	if n := fs.Due(start); n != 0 {
		t.Fatalf("first call should only record the clock, got %d", n)
	}
	if n := fs.Due(start.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("half a step should not be due, got %d", n)
	}
	if n := fs.Due(start.Add(100 * time.Millisecond)); n != 1 {
		t.Fatalf("one step should be due, got %d", n)
	}
	if n := fs.Due(start.Add(10 * time.Second)); n != maxCatchUp {
		t.Fatalf("a stall should be capped at %d steps, got %d", maxCatchUp, n)
	}
	if n := fs.Due(start.Add(10*time.Second + 50*time.Millisecond)); n != 0 {
		t.Fatalf("the accumulator should reset after a stall, got %d", n)
	}
}

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Rate() != 10 {
		t.Fatalf("default rate = %d, want 10", fs.Rate())
	}
	fs.SetRate(25)
	if fs.Rate() != 25 {
		t.Fatalf("rate = %d, want 25", fs.Rate())
	}
}
