package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	f := NewFixedStep(64, 8)
	step := f.Step()

	if step != 15625*time.Microsecond {
		t.Fatalf("Step() = %v, expected 15.625ms", step)
	}
	if f.Seconds() != 1.0/64.0 {
		t.Errorf("Seconds() = %v, expected %v", f.Seconds(), 1.0/64.0)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"less than a tick", step / 2, 0},
		{"completes the first tick", step / 2, 1},
		{"exactly two ticks", 2 * step, 2},
		{"zero elapsed", 0, 0},
		{"negative elapsed ignored", -time.Second, 0},
		{"tick and a half", step + step/2, 1},
		{"leftover half plus half", step / 2, 1},
	}

	for _, tc := range tests {
		if got := f.Advance(tc.elapsed); got != tc.want {
			t.Errorf("%s: Advance(%v) = %d, expected %d", tc.name, tc.elapsed, got, tc.want)
		}
	}
	if f.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0", f.Pending())
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	f := NewFixedStep(60, 4)

	if got := f.Advance(time.Second); got != 4 {
		t.Errorf("Advance(1s) = %d, expected 4 (capped)", got)
	}
	if f.Pending() != 0 {
		t.Errorf("Pending() = %v, expected backlog dropped", f.Pending())
	}
	if got := f.Advance(f.Step()); got != 1 {
		t.Errorf("Advance(step) = %d, expected 1 after drop", got)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	f := NewFixedStep(0, 0)
	if f.Step() != time.Second/64 {
		t.Errorf("Step() = %v, expected default 64 ticks/s", f.Step())
	}
	if got := f.Advance(10 * f.Step()); got != 1 {
		t.Errorf("Advance() = %d, expected 1 with catch-up floor", got)
	}
}
