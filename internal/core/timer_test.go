package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesTicks(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half an interval")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("replayed %d ticks after a stall", steps)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("interval = %s", got)
	}
}

func TestStreamsAreDeterministicAndDistinct(t *testing.T) {
	a := NewStream(7, 0)
	b := NewStream(7, 0)
	c := NewStream(7, 1)
	same, diff := true, false
	for i := 0; i < 8; i++ {
		va, vb, vc := a.Float64(), b.Float64(), c.Float64()
		if va != vb {
			same = false
		}
		if va != vc {
			diff = true
		}
		if p := va * 100; p < 0 || p >= 100 {
			t.Fatalf("percent draw %f out of range", p)
		}
	}
	if !same {
		t.Fatal("same seed and stream produced different draws")
	}
	if !diff {
		t.Fatal("different streams produced identical draws")
	}
}
