package dispersal

import (
	"testing"

	"bomb-abm/internal/core"
)

type countingSource struct {
	src   core.Source
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

func newTestParticle(t *testing.T, fall [3]int, wind [4]int, height int, src core.Source) *Particle {
	t.Helper()
	w, err := NewWindModel(wind[0], wind[1], wind[2], wind[3])
	if err != nil {
		t.Fatalf("NewWindModel: %v", err)
	}
	f, err := NewFallModel(fall[0], fall[1], fall[2])
	if err != nil {
		t.Fatalf("NewFallModel: %v", err)
	}
	return NewParticle(w, f, core.Position{X: 1, Y: 2}, height, src)
}

func TestParticleFallsOneStep(t *testing.T) {
	p := newTestParticle(t, [3]int{0, 100, 0}, [4]int{25, 25, 25, 25}, 10, core.NewStream(1, 0))
	p.Fall()
	if p.Height() != 9 {
		t.Fatalf("height = %d, want 9", p.Height())
	}
	if p.ReleaseHeight() != 10 {
		t.Fatalf("release height = %d, want 10", p.ReleaseHeight())
	}
}

func TestParticleForcedDescentConsumesNoDraws(t *testing.T) {
	src := &countingSource{src: core.NewStream(1, 0)}
	p := newTestParticle(t, [3]int{0, 100, 0}, [4]int{25, 25, 25, 25}, 5, src)

	p.Fall()
	if src.draws != 1 {
		t.Fatalf("first fall used %d draws, want 1", src.draws)
	}
	for i := 0; i < 10; i++ {
		p.Fall()
	}
	if src.draws != 1 {
		t.Fatalf("forced descent used %d draws, want 1 in total", src.draws)
	}
	if p.Height() != 0 || p.CanFall() {
		t.Fatalf("height = %d, can fall = %v; want grounded", p.Height(), p.CanFall())
	}
}

func TestParticleAboveReleaseKeepsSampling(t *testing.T) {
	src := &countingSource{src: core.NewStream(1, 0)}
	p := newTestParticle(t, [3]int{100, 0, 0}, [4]int{25, 25, 25, 25}, 3, src)
	for i := 0; i < 4; i++ {
		p.Fall()
	}
	if p.Height() != 7 {
		t.Fatalf("height = %d, want 7", p.Height())
	}
	if src.draws != 4 {
		t.Fatalf("draws = %d, want 4", src.draws)
	}

	still := newTestParticle(t, [3]int{0, 0, 100}, [4]int{25, 25, 25, 25}, 3, core.NewStream(1, 1))
	for i := 0; i < 50; i++ {
		still.Fall()
	}
	if still.Height() != 3 {
		t.Fatalf("no-change particle height = %d, want 3", still.Height())
	}
}

func TestGroundedParticleIgnoresFall(t *testing.T) {
	p := newTestParticle(t, [3]int{0, 100, 0}, [4]int{25, 25, 25, 25}, 0, core.NewStream(1, 0))
	if p.CanFall() {
		t.Fatal("particle released at height 0 can fall")
	}
	p.Fall()
	if p.Height() != 0 {
		t.Fatalf("height = %d, want 0", p.Height())
	}
}

func TestParticleMoveEvenWhenGrounded(t *testing.T) {
	p := newTestParticle(t, [3]int{0, 100, 0}, [4]int{0, 100, 0, 0}, 0, core.NewStream(1, 0))
	if d := p.Move(); d != East {
		t.Fatalf("moved %s, want east", d)
	}
	if p.Position() != (core.Position{X: 2, Y: 2}) {
		t.Fatalf("position = %s, want (2, 2)", p.Position())
	}
}

func TestParticlesDoNotShareStartPosition(t *testing.T) {
	wind, _ := NewWindModel(100, 0, 0, 0)
	fall, _ := NewFallModel(0, 100, 0)
	start := core.Position{X: 4, Y: 4}
	a := NewParticle(wind, fall, start, 3, core.NewStream(1, 0))
	b := NewParticle(wind, fall, start, 3, core.NewStream(1, 1))
	a.Move()
	a.Move()
	if b.Position() != start || start != (core.Position{X: 4, Y: 4}) {
		t.Fatalf("moving one particle changed b=%s start=%s", b.Position(), start)
	}
	pos := a.Position()
	pos.Translate(10, 10)
	if a.Position() == pos {
		t.Fatal("Position returned an alias")
	}
}

func TestParticleAdvanceStopsAtCap(t *testing.T) {
	p := newTestParticle(t, [3]int{0, 0, 100}, [4]int{25, 25, 25, 25}, 4, core.NewStream(1, 0))
	p.advance(12)
	if p.Iterations() != 12 || !p.CanFall() {
		t.Fatalf("iterations = %d, can fall = %v; want 12 and airborne", p.Iterations(), p.CanFall())
	}

	q := newTestParticle(t, [3]int{0, 100, 0}, [4]int{25, 25, 25, 25}, 4, core.NewStream(1, 0))
	q.advance(100)
	if q.Iterations() != 4 || q.CanFall() {
		t.Fatalf("iterations = %d, can fall = %v; want 4 and grounded", q.Iterations(), q.CanFall())
	}
}
