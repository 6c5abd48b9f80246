package dispersal

import "bomb-abm/internal/core"

// Particle is one released unit. It is airborne while height > 0 and grounded
// once height reaches 0.
type Particle struct {
	wind *WindModel
	fall *FallModel
	rng  core.Source

	pos           core.Position
	releaseHeight int
	height        int
	iterations    int
}

// NewParticle places a particle at start (copied) and releaseHeight. The wind
// and fall models are shared and never mutated.
func NewParticle(wind *WindModel, fall *FallModel, start core.Position, releaseHeight int, rng core.Source) *Particle {
	return &Particle{
		wind:          wind,
		fall:          fall,
		rng:           rng,
		pos:           start,
		releaseHeight: releaseHeight,
		height:        releaseHeight,
	}
}

// Move drifts the particle one cell with the wind. Wind still acts on a
// grounded particle.
func (p *Particle) Move() Direction {
	return p.wind.Blow(p.rng, &p.pos)
}

// Fall updates the height. Below the release height the particle always
// drops by one without consuming a draw; at or above it the fall model
// decides. Grounded particles stay put.
func (p *Particle) Fall() {
	if !p.CanFall() {
		return
	}
	if p.height < p.releaseHeight {
		p.height--
		return
	}
	p.height += p.fall.NextFall(p.rng).Delta()
}

// CanFall reports whether the particle is still airborne.
func (p *Particle) CanFall() bool { return p.height > 0 }

// Position returns a copy of the current position.
func (p *Particle) Position() core.Position { return p.pos }

// Height returns the current altitude.
func (p *Particle) Height() int { return p.height }

// ReleaseHeight returns the altitude the particle started at.
func (p *Particle) ReleaseHeight() int { return p.releaseHeight }

// Iterations reports how many move+fall steps the driver has applied.
func (p *Particle) Iterations() int { return p.iterations }

// step applies one move+fall iteration.
func (p *Particle) step() {
	p.Move()
	p.Fall()
	p.iterations++
}

// settled reports whether the driver should stop stepping the particle.
func (p *Particle) settled(maxIterations int) bool {
	return !p.CanFall() || p.iterations >= maxIterations
}

// advance steps the particle until it grounds or hits the cap.
func (p *Particle) advance(maxIterations int) {
	for !p.settled(maxIterations) {
		p.step()
	}
}
