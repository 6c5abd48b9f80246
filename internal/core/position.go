package core

import "fmt"

// Position is an integer grid coordinate. It is a plain value: assigning a
// Position copies it, so two particles never share coordinates.
type Position struct {
	X int
	Y int
}

// Translate moves the position in place by the given offsets.
func (p *Position) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// String renders the position as (x, y).
func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
