package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the slice of math/rand/v2 the samplers need.
type Source interface {
	Float64() float64
}

// Percent returns a uniform draw in [0, 100) from src.
func Percent(src Source) float64 {
	return src.Float64() * 100
}

// NewStream returns an independent deterministic generator for stream id
// under seed. Each particle draws from its own stream so results do not depend
// on how particles are scheduled across workers.
func NewStream(seed int64, id uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), id+1))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
