package dispersal

import "bomb-abm/internal/core"

// Weight is one named category of a Distribution, in percent.
type Weight struct {
	Name    string
	Percent int
}

// Distribution samples categories from integer percentage weights. The
// declared order of the weights is part of its behaviour: a draw that lands
// exactly on a threshold picks the earlier category.
type Distribution struct {
	weights    []Weight
	thresholds []int
}

// NewDistribution validates weights and precomputes cumulative thresholds.
// Every weight must be non-negative and together they must sum to exactly 100.
func NewDistribution(name string, weights ...Weight) (*Distribution, error) {
	if len(weights) == 0 {
		return nil, core.Configf(name, "no categories")
	}
	d := &Distribution{
		weights:    append([]Weight(nil), weights...),
		thresholds: make([]int, len(weights)),
	}
	sum := 0
	for i, w := range weights {
		if w.Percent < 0 || w.Percent > 100 {
			return nil, core.Configf(name+"."+w.Name, "must be between 0 and 100, got %d", w.Percent)
		}
		sum += w.Percent
		d.thresholds[i] = sum
	}
	if sum != 100 {
		return nil, core.Configf(name, "percentages must sum to 100 (currently %d)", sum)
	}
	return d, nil
}

// Sample maps a draw in [0, 100] to a category index: the first category whose
// threshold is >= draw. Draws past the last threshold pick the last category.
func (d *Distribution) Sample(draw float64) int {
	for i, t := range d.thresholds {
		if draw <= float64(t) {
			return i
		}
	}
	return len(d.thresholds) - 1
}

// Next draws one uniform percentage from src and samples it.
func (d *Distribution) Next(src core.Source) int {
	return d.Sample(core.Percent(src))
}

// Thresholds returns a copy of the cumulative thresholds.
func (d *Distribution) Thresholds() []int { return append([]int(nil), d.thresholds...) }

// Percent returns the weight of category i.
func (d *Distribution) Percent(i int) int { return d.weights[i].Percent }

// Len reports the number of categories.
func (d *Distribution) Len() int { return len(d.weights) }
