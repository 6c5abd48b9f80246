package dispersal

import (
	"errors"
	"math"
	"slices"
	"testing"

	"bomb-abm/internal/core"
)

func TestDistributionThresholds(t *testing.T) {
	d, err := NewDistribution("wind",
		Weight{"north", 5}, Weight{"east", 10}, Weight{"south", 20}, Weight{"west", 65})
	if err != nil {
		t.Fatalf("NewDistribution: %v", err)
	}
	if got := d.Thresholds(); !slices.Equal(got, []int{5, 15, 35, 100}) {
		t.Fatalf("thresholds = %v", got)
	}
}

func TestDistributionSampleBoundaries(t *testing.T) {
	d, _ := NewDistribution("fall", Weight{"up", 20}, Weight{"down", 70}, Weight{"nochange", 10})
	cases := []struct {
		draw float64
		want int
	}{
		{0, 0},
		{20, 0},
		{20.0001, 1},
		{90, 1},
		{90.5, 2},
		{100, 2},
		{100.0000001, 2},
	}
	for _, tc := range cases {
		if got := d.Sample(tc.draw); got != tc.want {
			t.Fatalf("Sample(%v) = %d, want %d", tc.draw, got, tc.want)
		}
	}
}

func TestDistributionRejectsBadSums(t *testing.T) {
	for _, weights := range [][]Weight{
		{{"a", 50}, {"b", 49}},
		{{"a", 50}, {"b", 51}},
		{{"a", -10}, {"b", 110}},
		nil,
	} {
		if _, err := NewDistribution("test", weights...); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("weights %v: err = %v, want configuration error", weights, err)
		}
	}
	if _, err := NewDistribution("test", Weight{"a", 100}, Weight{"b", 0}); err != nil {
		t.Fatalf("sum of 100 rejected: %v", err)
	}
}

func TestDistributionMatchesWeights(t *testing.T) {
	d, _ := NewDistribution("fall", Weight{"up", 20}, Weight{"down", 70}, Weight{"nochange", 10})
	src := core.NewStream(42, 0)
	const draws = 20000
	counts := make([]int, d.Len())
	for i := 0; i < draws; i++ {
		counts[d.Next(src)]++
	}
	for i, c := range counts {
		got := 100 * float64(c) / draws
		if math.Abs(got-float64(d.Percent(i))) > 2 {
			t.Fatalf("category %d drawn %.2f%% of the time, want about %d%%", i, got, d.Percent(i))
		}
	}
}
