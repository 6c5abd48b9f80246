package dispersal

import (
	"errors"
	"testing"

	"bomb-abm/internal/core"
)

func TestWindModelSingleDirection(t *testing.T) {
	cases := []struct {
		n, e, s, w int
		want       Direction
	}{
		{100, 0, 0, 0, North},
		{0, 100, 0, 0, East},
		{0, 0, 100, 0, South},
		{0, 0, 0, 100, West},
	}
	for _, tc := range cases {
		wind, err := NewWindModel(tc.n, tc.e, tc.s, tc.w)
		if err != nil {
			t.Fatalf("NewWindModel: %v", err)
		}
		src := core.NewStream(1, 0)
		for i := 0; i < 100; i++ {
			if got := wind.NextDirection(src); got != tc.want {
				t.Fatalf("draw %d = %s, want %s", i, got, tc.want)
			}
		}
	}
}

func TestWindApplyChangesOneAxis(t *testing.T) {
	wind, _ := NewWindModel(25, 25, 25, 25)
	want := map[Direction]core.Position{
		North: {X: 5, Y: 6},
		East:  {X: 6, Y: 5},
		South: {X: 5, Y: 4},
		West:  {X: 4, Y: 5},
	}
	for d, exp := range want {
		p := core.Position{X: 5, Y: 5}
		wind.Apply(&p, d)
		if p != exp {
			t.Fatalf("%s moved to %s, want %s", d, p, exp)
		}
	}

	src := core.NewStream(9, 3)
	p := core.Position{}
	for i := 0; i < 200; i++ {
		before := p
		wind.Blow(src, &p)
		dx, dy := p.X-before.X, p.Y-before.Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("step %d moved by (%d, %d)", i, dx, dy)
		}
	}
}

func TestWindModelRejectsBadSums(t *testing.T) {
	if _, err := NewWindModel(5, 10, 20, 75); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("sum 110 err = %v", err)
	}
	if _, err := NewWindModel(5, 10, 20, 15); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("sum 50 err = %v", err)
	}
}

func TestFallModelSingleOutcome(t *testing.T) {
	cases := []struct {
		up, down, none int
		want           Fall
		delta          int
	}{
		{100, 0, 0, Up, 1},
		{0, 100, 0, Down, -1},
		{0, 0, 100, NoChange, 0},
	}
	for _, tc := range cases {
		fall, err := NewFallModel(tc.up, tc.down, tc.none)
		if err != nil {
			t.Fatalf("NewFallModel: %v", err)
		}
		src := core.NewStream(2, 0)
		for i := 0; i < 100; i++ {
			got := fall.NextFall(src)
			if got != tc.want || got.Delta() != tc.delta {
				t.Fatalf("draw %d = %s (%d), want %s (%d)", i, got, got.Delta(), tc.want, tc.delta)
			}
		}
	}
	if _, err := NewFallModel(10, 20, 80); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("sum 110 err = %v", err)
	}
}
