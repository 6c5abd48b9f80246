package sweep

import (
	"context"
	"errors"
	"testing"

	"bomb-abm/internal/core"
	"bomb-abm/internal/sims/dispersal"
)

func baseConfig() dispersal.Config {
	cfg := dispersal.DefaultConfig()
	cfg.Particles = 100
	cfg.ReleaseHeight = 8
	return cfg
}

func TestCombineCoversEveryPair(t *testing.T) {
	sets := Combine(WindPresets(), FallPresets())
	if len(sets) != len(WindPresets())*len(FallPresets()) {
		t.Fatalf("sets = %d", len(sets))
	}
	for _, p := range sets {
		cfg := baseConfig()
		cfg.Params = p
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset %+v invalid: %v", p, err)
		}
	}
}

func TestRunRanksByMeanDistance(t *testing.T) {
	src, _ := core.Blank(121, 121)
	sets := Combine([]Wind{{25, 25, 25, 25}, {0, 100, 0, 0}}, []Fall{{0, 100, 0}})
	results, err := Run(context.Background(), src, baseConfig(), sets, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	if results[0].Params.East != 100 {
		t.Fatalf("steady east wind should travel farthest, got %s first", results[0])
	}
	// Heavy particles fall one cell per step, one move per fall.
	if results[0].Summary.MeanDistance != 8 || results[0].Stats.Landed != 100 {
		t.Fatalf("east result = %s", results[0])
	}
	if results[1].Summary.MeanDistance > results[0].Summary.MeanDistance {
		t.Fatal("results not sorted")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	src, _ := core.Blank(61, 61)
	sets := Combine(WindPresets()[:2], FallPresets()[:2])
	a, err := Run(context.Background(), src, baseConfig(), sets, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), src, baseConfig(), sets, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestRunRejectsInvalidSets(t *testing.T) {
	src, _ := core.Blank(11, 11)
	sets := []dispersal.Params{{North: 50, Down: 100}}
	if _, err := Run(context.Background(), src, baseConfig(), sets, 1); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	src, _ := core.Blank(11, 11)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, src, baseConfig(), Combine(WindPresets(), FallPresets()), 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
