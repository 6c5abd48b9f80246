package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bomb-abm/internal/raster"
)

func TestRunBatchWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg, err := ParseConfig(newFlagSet(), []string{
		"-raster", "", "-w", "80", "-h", "60",
		"-particles", "300", "-height", "10", "-seed", "21", "-workers", "2",
		"-out", filepath.Join(dir, "density.raster"),
		"-png", filepath.Join(dir, "density.png"),
		"-chart", filepath.Join(dir, "hist.png"),
		"-scale", "2", "-verbose",
	})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	var out, logs bytes.Buffer
	if err := RunBatch(cfg, &out, &logs); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if !strings.Contains(out.String(), "seed 21") || !strings.Contains(out.String(), "particles 300") {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.Contains(logs.String(), "run complete") {
		t.Fatalf("verbose log missing run summary: %q", logs.String())
	}

	f, err := os.Open(filepath.Join(dir, "density.raster"))
	if err != nil {
		t.Fatalf("open raster: %v", err)
	}
	defer f.Close()
	g, err := raster.ReadGrid(f)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if g.W != 80 || g.H != 60 {
		t.Fatalf("raster size %dx%d", g.W, g.H)
	}
	if !strings.Contains(out.String(), "landed ") {
		t.Fatalf("output = %q", out.String())
	}
	for _, name := range []string{"density.png", "hist.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
}

func TestRunBatchRejectsInvalidPercentages(t *testing.T) {
	cfg, _ := ParseConfig(newFlagSet(), []string{"-raster", "", "-north", "50", "-out", ""})
	if err := RunBatch(cfg, nil, nil); err == nil {
		t.Fatal("wind summing to 145 accepted")
	}
}
