package raster

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"bomb-abm/internal/core"
)

func TestReadMixedDelimiters(t *testing.T) {
	in := "0, 1 2\n\n3.0,4,  5\r\n"
	rows, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 2 || !slices.Equal(rows[0], []int{0, 1, 2}) || !slices.Equal(rows[1], []int{3, 4, 5}) {
		t.Fatalf("rows = %v", rows)
	}
}

func TestReadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"ragged":     "1 2 3\n4 5\n",
		"text":       "1 x 3\n",
		"fraction":   "1 2.5\n",
		"empty file": "\n\n",
	}
	for name, in := range cases {
		if _, err := Read(strings.NewReader(in)); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("%s: err = %v, want configuration error", name, err)
		}
	}
}

func TestWriteFormat(t *testing.T) {
	g, _ := core.GridFromRows([][]int{{0, 1, 0}, {12, 0, 3}})
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "0 1 0\n12 0 3\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoadSourceAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wind.raster")
	if err := os.WriteFile(path, []byte("0,255,0\n0,0,0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := LoadSource(path, core.DefaultMarker)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if src.Source != (core.Position{X: 1, Y: 0}) {
		t.Fatalf("source = %s", src.Source)
	}

	out := filepath.Join(dir, "density.txt")
	if err := Save(out, src.Grid); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer back.Close()
	g, err := ReadGrid(back)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if !slices.Equal(g.Cells(), src.Cells()) {
		t.Fatalf("reloaded cells = %v", g.Cells())
	}
}

func TestLoadSourceMissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.raster")
	if err := os.WriteFile(path, []byte("1 2\n3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSource(path, core.DefaultMarker); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}
	if _, err := LoadSource(filepath.Join(t.TempDir(), "nope"), core.DefaultMarker); err == nil {
		t.Fatal("missing file accepted")
	}
}
