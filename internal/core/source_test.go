package core

import (
	"errors"
	"testing"
)

func TestLocateSource(t *testing.T) {
	g, _ := GridFromRows([][]int{
		{0, 255, 0},
		{0, 0, 0},
	})
	src, err := LocateSource(g, DefaultMarker)
	if err != nil {
		t.Fatalf("LocateSource: %v", err)
	}
	if src.Source != (Position{X: 1, Y: 0}) {
		t.Fatalf("source = %s, want (1, 0)", src.Source)
	}
	if src.W != 3 || src.H != 2 {
		t.Fatalf("size = %dx%d", src.W, src.H)
	}
}

func TestLocateSourceMissingOrDuplicate(t *testing.T) {
	missing, _ := GridFromRows([][]int{{1, 2}, {3, 4}})
	if _, err := LocateSource(missing, DefaultMarker); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("missing marker err = %v", err)
	}
	dup, _ := GridFromRows([][]int{{255, 2}, {3, 255}})
	if _, err := LocateSource(dup, DefaultMarker); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("duplicate marker err = %v", err)
	}
}

func TestNewSourceGridRejectsOutsideSource(t *testing.T) {
	g, _ := NewGrid(4, 4, 0)
	if _, err := NewSourceGrid(g, Position{X: 4, Y: 0}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}
	src, err := Blank(5, 3)
	if err != nil {
		t.Fatalf("Blank: %v", err)
	}
	if src.Source != (Position{X: 2, Y: 1}) {
		t.Fatalf("blank source = %s", src.Source)
	}
}

func TestPositionCopyIsIndependent(t *testing.T) {
	a := Position{X: 3, Y: 4}
	b := a
	b.Translate(1, -1)
	if a != (Position{X: 3, Y: 4}) {
		t.Fatalf("original moved to %s", a)
	}
	if b != (Position{X: 4, Y: 3}) {
		t.Fatalf("copy = %s", b)
	}
}
