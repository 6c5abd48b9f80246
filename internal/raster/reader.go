// Package raster reads terrain grids and writes density grids as plain text.
package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"bomb-abm/internal/core"
)

// Read parses a text grid: one row per line, cells separated by commas and/or
// whitespace. Cells may be written as integral floats ("255.0"). Blank lines
// are skipped. The rows are returned in file order.
func Read(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.FieldsFunc(sc.Text(), isSeparator)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := parseCell(f)
			if err != nil {
				return nil, core.Configf("raster", "line %d, column %d: %v", line, i+1, err)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, core.Configf("raster", "line %d has %d cells, want %d", line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read raster: %w", err)
	}
	if len(rows) == 0 {
		return nil, core.Configf("raster", "no data")
	}
	return rows, nil
}

// ReadGrid parses r into a Grid.
func ReadGrid(r io.Reader) (*core.Grid, error) {
	rows, err := Read(r)
	if err != nil {
		return nil, err
	}
	return core.GridFromRows(rows)
}

// LoadSource reads the terrain file at path and locates the marker cell.
func LoadSource(path string, marker int) (*core.SourceGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain: %w", err)
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src, err := core.LocateSource(g, marker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == ';' || r == '\r'
}

func parseCell(s string) (int, error) {
	s = strings.Trim(s, `"'`)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}
