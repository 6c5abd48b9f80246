package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"bomb-abm/internal/core"
)

// Write serialises g as whitespace-delimited integer rows, one grid row per
// line, row 0 first.
func Write(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	buf := make([]byte, 0, 16)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendInt(buf[:0], int64(cells[g.Index(x, y)]), 10)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write raster: %w", err)
	}
	return nil
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create raster: %w", err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
