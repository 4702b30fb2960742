// Package render draws grids and paths as plain text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Overlay glyphs.
const (
	WallGlyph  = '#'
	FloorGlyph = ' '
	PathGlyph  = '+'
	StartGlyph = 'S'
	EndGlyph   = 'E'
)

// Numeric codes written by Numeric.
const (
	WallCode  = 5
	FloorCode = 0
)

// Overlay writes g with path drawn on top, one line per row.
// path is in start→end order; its first cell is marked S and its last E.
// Positions outside the grid are reported as tilemap.ErrOutOfBounds.
func Overlay(w io.Writer, g *tilemap.Grid, path []tilemap.Position) error {
	cells := make([]byte, g.Len())
	for i := range cells {
		cells[i] = WallGlyph
		if g.IsFloor(tilemap.Position(i)) {
			cells[i] = FloorGlyph
		}
	}
	for i, p := range path {
		if !g.InBounds(p) {
			return fmt.Errorf("render: path step %d: %w", i, tilemap.ErrOutOfBounds)
		}
		cells[p] = PathGlyph
	}
	if len(path) > 0 {
		cells[path[len(path)-1]] = EndGlyph
		cells[path[0]] = StartGlyph
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		bw.Write(cells[y*g.Width() : (y+1)*g.Width()])
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Numeric writes g as comma-separated tile codes (5 wall, 0 floor), one line per row.
func Numeric(w io.Writer, g *tilemap.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				bw.WriteString(", ")
			}
			code := WallCode
			if g.At(x, y) == tilemap.Floor {
				code = FloorCode
			}
			bw.WriteString(strconv.Itoa(code))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
