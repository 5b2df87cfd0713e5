// Package render plots the visit order of a spiral onto a text grid, in the
// style of the numbered printouts used to document each metric.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/spiral/internal/ui"
)

// Visit is one produced point together with its ring.
type Visit struct {
	X, Y int64
	Ring int64
}

type cell struct {
	order int // 1-based visit index; 0 means unvisited
	ring  int64
}

// Grid is the bounding box of a walk, addressed by offsets from its first
// visit. Offsets are taken with wrapping subtraction, so a spiral whose
// coordinates wrapped around the integer range still plots as one block.
type Grid struct {
	originX, originY int64
	minDX, minDY     int64
	width, height    int
	cells            []cell
	visits           int
}

// NewGrid builds the grid of a walk. The first visit is taken as the
// origin; an empty walk yields an empty grid.
func NewGrid(visits []Visit) *Grid {
	g := &Grid{visits: len(visits)}
	if len(visits) == 0 {
		return g
	}
	g.originX, g.originY = visits[0].X, visits[0].Y

	var maxDX, maxDY int64
	for _, v := range visits {
		dx, dy := v.X-g.originX, v.Y-g.originY
		g.minDX, maxDX = min(g.minDX, dx), max(maxDX, dx)
		g.minDY, maxDY = min(g.minDY, dy), max(maxDY, dy)
	}
	g.width = int(maxDX-g.minDX) + 1
	g.height = int(maxDY-g.minDY) + 1
	g.cells = make([]cell, g.width*g.height)

	for i, v := range visits {
		col := int(v.X - g.originX - g.minDX)
		row := int(v.Y - g.originY - g.minDY)
		g.cells[row*g.width+col] = cell{order: i + 1, ring: v.Ring}
	}
	return g
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// At returns the 1-based visit index of the cell at column col and row row,
// or 0 when the cell was not visited or is outside the grid.
func (g *Grid) At(col, row int) int {
	if col < 0 || row < 0 || col >= g.width || row >= g.height {
		return 0
	}
	return g.cells[row*g.width+col].order
}

// Origin returns the coordinates of the top-left cell.
func (g *Grid) Origin() (x, y int64) {
	return g.originX + g.minDX, g.originY + g.minDY
}

// Write prints the grid with y growing downwards. Visited cells show their
// visit index colored by ring; unvisited cells show a dot.
//
// Parameters:
//   - w: The destination writer.
//   - theme: The color theme; NoColorTheme yields plain text.
//
// Returns:
//   - error: The first write error, if any.
func (g *Grid) Write(w io.Writer, theme ui.Theme) error {
	cellWidth := len(strconv.Itoa(g.visits))
	var sb strings.Builder
	for row := range g.height {
		sb.Reset()
		for col := range g.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			c := g.cells[row*g.width+col]
			switch {
			case c.order == 0:
				sb.WriteString(theme.Secondary)
				fmt.Fprintf(&sb, "%*s", cellWidth, ".")
			case c.order == 1:
				sb.WriteString(theme.Bold + theme.Primary)
				fmt.Fprintf(&sb, "%*d", cellWidth, c.order)
			default:
				sb.WriteString(theme.RingColor(uint64(c.ring)))
				fmt.Fprintf(&sb, "%*d", cellWidth, c.order)
			}
			sb.WriteString(theme.Reset)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
