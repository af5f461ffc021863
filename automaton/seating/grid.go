package seating

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrParse        = errors.New("parse error")
	ErrNoFixedPoint = errors.New("no fixed point")
)

type Cell uint8

const (
	Floor Cell = iota
	Empty
	Occupied
)

func (c Cell) Glyph() byte {
	switch c {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	default:
		return '.'
	}
}

func cellFromGlyph(g byte) (Cell, bool) {
	switch g {
	case '.':
		return Floor, true
	case 'L':
		return Empty, true
	case '#':
		return Occupied, true
	}
	return Floor, false
}

// Grid is a bounded rows x cols seating area. Cells outside it do not exist.
type Grid struct {
	cells [][]Cell
}

func Parse(r io.Reader) (Grid, error) {
	var cells [][]Cell
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(cells) > 0 && len(line) != len(cells[0]) {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrParse, len(cells), len(line), len(cells[0]))
		}
		row := make([]Cell, len(line))
		for col := 0; col < len(line); col++ {
			cell, ok := cellFromGlyph(line[col])
			if !ok {
				return Grid{}, fmt.Errorf("%w: row %d col %d: unexpected glyph %q", ErrParse, len(cells), col, line[col])
			}
			row[col] = cell
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, fmt.Errorf("reading seating grid: %w", err)
	}
	if len(cells) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrParse)
	}
	return Grid{cells: cells}, nil
}

func (g Grid) Rows() int {
	return len(g.cells)
}

func (g Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Occupied counts occupied seats.
func (g Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Occupied {
				n++
			}
		}
	}
	return n
}

func (g Grid) Clone() Grid {
	cells := make([][]Cell, len(g.cells))
	for i, row := range g.cells {
		cells[i] = append([]Cell(nil), row...)
	}
	return Grid{cells: cells}
}

func (g Grid) Equal(o Grid) bool {
	if g.Rows() != o.Rows() || g.Cols() != o.Cols() {
		return false
	}
	for r, row := range g.cells {
		for c, cell := range row {
			if o.cells[r][c] != cell {
				return false
			}
		}
	}
	return true
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, cell := range row {
			sb.WriteByte(cell.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
