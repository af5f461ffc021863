package automaton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"crabsim/meta"
)

var ErrParse = errors.New("parse error")

// ParseSeed reads a 2-D grid of active and inactive glyphs. The glyph in
// column x of row y becomes the coord (x, y) extended with zeros up to dim.
func ParseSeed(r io.Reader, active rune, dim int) (ActiveSet, error) {
	if dim < 2 {
		return nil, fmt.Errorf("seed needs at least 2 dimensions, got %d", dim)
	}
	if active == meta.INACTIVE_GLYPH {
		return nil, fmt.Errorf("active glyph %q is the inactive glyph", active)
	}

	set := NewActiveSet()
	scanner := bufio.NewScanner(r)
	width := -1
	y := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		row := []rune(line)
		if width >= 0 && len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrParse, y, len(row), width)
		}
		width = len(row)

		for x, glyph := range row {
			switch glyph {
			case active:
				set.Add(NewCoord(x, y).Extend(dim))
			case meta.INACTIVE_GLYPH:
			default:
				return nil, fmt.Errorf("%w: row %d col %d: unexpected glyph %q", ErrParse, y, x, glyph)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return set, nil
}
