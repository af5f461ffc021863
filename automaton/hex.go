package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseHexPaths reads one path per line, each a run of e, w, ne, nw, se and
// sw steps from the reference tile, and returns the tile each path ends on.
func ParseHexPaths(r io.Reader) ([]Coord, error) {
	var tiles []Coord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tile, err := walkHexPath(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
		}
		tiles = append(tiles, tile)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hex paths: %w", err)
	}
	return tiles, nil
}

func walkHexPath(path string) (Coord, error) {
	pos := NewCoord(0, 0)
	for i := 0; i < len(path); i++ {
		var step Coord
		switch path[i] {
		case 'e':
			step = HexE
		case 'w':
			step = HexW
		case 'n', 's':
			if i+1 == len(path) {
				return Coord{}, fmt.Errorf("path ends mid-step at %q", path[i:])
			}
			switch path[i : i+2] {
			case "ne":
				step = HexNE
			case "nw":
				step = HexNW
			case "se":
				step = HexSE
			case "sw":
				step = HexSW
			default:
				return Coord{}, fmt.Errorf("unknown step %q", path[i:i+2])
			}
			i++
		default:
			return Coord{}, fmt.Errorf("unknown step %q", path[i])
		}
		pos = pos.Add(step)
	}
	return pos, nil
}

// FlipTiles toggles each tile in turn, starting from all inactive.
func FlipTiles(tiles []Coord) ActiveSet {
	set := NewActiveSet()
	for _, tile := range tiles {
		set.Toggle(tile)
	}
	return set
}
