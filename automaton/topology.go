package automaton

// Topology lists the neighbours of a cell.
type Topology interface {
	Neighbours(c Coord) []Coord
}

type offsetTopology struct {
	offsets []Coord
}

// Offsets builds a topology from a fixed list of relative offsets.
func Offsets(offsets ...Coord) Topology {
	return &offsetTopology{offsets: offsets}
}

func (t *offsetTopology) Neighbours(c Coord) []Coord {
	neighbours := make([]Coord, len(t.offsets))
	for i, offset := range t.offsets {
		neighbours[i] = c.Add(offset)
	}
	return neighbours
}

// Moore is the d-dimensional Moore neighbourhood: every vector in
// {-1,0,1}^d except the zero vector, 3^d - 1 offsets in all.
func Moore(dim int) Topology {
	if dim < 1 {
		panic("moore neighbourhood needs at least one dimension")
	}
	total := 1
	for i := 0; i < dim; i++ {
		total *= 3
	}

	offsets := make([]Coord, 0, total-1)
	digits := make([]int, dim)
	for n := 0; n < total; n++ {
		// Count in base 3, mapping digits 0,1,2 to -1,0,1.
		zero := true
		rem := n
		for i := range digits {
			digits[i] = rem%3 - 1
			rem /= 3
			if digits[i] != 0 {
				zero = false
			}
		}
		if !zero {
			offsets = append(offsets, NewCoord(digits...))
		}
	}
	return Offsets(offsets...)
}

// Hex directions on axial coordinates with basis vectors E and NE.
var (
	HexE  = NewCoord(1, 0)
	HexW  = NewCoord(-1, 0)
	HexNE = NewCoord(0, 1)
	HexNW = NewCoord(-1, 1)
	HexSE = NewCoord(1, -1)
	HexSW = NewCoord(0, -1)
)

// Hex is the six-neighbour hexagonal tiling.
func Hex() Topology {
	return Offsets(HexE, HexW, HexNE, HexNW, HexSE, HexSW)
}
