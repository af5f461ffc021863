package automaton

import "sort"

// ActiveSet holds the live cells. Every coord not in the set is inactive.
type ActiveSet map[Coord]struct{}

func NewActiveSet(coords ...Coord) ActiveSet {
	s := make(ActiveSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s ActiveSet) Len() int {
	return len(s)
}

func (s ActiveSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s ActiveSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Toggle flips c between active and inactive.
func (s ActiveSet) Toggle(c Coord) {
	if s.Has(c) {
		delete(s, c)
		return
	}
	s.Add(c)
}

// Coords returns the live cells in a stable order.
func (s ActiveSet) Coords() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
	return coords
}

func (s ActiveSet) Clone() ActiveSet {
	setCopy := make(ActiveSet, len(s))
	for c := range s {
		setCopy[c] = struct{}{}
	}
	return setCopy
}

func (s ActiveSet) Equal(o ActiveSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}
