package automaton

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const coordWidth = 8

// Coord is an immutable integer vector of any dimension. Coords are
// comparable, so equal vectors are equal map keys.
type Coord struct {
	packed string // big-endian int64 per component
}

func NewCoord(values ...int) Coord {
	buf := make([]byte, 0, coordWidth*len(values))
	for _, v := range values {
		buf = binary.BigEndian.AppendUint64(buf, uint64(int64(v)))
	}
	return Coord{packed: string(buf)}
}

func (c Coord) Dim() int {
	return len(c.packed) / coordWidth
}

// At returns component i.
func (c Coord) At(i int) int {
	return int(int64(binary.BigEndian.Uint64([]byte(c.packed[i*coordWidth : (i+1)*coordWidth]))))
}

func (c Coord) Values() []int {
	values := make([]int, c.Dim())
	for i := range values {
		values[i] = c.At(i)
	}
	return values
}

// Add returns c + o. Both must have the same dimension.
func (c Coord) Add(o Coord) Coord {
	if c.Dim() != o.Dim() {
		panic(fmt.Sprintf("adding coords of dimension %d and %d", c.Dim(), o.Dim()))
	}
	sum := make([]int, c.Dim())
	for i := range sum {
		sum[i] = c.At(i) + o.At(i)
	}
	return NewCoord(sum...)
}

// Extend pads c with zeros up to dim components.
func (c Coord) Extend(dim int) Coord {
	if dim <= c.Dim() {
		return c
	}
	values := c.Values()
	for len(values) < dim {
		values = append(values, 0)
	}
	return NewCoord(values...)
}

// Less orders coords by dimension, then component by component.
func (c Coord) Less(o Coord) bool {
	if c.Dim() != o.Dim() {
		return c.Dim() < o.Dim()
	}
	for i := 0; i < c.Dim(); i++ {
		if a, b := c.At(i), o.At(i); a != b {
			return a < b
		}
	}
	return false
}

func (c Coord) String() string {
	parts := make([]string, c.Dim())
	for i := range parts {
		parts[i] = strconv.Itoa(c.At(i))
	}
	return "(" + strings.Join(parts, ",") + ")"
}
