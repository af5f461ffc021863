package seating

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Policy decides how many occupied seats a cell sees and how many of them
// make an occupied seat empty.
type Policy interface {
	Name() string
	Count(g Grid, row, col int) int
	Threshold() int
}

// Adjacent looks at the eight bordering cells only.
type Adjacent struct{}

func (Adjacent) Name() string { return "adjacent" }

func (Adjacent) Threshold() int { return 4 }

func (Adjacent) Count(g Grid, row, col int) int {
	n := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) && g.At(r, c) == Occupied {
			n++
		}
	}
	return n
}

// Visible looks along each of the eight directions past floor to the first
// seat. Running off the grid sees nothing.
type Visible struct{}

func (Visible) Name() string { return "visible" }

func (Visible) Threshold() int { return 5 }

func (Visible) Count(g Grid, row, col int) int {
	n := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		for g.InBounds(r, c) {
			if cell := g.At(r, c); cell != Floor {
				if cell == Occupied {
					n++
				}
				break
			}
			r, c = r+d[0], c+d[1]
		}
	}
	return n
}
