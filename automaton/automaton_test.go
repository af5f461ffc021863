package automaton

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const glider = ".#.\n..#\n###"

func TestCoord(t *testing.T) {
	t.Run("equal values are equal keys", func(t *testing.T) {
		require.Equal(t, NewCoord(1, -2, 3), NewCoord(1, -2, 3))
		require.NotEqual(t, NewCoord(1, 2), NewCoord(1, 2, 0))

		set := NewActiveSet(NewCoord(-5, 7))
		require.True(t, set.Has(NewCoord(-5, 7)))
	})

	t.Run("components survive packing", func(t *testing.T) {
		c := NewCoord(-1, 0, 1<<40)
		require.Equal(t, 3, c.Dim())
		require.Equal(t, []int{-1, 0, 1 << 40}, c.Values())
		require.Equal(t, "(-1,0,1099511627776)", c.String())
	})

	t.Run("add and extend", func(t *testing.T) {
		require.Equal(t, NewCoord(0, 3), NewCoord(1, 1).Add(NewCoord(-1, 2)))
		require.Equal(t, NewCoord(4, 5, 0, 0), NewCoord(4, 5).Extend(4))
		require.Panics(t, func() { NewCoord(1).Add(NewCoord(1, 1)) })
	})
}

func TestMoore(t *testing.T) {
	for dim, want := range map[int]int{1: 2, 2: 8, 3: 26, 4: 80} {
		neighbours := Moore(dim).Neighbours(NewCoord(make([]int, dim)...))
		require.Len(t, neighbours, want, "dimension %d", dim)

		unique := NewActiveSet(neighbours...)
		require.Equal(t, want, unique.Len())
		require.False(t, unique.Has(NewCoord(make([]int, dim)...)), "Origin is not its own neighbour")
	}
}

func TestEvolve(t *testing.T) {
	t.Run("cube example", func(t *testing.T) {
		for _, tt := range []struct {
			dim      int
			afterOne int
			afterSix int
		}{
			{dim: 3, afterOne: 11, afterSix: 112},
			{dim: 4, afterOne: 29, afterSix: 848},
		} {
			seed, err := ParseSeed(strings.NewReader(glider), '#', tt.dim)
			require.NoError(t, err)
			require.Equal(t, 5, seed.Len())

			require.Equal(t, tt.afterOne, Evolve(seed, 1, Conway(), Moore(tt.dim)).Len())
			require.Equal(t, tt.afterSix, Evolve(seed, 6, Conway(), Moore(tt.dim)).Len())
			require.Equal(t, 5, seed.Len(), "Evolve should not modify its input")
		}
	})

	t.Run("zero ticks is the identity", func(t *testing.T) {
		seed, err := ParseSeed(strings.NewReader(glider), '#', 3)
		require.NoError(t, err)

		out := Evolve(seed, 0, Conway(), Moore(3))
		require.True(t, out.Equal(seed))

		out.Add(NewCoord(9, 9, 9))
		require.False(t, seed.Has(NewCoord(9, 9, 9)), "Zero ticks should still return a copy")
	})

	t.Run("blinker oscillates", func(t *testing.T) {
		horizontal := NewActiveSet(NewCoord(0, 1), NewCoord(1, 1), NewCoord(2, 1))
		vertical := NewActiveSet(NewCoord(1, 0), NewCoord(1, 1), NewCoord(1, 2))

		next := Step(horizontal, Conway(), Moore(2))
		if diff := cmp.Diff(vertical.Coords(), next.Coords(), cmp.Comparer(func(a, b Coord) bool { return a == b })); diff != "" {
			t.Fatalf("blinker step mismatch (-want +got):\n%s", diff)
		}
		require.True(t, Evolve(horizontal, 2, Conway(), Moore(2)).Equal(horizontal))
	})

	t.Run("empty set stays empty", func(t *testing.T) {
		require.Zero(t, Evolve(NewActiveSet(), 10, Conway(), Moore(3)).Len())
	})

	t.Run("isolated cell survives on zero", func(t *testing.T) {
		rule := Rule{Survive: []int{0}, Birth: []int{3}}
		set := NewActiveSet(NewCoord(0, 0))
		require.True(t, Step(set, rule, Moore(2)).Equal(set))
	})

	t.Run("observer sees every tick", func(t *testing.T) {
		seed, err := ParseSeed(strings.NewReader(glider), '#', 3)
		require.NoError(t, err)

		var sizes []int
		Run(seed, 3, Conway(), Moore(3), func(tick int, set ActiveSet) {
			require.Equal(t, len(sizes)+1, tick)
			sizes = append(sizes, set.Len())
		})
		require.Equal(t, []int{11, 21, 38}, sizes)
	})
}

func TestRuleValidate(t *testing.T) {
	require.NoError(t, Conway().Validate())
	require.NoError(t, HexTiles().Validate())
	require.Error(t, Rule{Birth: []int{0}}.Validate())
	require.Error(t, Rule{Survive: []int{-1}}.Validate())

	t.Run("evolving with an invalid rule panics", func(t *testing.T) {
		set := NewActiveSet(NewCoord(0, 0))
		require.Panics(t, func() { Evolve(set, 1, Rule{Birth: []int{0}}, Moore(2)) })
		require.Panics(t, func() { Run(set, 0, Rule{Survive: []int{-1}}, Moore(2), nil) })
	})
}

func TestParseSeed(t *testing.T) {
	t.Run("columns are x and rows are y", func(t *testing.T) {
		set, err := ParseSeed(strings.NewReader(glider), '#', 2)
		require.NoError(t, err)

		want := []Coord{NewCoord(0, 2), NewCoord(1, 0), NewCoord(1, 2), NewCoord(2, 1), NewCoord(2, 2)}
		if diff := cmp.Diff(want, set.Coords(), cmp.Comparer(func(a, b Coord) bool { return a == b })); diff != "" {
			t.Fatalf("seed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("custom glyph", func(t *testing.T) {
		set, err := ParseSeed(strings.NewReader("o.\n.o\n"), 'o', 3)
		require.NoError(t, err)
		require.True(t, set.Has(NewCoord(0, 0, 0)))
		require.True(t, set.Has(NewCoord(1, 1, 0)))
	})

	failures := []struct {
		name  string
		input string
		dim   int
	}{
		{name: "unknown glyph", input: ".#x", dim: 3},
		{name: "ragged rows", input: "..#\n.#", dim: 3},
		{name: "too few dimensions", input: ".#", dim: 1},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(tt.input), '#', tt.dim)
			require.Error(t, err)
		})
	}
}
