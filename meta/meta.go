// meta/meta.go
package meta

// CUBE_TICKS defines the number of ticks the cube automaton runs for.
const CUBE_TICKS = 6

// CUBE_DIMENSIONS defines the dimensions for part one and part two of the cube automaton.
var CUBE_DIMENSIONS = [2]int{3, 4}

// HEX_DAYS defines the number of ticks the hex tile automaton runs for.
const HEX_DAYS = 100

// MAX_SEATING_TICKS bounds the fixed point search of the seating automaton.
const MAX_SEATING_TICKS = 1000

// MAX_ROUNDS bounds a combat game without cycle detection.
const MAX_ROUNDS = 100000

// ACTIVE_GLYPH marks an active cell in an automaton seed.
const ACTIVE_GLYPH = '#'

// INACTIVE_GLYPH marks an inactive cell in an automaton seed.
const INACTIVE_GLYPH = '.'
