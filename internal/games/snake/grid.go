// Package snake implements the grid-based creature simulation: a segmented
// body on a toroidal grid, ordinary and special consumables, the S-shape
// pattern bonus, and the session state machine that orders them per tick.
//
// The package is pure: it never reads the wall clock or the terminal.
// Callers pass the current time into Session.Tick and read a Snapshot back.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Position is a cell coordinate. Positions held by game entities are always
// normalized into the grid.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents a unit heading. Y grows downward.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every heading in a fixed order.
var Directions = [4]Direction{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size toroidal grid.
type Grid struct {
	Width, Height int
}

// Normalize maps any integer pair into [0,Width)×[0,Height).
func (g Grid) Normalize(x, y int) Position {
	return Position{X: core.Mod(x, g.Width), Y: core.Mod(y, g.Height)}
}

// Step returns the normalized neighbor of p in direction d.
func (g Grid) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return g.Normalize(p.X+dx, p.Y+dy)
}

// Contains reports whether p is already normalized.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Distance returns the wrap-aware Manhattan distance between two cells.
func (g Grid) Distance(a, b Position) int {
	dx := core.Abs(a.X - b.X)
	dy := core.Abs(a.Y - b.Y)
	return min(dx, g.Width-dx) + min(dy, g.Height-dy)
}

// RandomCell returns a uniformly random cell.
func (g Grid) RandomCell(rng *rand.Rand) Position {
	return Position{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// RandomFreeCell samples cells uniformly until one is not occupied. After
// Area() rejected samples it falls back to a uniform pick among the free
// cells found by a full scan. It returns false only when every cell is occupied.
func (g Grid) RandomFreeCell(rng *rand.Rand, occupied func(Position) bool) (Position, bool) {
	for range g.Area() {
		p := g.RandomCell(rng)
		if !occupied(p) {
			return p, true
		}
	}

	var free []Position
	for y := range g.Height {
		for x := range g.Width {
			p := Position{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{X: -1, Y: -1}, false
	}
	return free[rng.Intn(len(free))], true
}
