package snake

import (
	"math/rand"
	"slices"
)

// MoveOutcome is the result of a single Body.Move.
type MoveOutcome int

const (
	Advanced MoveOutcome = iota
	Collided
)

func (o MoveOutcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "advanced"
}

// Body is the creature's ordered segment sequence, head at index 0.
//
// Invariants at rest: no two segments share a cell, and
// len(segments) <= growTarget.
type Body struct {
	grid       Grid
	segments   []Position
	heading    Direction
	growTarget int

	// Tail cell removed by the latest Advanced move, so growth applied in
	// the same tick can take effect immediately.
	trimmed    Position
	hasTrimmed bool
}

// NewBody creates a body from explicit segments (head first). Segments are
// normalized. growTarget is raised to len(segments) if lower.
func NewBody(grid Grid, segments []Position, heading Direction, growTarget int) *Body {
	segs := make([]Position, len(segments))
	for i, p := range segments {
		segs[i] = grid.Normalize(p.X, p.Y)
	}
	return &Body{
		grid:       grid,
		segments:   segs,
		heading:    heading,
		growTarget: max(growTarget, len(segs)),
	}
}

// SpawnBody places a straight body of the given length at a random cell with
// a random heading. The tail trails behind the head, so the first move never
// reverses into it.
func SpawnBody(grid Grid, rng *rand.Rand, length int) *Body {
	head := grid.RandomCell(rng)
	heading := Directions[rng.Intn(len(Directions))]
	dx, dy := heading.Delta()

	segs := make([]Position, length)
	for i := range segs {
		segs[i] = grid.Normalize(head.X-i*dx, head.Y-i*dy)
	}
	return &Body{
		grid:       grid,
		segments:   segs,
		heading:    heading,
		growTarget: length,
	}
}

// Head returns the head position.
func (b *Body) Head() Position {
	return b.segments[0]
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Position {
	return slices.Clone(b.segments)
}

// Len returns the current number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Heading returns the direction used by the next move.
func (b *Body) Heading() Direction {
	return b.heading
}

// GrowTarget returns the length the body is entitled to occupy.
func (b *Body) GrowTarget() int {
	return b.growTarget
}

// Occupies reports whether any segment is at p.
func (b *Body) Occupies(p Position) bool {
	return slices.Contains(b.segments, p)
}

// Turn sets the heading for the next move. An exact reversal is dropped
// while the body is longer than one segment. Returns whether the heading
// was accepted.
func (b *Body) Turn(d Direction) bool {
	if len(b.segments) > 1 && d == b.heading.Opposite() {
		return false
	}
	b.heading = d
	return true
}

// Move advances the head one cell. If the new head lands on any segment
// other than the current head the body is left untouched and Collided is
// returned.
func (b *Body) Move() MoveOutcome {
	b.hasTrimmed = false
	newHead := b.grid.Step(b.Head(), b.heading)
	if slices.Contains(b.segments[1:], newHead) {
		return Collided
	}

	b.segments = slices.Insert(b.segments, 0, newHead)
	if len(b.segments) > b.growTarget {
		last := len(b.segments) - 1
		b.trimmed = b.segments[last]
		b.hasTrimmed = true
		b.segments = b.segments[:last]
	}
	return Advanced
}

// Grow raises the growth target by one. When the latest move trimmed the
// tail, the tail is restored so the extra length shows up this tick.
func (b *Body) Grow() {
	b.growTarget++
	if b.hasTrimmed && len(b.segments) < b.growTarget {
		b.segments = append(b.segments, b.trimmed)
		b.hasTrimmed = false
	}
}
