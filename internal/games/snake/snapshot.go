package snake

import (
	"time"
)

// Segment is one body cell as seen by the renderer.
type Segment struct {
	Position
	Head bool
}

// Snapshot is an immutable view of the session after the latest tick.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int

	Segments []Segment // Head first
	Heading  Direction

	Food        Position
	FoodPresent bool

	Special          Position
	SpecialActive    bool
	SpecialRemaining time.Duration

	Score      int
	GrowTarget int

	PatternAvailable bool
	PatternClaimed   bool
	PatternPoints    int // Award for the S-shape, shown while claimed

	Message string // Empty when no message is showing

	State    State
	TickRate int
	Palette  Palette

	// At is the time of the latest tick, zero before the first one.
	At time.Time
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	segs := make([]Segment, len(s.body.segments))
	for i, p := range s.body.segments {
		segs[i] = Segment{Position: p, Head: i == 0}
	}

	return Snapshot{
		Tick:             s.tick,
		Width:            s.grid.Width,
		Height:           s.grid.Height,
		Segments:         segs,
		Heading:          s.body.Heading(),
		Food:             s.food.Pos,
		FoodPresent:      s.food.Present,
		Special:          s.special.Pos,
		SpecialActive:    s.special.Active,
		SpecialRemaining: s.special.Remaining(s.now),
		Score:            s.score,
		GrowTarget:       s.body.GrowTarget(),
		PatternAvailable: s.pattern.Available(),
		PatternClaimed:   s.pattern.Claimed(),
		PatternPoints:    s.cfg.Scoring.Pattern,
		Message:          s.message,
		State:            s.state,
		TickRate:         s.tickRate,
		Palette:          s.palette,
		At:               s.now,
	}
}

// Occupied reports whether a body segment covers p.
func (snap Snapshot) Occupied(p Position) bool {
	for _, seg := range snap.Segments {
		if seg.Position == p {
			return true
		}
	}
	return false
}

// Head returns the head position.
func (snap Snapshot) Head() Position {
	if len(snap.Segments) == 0 {
		return Position{}
	}
	return snap.Segments[0].Position
}
