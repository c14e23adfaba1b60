package snake

import (
	"math/rand"
	"time"
)

// Food is the ordinary consumable. Exactly one is live while a free cell exists.
type Food struct {
	Pos     Position
	Present bool
}

// Relocate moves the item to a random cell not occupied. Present is false
// only when the grid has no free cell left.
func (f *Food) Relocate(grid Grid, rng *rand.Rand, occupied func(Position) bool) {
	f.Pos, f.Present = grid.RandomFreeCell(rng, occupied)
}

// SpecialFood is the time-limited bonus item.
type SpecialFood struct {
	Pos       Position
	Active    bool
	SpawnedAt time.Time
	Duration  time.Duration
	Chance    float64 // Per-tick activation probability while inactive
}

// TrySpawn activates the item with probability Chance, at a random free
// cell. It does nothing while active. Returns true on activation.
func (s *SpecialFood) TrySpawn(now time.Time, grid Grid, rng *rand.Rand, occupied func(Position) bool) bool {
	if s.Active || rng.Float64() >= s.Chance {
		return false
	}
	pos, ok := grid.RandomFreeCell(rng, occupied)
	if !ok {
		return false
	}
	s.Pos = pos
	s.Active = true
	s.SpawnedAt = now
	return true
}

// Expire deactivates the item once its duration has elapsed.
// Returns true if it expired on this call.
func (s *SpecialFood) Expire(now time.Time) bool {
	if !s.Active || now.Sub(s.SpawnedAt) < s.Duration {
		return false
	}
	s.Active = false
	return true
}

// Consume deactivates the item immediately.
func (s *SpecialFood) Consume() {
	s.Active = false
}

// Remaining returns the time left before expiry, zero when inactive.
func (s *SpecialFood) Remaining(now time.Time) time.Duration {
	if !s.Active {
		return 0
	}
	return max(s.Duration-now.Sub(s.SpawnedAt), 0)
}
