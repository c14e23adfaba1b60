package snake

import (
	"math/rand"
	"testing"
	"time"
)

// sShapeSegments satisfies the horizontal S-shape rule. It repeats cells,
// so no real body can hold it.
var sShapeSegments = []Position{
	{5, 1}, {5, 1}, {5, 2}, {6, 2}, {6, 2}, {7, 3}, {7, 3},
}

func transpose(segs []Position) []Position {
	out := make([]Position, len(segs))
	for i, p := range segs {
		out[i] = Position{X: p.Y, Y: p.X}
	}
	return out
}

func TestMatchesSShape(t *testing.T) {
	tests := []struct {
		name     string
		segments []Position
		want     bool
	}{
		{"horizontal", sShapeSegments, true},
		{"vertical", transpose(sShapeSegments), true},
		{"too short", sShapeSegments[:6], false},
		{"straight line", []Position{{6, 0}, {5, 0}, {4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0}}, false},
		{"zigzag", []Position{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}}, false},
		{"drawn S", []Position{{2, 0}, {1, 0}, {0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesSShape(tt.segments); got != tt.want {
				t.Errorf("MatchesSShape(%v) = %v, want %v", tt.segments, got, tt.want)
			}
		})
	}
}

func TestBonusCooldown(t *testing.T) {
	p := NewPatternBonus(3 * time.Second)
	score := 0
	claim := func(now time.Time) {
		p.Refresh(now)
		if p.Check(sShapeSegments, now) {
			score += 100
		}
	}

	claim(at(0))
	if score != 100 {
		t.Fatalf("score after first match = %d, want 100", score)
	}
	if p.Available() || !p.Claimed() {
		t.Fatalf("available=%v claimed=%v after claim", p.Available(), p.Claimed())
	}

	claim(at(1000))
	if score != 100 {
		t.Errorf("score during cooldown = %d, want 100", score)
	}

	if !p.Refresh(at(3001)) {
		t.Fatal("did not re-arm at t=3001")
	}
	if !p.Available() || p.Claimed() {
		t.Errorf("available=%v claimed=%v after cooldown", p.Available(), p.Claimed())
	}
}

func TestBonusFlagsNeverBothSet(t *testing.T) {
	p := NewPatternBonus(time.Second)
	for ms := 0; ms < 10000; ms += 100 {
		now := at(ms)
		p.Refresh(now)
		p.Check(sShapeSegments, now)
		if p.Available() && p.Claimed() {
			t.Fatalf("both flags set at %dms", ms)
		}
	}
}

// The rule needs segments 0 and 1 on one cell, so real movement never
// produces a match.
func TestSShapeUnreachableByMovement(t *testing.T) {
	g := Grid{Width: 8, Height: 8}
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := SpawnBody(g, rng, 7)
		for range 400 {
			b.Turn(Directions[rng.Intn(4)])
			if b.Move() == Collided {
				break
			}
			if MatchesSShape(b.segments) {
				t.Fatalf("seed %d: movement produced a match: %v", seed, b.segments)
			}
		}
	}
}
