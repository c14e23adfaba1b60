package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func TestReversalGuard(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	b := NewBody(g, []Position{{5, 5}, {4, 5}, {3, 5}}, DirRight, 3)

	if b.Turn(DirLeft) {
		t.Error("reversal accepted")
	}
	if b.Heading() != DirRight {
		t.Errorf("heading = %v, want right", b.Heading())
	}

	if !b.Turn(DirUp) || b.Heading() != DirUp {
		t.Errorf("perpendicular turn rejected, heading %v", b.Heading())
	}
}

func TestReversalAllowedForSingleSegment(t *testing.T) {
	b := NewBody(Grid{Width: 10, Height: 10}, []Position{{5, 5}}, DirRight, 1)
	if !b.Turn(DirLeft) {
		t.Error("single segment body should reverse freely")
	}
}

func TestMoveWrapsRightEdge(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	b := NewBody(g, []Position{{9, 5}, {8, 5}, {7, 5}}, DirRight, 3)

	if got := b.Move(); got != Advanced {
		t.Fatalf("Move() = %v", got)
	}
	want := []Position{{0, 5}, {9, 5}, {8, 5}}
	if !slices.Equal(b.Segments(), want) {
		t.Errorf("segments = %v, want %v", b.Segments(), want)
	}
}

func TestCollision(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	tests := []struct {
		name     string
		segments []Position
		heading  Direction
	}{
		{
			name:     "head runs into the second segment",
			segments: []Position{{5, 5}, {4, 5}, {3, 5}, {4, 5}},
			heading:  DirLeft,
		},
		{
			name:     "coiled body",
			segments: []Position{{5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}},
			heading:  DirLeft,
		},
		{
			name:     "tail still blocks",
			segments: []Position{{5, 5}, {5, 6}, {4, 6}, {4, 5}},
			heading:  DirLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(g, tt.segments, tt.heading, len(tt.segments))
			before := b.Segments()

			if got := b.Move(); got != Collided {
				t.Fatalf("Move() = %v, want collided", got)
			}
			if !slices.Equal(b.Segments(), before) {
				t.Errorf("collision mutated body: %v -> %v", before, b.Segments())
			}
		})
	}
}

func TestGrowRestoresTrimmedTail(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	b := NewBody(g, []Position{{5, 5}, {4, 5}, {3, 5}}, DirRight, 3)

	b.Move()
	b.Grow()

	want := []Position{{6, 5}, {5, 5}, {4, 5}, {3, 5}}
	if !slices.Equal(b.Segments(), want) {
		t.Errorf("segments = %v, want %v", b.Segments(), want)
	}
	if b.GrowTarget() != 4 {
		t.Errorf("growTarget = %d, want 4", b.GrowTarget())
	}

	// Growth is not applied twice for the same move.
	b.Grow()
	if b.Len() != 4 || b.GrowTarget() != 5 {
		t.Errorf("len=%d target=%d, want 4 and 5", b.Len(), b.GrowTarget())
	}
	b.Move()
	if b.Len() != 5 {
		t.Errorf("len after pending growth = %d, want 5", b.Len())
	}
}

func TestNoDuplicatesAfterMoves(t *testing.T) {
	g := Grid{Width: 12, Height: 9}
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := SpawnBody(g, rng, 3)

		for step := range 500 {
			b.Turn(Directions[rng.Intn(4)])
			if b.Move() == Collided {
				break
			}
			if rng.Intn(5) == 0 {
				b.Grow()
			}

			seen := make(map[Position]bool, b.Len())
			for _, p := range b.segments {
				if !g.Contains(p) {
					t.Fatalf("seed %d step %d: %v out of bounds", seed, step, p)
				}
				if seen[p] {
					t.Fatalf("seed %d step %d: duplicate %v in %v", seed, step, p, b.segments)
				}
				seen[p] = true
			}
			if b.Len() > b.GrowTarget() {
				t.Fatalf("seed %d step %d: len %d > target %d", seed, step, b.Len(), b.GrowTarget())
			}
		}
	}
}

func TestSpawnBody(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	rng := rand.New(rand.NewSource(7))
	for range 50 {
		b := SpawnBody(g, rng, 3)
		if b.Len() != 3 || b.GrowTarget() != 3 {
			t.Fatalf("len=%d target=%d", b.Len(), b.GrowTarget())
		}
		// The tail trails the head, so the first move is always legal.
		if b.Move() != Advanced {
			t.Fatalf("first move collided: %v heading %v", b.Segments(), b.Heading())
		}
	}
}
