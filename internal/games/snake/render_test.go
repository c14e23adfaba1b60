package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func renderTestSnapshot(t *testing.T) (*Session, Snapshot) {
	t.Helper()
	s := newTestSession(t, grid10)
	s.body = NewBody(s.grid, []Position{{5, 5}, {4, 5}, {3, 5}}, DirRight, 3)
	s.food = Food{Pos: Position{1, 1}, Present: true}
	return s, s.Snapshot()
}

// cellOrigin returns the screen column and row of grid cell p for an
// 80x40 screen and a 10x10 grid.
func cellOrigin(p Position) (x, y int) {
	reqW, _ := RequiredSize(10, 10)
	offX := (80 - reqW) / 2
	return offX + 1 + p.X*CellWidth, hudHeight + 1 + p.Y
}

func TestRenderBoard(t *testing.T) {
	_, snap := renderTestSnapshot(t)
	screen := core.NewScreen(80, 40)
	Render(snap, screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Length: 3") {
		t.Errorf("HUD = %q", row)
	}

	hx, hy := cellOrigin(Position{5, 5})
	if c := screen.GetCell(hx, hy); c.Rune != '█' || c.Color != snap.Palette.Head {
		t.Errorf("head cell = %+v", c)
	}
	bx, by := cellOrigin(Position{4, 5})
	if c := screen.GetCell(bx, by); c.Rune != '▓' || c.Color != snap.Palette.Body {
		t.Errorf("body cell = %+v", c)
	}
	fx, fy := cellOrigin(Position{1, 1})
	if c := screen.GetCell(fx, fy); c.Rune != '(' || c.Color != core.ColorRed {
		t.Errorf("food cell = %+v", c)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"paused", StatePaused, "Paused"},
		{"ended", StateEnded, "Game Over"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, snap := renderTestSnapshot(t)
			snap.State = tt.state
			snap.Score = 70

			screen := core.NewScreen(80, 40)
			Render(snap, screen)
			out := screen.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("missing %q in:\n%s", tt.want, out)
			}
			if tt.state == StateEnded && !strings.Contains(out, "Score: 70  Press R") {
				t.Errorf("final score missing:\n%s", out)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	_, snap := renderTestSnapshot(t)
	screen := core.NewScreen(20, 10)
	Render(snap, screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("no size warning:\n%s", screen.String())
	}
}

func TestRenderMessageLine(t *testing.T) {
	_, snap := renderTestSnapshot(t)
	snap.Message = "Special food +50!"
	screen := core.NewScreen(80, 40)
	Render(snap, screen)
	if !strings.Contains(screen.Row(1), "Special food +50!") {
		t.Errorf("message row = %q", screen.Row(1))
	}

	snap.Message = ""
	snap.PatternClaimed = true
	Render(snap, screen)
	if !strings.Contains(screen.Row(1), "S-shape bonus") {
		t.Errorf("banner row = %q", screen.Row(1))
	}
	if !strings.Contains(screen.Row(0), "Bonus: cooldown") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestSpecialFlashes(t *testing.T) {
	if !specialVisible(10 * time.Second) {
		t.Error("hidden at 10s remaining")
	}
	if specialVisible(10*time.Second - 200*time.Millisecond + time.Millisecond) {
		t.Error("visible during the off phase")
	}
	if !specialVisible(9600 * time.Millisecond) {
		t.Error("hidden at 9.6s remaining")
	}
}
