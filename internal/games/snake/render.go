package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellWidth is the number of screen columns per grid cell. Terminal glyphs
// are roughly twice as tall as wide, so two columns keep cells square.
const CellWidth = 2

// hudHeight covers the status line and the message line.
const hudHeight = 2

// flashPeriod toggles the special item's visibility.
const flashPeriod = 200 * time.Millisecond

// RequiredSize returns the smallest screen that fits the board.
func RequiredSize(gridW, gridH int) (w, h int) {
	return gridW*CellWidth + 2, gridH + 2 + hudHeight
}

// Render draws snap into dst.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	renderHUD(snap, dst)

	reqW, reqH := RequiredSize(snap.Width, snap.Height)
	if dst.Width() < reqW || dst.Height() < reqH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	offX := (dst.Width() - reqW) / 2
	offY := hudHeight
	dst.DrawBox(core.NewRect(offX, offY, reqW, snap.Height+2), core.ColorGray)

	// cell draws a grid cell inside the border.
	cell := func(p Position, glyph string, c core.Color) {
		dst.DrawTextColored(offX+1+p.X*CellWidth, offY+1+p.Y, glyph, c)
	}

	if snap.FoodPresent {
		cell(snap.Food, "()", core.ColorRed)
	}
	if snap.SpecialActive && specialVisible(snap.SpecialRemaining) {
		cell(snap.Special, "<>", core.ColorGold)
	}

	// Tail first so the head wins if cells ever overlap on screen.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		if seg.Head {
			cell(seg.Position, "██", snap.Palette.Head)
		} else {
			cell(seg.Position, "▓▓", snap.Palette.Body)
		}
	}

	switch snap.State {
	case StateEnded:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", snap.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// specialVisible blinks the special item during each alternate flash period.
func specialVisible(remaining time.Duration) bool {
	return (remaining/flashPeriod)%2 == 0
}

func renderHUD(snap Snapshot, dst *core.Screen) {
	bonus := "ready"
	if snap.PatternClaimed {
		bonus = "cooldown"
	}
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Bonus: %s  Speed: %d",
		snap.Score, snap.GrowTarget, bonus, snap.TickRate)
	dst.DrawText(0, 0, hud)

	switch {
	case snap.Message != "":
		dst.DrawTextCentered(1, snap.Message, core.ColorGold)
	case snap.PatternClaimed:
		dst.DrawTextCentered(1, fmt.Sprintf("S-shape bonus +%d!", snap.PatternPoints), core.ColorPurple)
	case snap.SpecialActive:
		dst.DrawTextCentered(1, fmt.Sprintf("Special food: %.1fs", snap.SpecialRemaining.Seconds()), core.ColorYellow)
	}
}

// renderOverlay draws a centered two-line box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
