package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core colors to ANSI 256 palette indexes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorDarkGreen:     "28",
	core.ColorPurple:        "129",
	core.ColorOrange:        "208",
	core.ColorGold:          "220",
	core.ColorGray:          "245",
}

// Bonus colors are drawn bold so they stand out from the board.
var boldColors = map[core.Color]bool{
	core.ColorGold:   true,
	core.ColorPurple: true,
}

// colorStyles is built once from colorCodes.
var colorStyles = buildStyles()

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range colorCodes {
		styles[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(code)).
			Bold(boldColors[c])
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a run costs one escape
// sequence rather than one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := core.ColorDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
