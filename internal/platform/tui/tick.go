// Package tui provides the Bubble Tea integration for the snake game.
// It owns the frame clock, maps keys to session commands and turns the
// rendered screen buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a period.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval for tickRate. The model schedules the next tick itself, so
// rate changes take effect from the following frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// defaultRuntime fills unset fields with the platform defaults.
func defaultRuntime(cfg core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 {
		cfg.ScreenW = def.ScreenW
	}
	if cfg.ScreenH <= 0 {
		cfg.ScreenH = def.ScreenH
	}
	return cfg
}
