package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Restart    key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Resume, k.Restart},
		{k.Faster, k.Slower, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("c", " ", "enter"),
			key.WithHelp("c/space", "resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key press into a session command. The pause key
// toggles, so the current state is needed; rate is the current tick rate.
// ok is false for keys that are not game commands.
func (k KeyMap) Command(msg tea.KeyMsg, state snake.State, rate int) (cmd snake.Command, ok bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return snake.QuitCmd(), true
	case key.Matches(msg, k.Up):
		return snake.TurnCmd(snake.DirUp), true
	case key.Matches(msg, k.Down):
		return snake.TurnCmd(snake.DirDown), true
	case key.Matches(msg, k.Left):
		return snake.TurnCmd(snake.DirLeft), true
	case key.Matches(msg, k.Right):
		return snake.TurnCmd(snake.DirRight), true
	case key.Matches(msg, k.Pause):
		if state == snake.StatePaused {
			return snake.ResumeCmd(), true
		}
		return snake.PauseCmd(), true
	case key.Matches(msg, k.Resume):
		return snake.ResumeCmd(), true
	case key.Matches(msg, k.Restart):
		return snake.RestartCmd(), true
	case key.Matches(msg, k.Faster):
		return snake.SetSpeedCmd(rate + 1), true
	case key.Matches(msg, k.Slower):
		return snake.SetSpeedCmd(rate - 1), true
	}
	return snake.Command{}, false
}
