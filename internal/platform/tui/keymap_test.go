package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state snake.State
		want  snake.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.StateRunning, snake.TurnCmd(snake.DirUp)},
		{"w", runeKey('w'), snake.StateRunning, snake.TurnCmd(snake.DirUp)},
		{"s", runeKey('s'), snake.StateRunning, snake.TurnCmd(snake.DirDown)},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.StateRunning, snake.TurnCmd(snake.DirLeft)},
		{"d", runeKey('d'), snake.StateRunning, snake.TurnCmd(snake.DirRight)},
		{"pause while running", runeKey('p'), snake.StateRunning, snake.PauseCmd()},
		{"pause toggles back", runeKey('p'), snake.StatePaused, snake.ResumeCmd()},
		{"space resumes", tea.KeyMsg{Type: tea.KeySpace}, snake.StatePaused, snake.ResumeCmd()},
		{"c resumes", runeKey('c'), snake.StatePaused, snake.ResumeCmd()},
		{"restart", runeKey('r'), snake.StateEnded, snake.RestartCmd()},
		{"faster", runeKey('+'), snake.StateRunning, snake.SetSpeedCmd(11)},
		{"slower", runeKey('-'), snake.StateRunning, snake.SetSpeedCmd(9)},
		{"quit", runeKey('q'), snake.StateRunning, snake.QuitCmd()},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, snake.StatePaused, snake.QuitCmd()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Command(tt.msg, tt.state, 10)
			if !ok {
				t.Fatalf("key %q not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapIgnoresUnboundKeys(t *testing.T) {
	km := DefaultKeyMap()
	for _, r := range []rune{'x', 'z', '1'} {
		if cmd, ok := km.Command(runeKey(r), snake.StateRunning, 10); ok {
			t.Errorf("key %q mapped to %v", r, cmd)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("empty short help")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 12 {
		t.Errorf("full help lists %d bindings, want 12", n)
	}
}
