package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake session.
type Model struct {
	session  *snake.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for session. The screen buffer leaves the last
// terminal row for the help line.
func NewModel(session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = defaultRuntime(cfg)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	cmd, ok := m.keys.Command(msg, m.session.State(), m.session.TickRate())
	if !ok {
		return m, nil
	}

	rate := m.session.TickRate()
	m.session.Apply(cmd)

	switch cmd.Kind {
	case snake.CmdQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score())
		return m, tea.Quit
	case snake.CmdSetSpeed:
		if m.session.TickRate() != rate {
			m.logger.Debug("speed changed", "from", rate, "to", m.session.TickRate())
		}
	case snake.CmdRestart:
		m.logger.Info("restart")
	case snake.CmdTurn:
		// Too frequent to log.
	default:
		m.logger.Debug("command", "cmd", cmd, "state", m.session.State())
	}
	return m, nil
}

// handleResize processes window resize events. The session is unaffected;
// only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	return m, nil
}

// handleTick advances the session and schedules the next frame at the
// current tick rate.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.session.Terminated() {
		return m, nil
	}

	res := m.session.Tick(now)
	for _, ev := range res.Events {
		m.logEvent(ev, res.Score)
	}

	return m, tickCmd(m.session.TickRate())
}

func (m Model) logEvent(ev snake.Event, score int) {
	switch ev.Kind {
	case snake.EventCollided:
		m.logger.Info("game over", "score", score, "at", ev.Pos)
	case snake.EventFoodEaten, snake.EventSpecialEaten, snake.EventPatternAwarded:
		m.logger.Info(ev.Kind.String(), "points", ev.Points, "score", score, "at", ev.Pos)
	default:
		m.logger.Debug(ev.Kind.String(), "at", ev.Pos)
	}
}

// saveScreenshot writes the current board as plain text under
// ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	snake.Render(m.session.Snapshot(), m.screen)
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.session.Snapshot(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled. Cancellation is a clean exit.
func Run(ctx context.Context, session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(session, cfg, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	session.Apply(snake.QuitCmd())
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
