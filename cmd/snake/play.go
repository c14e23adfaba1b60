package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagFPS       int
	flagBodyColor string
	flagHeadColor string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause (press again to continue)
  C/Space      - Resume
  R            - Restart
  +/-          - Speed up / slow down
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --fps 15
  snake play --body-color cyan --head-color bright-cyan
  snake play --log /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

// registerPlayFlags adds the play flags. The root command shares them so
// a bare "snake" behaves like "snake play".
func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Initial tick rate (0 = config value), clamped to the speed range")
	cmd.Flags().StringVar(&flagBodyColor, "body-color", "", "Body color name (e.g. green, cyan, bright-blue)")
	cmd.Flags().StringVar(&flagHeadColor, "head-color", "", "Head color name")
}

// playOverrides applies the play flags to cfg.
func playOverrides(cfg *config.SnakeConfig) {
	if flagFPS > 0 {
		cfg.Speed.Initial = cfg.Speed.Clamp(flagFPS)
	}
	if flagBodyColor != "" {
		cfg.Colors.Body = flagBodyColor
	}
	if flagHeadColor != "" {
		cfg.Colors.Head = flagHeadColor
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(playOverrides)
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so logs only go to a file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := resolveSeed()
	session, err := newSession(cfg, seed, logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = session.TickRate()
	rc.Seed = seed

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, session, rc, logger); err != nil {
		return err
	}
	logger.Info("session finished", "score", session.Score(), "state", session.State())
	return nil
}
