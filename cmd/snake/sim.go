package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagTicks   int
	flagPilot   bool
	flagRestart bool
	flagBoard   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Run a game without a terminal UI, on a virtual clock advanced by one
tick period per step. The autopilot steers unless --pilot=false, in which
case the body runs straight. The run stops at game over unless --restart
is set. Events are logged to stderr and a summary is printed at the end.

With a fixed --seed the run is fully reproducible.

Examples:
  snake sim --seed 42
  snake sim --ticks 10000 --restart --log-level debug
  snake sim --pilot=false --board`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagPilot, "pilot", true, "Steer with the autopilot")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart after game over instead of stopping")
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
}

// simStats summarizes a headless run.
type simStats struct {
	Ticks    int
	Games    int
	Food     int
	Specials int
	Patterns int
	Best     int
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("sim: --ticks must not be negative, got %d", flagTicks)
	}

	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := newSession(cfg, resolveSeed(), logger)
	if err != nil {
		return err
	}

	stats := simulate(session, logger, flagTicks, flagPilot, flagRestart)
	printSummary(cmd.OutOrStdout(), session.Snapshot(), stats)
	return nil
}

// eventLogger is the part of the logger the simulation needs.
type eventLogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
}

// simulate drives session for up to ticks steps on a virtual clock starting
// at the Unix epoch.
func simulate(session *snake.Session, logger eventLogger, ticks int, pilot, restart bool) simStats {
	var (
		stats  = simStats{Games: 1}
		now    = time.Unix(0, 0)
		driver snake.Pilot
	)

	for range ticks {
		if session.State() == snake.StateEnded {
			if !restart {
				break
			}
			session.Apply(snake.RestartCmd())
			stats.Games++
		}

		if pilot {
			if dir, ok := driver.Next(session.Snapshot()); ok {
				session.Apply(snake.TurnCmd(dir))
			}
		}

		now = now.Add(time.Second / time.Duration(session.TickRate()))
		res := session.Tick(now)
		stats.Ticks++
		stats.Best = max(stats.Best, res.Score)

		for _, ev := range res.Events {
			switch ev.Kind {
			case snake.EventFoodEaten:
				stats.Food++
			case snake.EventSpecialEaten:
				stats.Specials++
			case snake.EventPatternAwarded:
				stats.Patterns++
			}
			if ev.Kind == snake.EventCollided {
				logger.Info("game over", "tick", stats.Ticks, "score", res.Score)
				continue
			}
			logger.Debug(ev.Kind.String(), "tick", stats.Ticks, "at", ev.Pos, "points", ev.Points)
		}
	}
	return stats
}

func printSummary(w io.Writer, snap snake.Snapshot, stats simStats) {
	fmt.Fprintf(w, "ticks:     %d\n", stats.Ticks)
	fmt.Fprintf(w, "games:     %d\n", stats.Games)
	fmt.Fprintf(w, "state:     %s\n", snap.State)
	fmt.Fprintf(w, "score:     %d (best %d)\n", snap.Score, stats.Best)
	fmt.Fprintf(w, "length:    %d\n", snap.GrowTarget)
	fmt.Fprintf(w, "eaten:     %d food, %d special, %d pattern\n", stats.Food, stats.Specials, stats.Patterns)

	if flagBoard {
		reqW, reqH := snake.RequiredSize(snap.Width, snap.Height)
		screen := core.NewScreen(reqW, reqH)
		snake.Render(snap, screen)
		fmt.Fprintln(w, screen.String())
	}
}
