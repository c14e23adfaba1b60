package snake

import "fmt"

// CommandKind identifies an input command.
type CommandKind int

const (
	CmdTurn CommandKind = iota
	CmdPause
	CmdResume
	CmdRestart
	CmdSetSpeed
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdTurn:
		return "turn"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdRestart:
		return "restart"
	case CmdSetSpeed:
		return "set-speed"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a discrete input event produced by the input source.
type Command struct {
	Kind  CommandKind
	Dir   Direction // CmdTurn only
	Speed int       // CmdSetSpeed only
}

func (c Command) String() string {
	switch c.Kind {
	case CmdTurn:
		return fmt.Sprintf("turn(%s)", c.Dir)
	case CmdSetSpeed:
		return fmt.Sprintf("set-speed(%d)", c.Speed)
	default:
		return c.Kind.String()
	}
}

// TurnCmd requests a heading change on the next tick.
func TurnCmd(d Direction) Command { return Command{Kind: CmdTurn, Dir: d} }

// PauseCmd moves a running session to Paused.
func PauseCmd() Command { return Command{Kind: CmdPause} }

// ResumeCmd moves a paused session back to Running.
func ResumeCmd() Command { return Command{Kind: CmdResume} }

// RestartCmd reinitializes the session from any state.
func RestartCmd() Command { return Command{Kind: CmdRestart} }

// SetSpeedCmd requests a tick rate; out-of-range values are clamped.
func SetSpeedCmd(rate int) Command { return Command{Kind: CmdSetSpeed, Speed: rate} }

// QuitCmd terminates the session.
func QuitCmd() Command { return Command{Kind: CmdQuit} }
