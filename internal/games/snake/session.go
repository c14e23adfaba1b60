package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventSpecialSpawned
	EventSpecialEaten
	EventSpecialExpired
	EventPatternAwarded
	EventPatternRearmed
	EventCollided
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventSpecialSpawned:
		return "special_spawned"
	case EventSpecialEaten:
		return "special_eaten"
	case EventSpecialExpired:
		return "special_expired"
	case EventPatternAwarded:
		return "pattern_awarded"
	case EventPatternRearmed:
		return "pattern_rearmed"
	case EventCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Event records one gameplay occurrence.
type Event struct {
	Kind   EventKind
	Pos    Position
	Points int
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	State  State
	Moved  bool    // The body advanced this tick
	Score  int     // Score after the tick
	Events []Event // In the order they happened
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Palette carries presentation colors through to the renderer.
type Palette struct {
	Body core.Color
	Head core.Color
}

// Session owns all simulation state and applies the per-tick order.
// It is not safe for concurrent use; a single game loop drives it.
type Session struct {
	cfg     config.SnakeConfig
	grid    Grid
	rng     *rand.Rand
	palette Palette

	body    *Body
	food    Food
	special SpecialFood
	pattern *PatternBonus
	score   int
	state   State
	tick    uint64

	tickRate int

	pendingTurn Direction
	hasTurn     bool

	message   string
	messageAt time.Time

	now time.Time // Time of the latest tick

	terminated bool
}

// NewSession validates cfg and starts a Running session.
func NewSession(cfg config.SnakeConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	bodyColor, headColor, err := cfg.Colors.Palette()
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		grid:     Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		rng:      rand.New(rand.NewSource(seed)),
		palette:  Palette{Body: bodyColor, Head: headColor},
		tickRate: cfg.Speed.Clamp(cfg.Speed.Initial),
	}
	s.reset()
	return s, nil
}

// reset reinitializes everything except the tick rate.
func (s *Session) reset() {
	s.body = SpawnBody(s.grid, s.rng, s.cfg.Body.InitialLength)
	s.food.Relocate(s.grid, s.rng, s.body.Occupies)
	s.special = SpecialFood{
		Duration: s.cfg.Special.Duration(),
		Chance:   s.cfg.Special.SpawnChance,
	}
	s.pattern = NewPatternBonus(s.cfg.Pattern.Cooldown())
	s.score = 0
	s.state = StateRunning
	s.tick = 0
	s.hasTurn = false
	s.message = ""
}

// Apply handles a command. Turns are buffered until the next tick; every
// other command takes effect immediately. After Quit nothing changes.
func (s *Session) Apply(cmd Command) {
	if s.terminated {
		return
	}

	switch cmd.Kind {
	case CmdTurn:
		s.pendingTurn = cmd.Dir
		s.hasTurn = true
	case CmdPause:
		if s.state == StateRunning {
			s.state = StatePaused
		}
	case CmdResume:
		if s.state == StatePaused {
			s.state = StateRunning
		}
	case CmdRestart:
		s.reset()
	case CmdSetSpeed:
		s.tickRate = s.cfg.Speed.Clamp(cmd.Speed)
	case CmdQuit:
		s.terminated = true
	}
}

// Tick advances the simulation by one step at time now.
//
// Order: buffered turn, special-item timers and spawn, move, consumption,
// pattern bonus, message expiry. A collision ends the session and skips
// consumption and the pattern bonus for that tick.
func (s *Session) Tick(now time.Time) StepResult {
	if s.terminated {
		return s.result(false, nil)
	}
	s.tick++
	s.now = now

	var events []Event
	emit := func(kind EventKind, pos Position, points int) {
		events = append(events, Event{Kind: kind, Pos: pos, Points: points})
	}

	running := s.state == StateRunning

	// 1. Buffered turn; a turn pressed while not running is discarded.
	if s.hasTurn {
		if running {
			s.body.Turn(s.pendingTurn)
		}
		s.hasTurn = false
	}

	moved, collided := false, false
	if running {
		// 2. Special item timers
		if s.special.Expire(now) {
			emit(EventSpecialExpired, s.special.Pos, 0)
		}
		if s.special.TrySpawn(now, s.grid, s.rng, s.occupied) {
			emit(EventSpecialSpawned, s.special.Pos, 0)
		}

		// 3. Move
		if s.body.Move() == Collided {
			collided = true
			s.state = StateEnded
			emit(EventCollided, s.grid.Step(s.body.Head(), s.body.Heading()), 0)
		} else {
			moved = true
		}
	}

	if moved {
		// 4. Consumption
		head := s.body.Head()
		if s.food.Present && head == s.food.Pos {
			s.grow(s.cfg.Scoring.Food)
			emit(EventFoodEaten, head, s.cfg.Scoring.Food)
			s.food.Relocate(s.grid, s.rng, s.body.Occupies)
		}
		if s.special.Active && head == s.special.Pos {
			s.special.Consume()
			s.score += s.cfg.Scoring.Special
			s.message = fmt.Sprintf("Special food +%d!", s.cfg.Scoring.Special)
			s.messageAt = now
			emit(EventSpecialEaten, head, s.cfg.Scoring.Special)
		}
	}

	if !collided {
		// 5. Pattern bonus
		if s.pattern.Refresh(now) {
			emit(EventPatternRearmed, s.body.Head(), 0)
		}
		if moved && s.pattern.Check(s.body.segments, now) {
			s.score += s.cfg.Scoring.Pattern
			emit(EventPatternAwarded, s.body.Head(), s.cfg.Scoring.Pattern)
		}
	}

	// 6. Transient message
	if s.message != "" && now.Sub(s.messageAt) >= s.cfg.Message.Duration() {
		s.message = ""
	}

	return s.result(moved, events)
}

// grow extends the body target and awards points for an ordinary item.
func (s *Session) grow(points int) {
	s.body.Grow()
	s.score += points
}

// occupied reports cells a newly spawned special item must avoid.
func (s *Session) occupied(p Position) bool {
	return s.body.Occupies(p) || (s.food.Present && p == s.food.Pos)
}

func (s *Session) result(moved bool, events []Event) StepResult {
	return StepResult{
		State:  s.state,
		Moved:  moved,
		Score:  s.score,
		Events: events,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TickRate returns the current ticks per second, always within bounds.
func (s *Session) TickRate() int { return s.tickRate }

// Terminated reports whether Quit has been applied.
func (s *Session) Terminated() bool { return s.terminated }

// Grid returns the playfield dimensions.
func (s *Session) Grid() Grid { return s.grid }
