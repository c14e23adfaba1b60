// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Minimum grid side; the initial body and a free cell must fit.
const MinGridSide = 4

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Body    BodyConfig    `yaml:"body"`
	Scoring ScoringConfig `yaml:"scoring"`
	Special SpecialConfig `yaml:"special"`
	Pattern PatternConfig `yaml:"pattern"`
	Message MessageConfig `yaml:"message"`
	Colors  ColorsConfig  `yaml:"colors"`
}

// GridConfig defines the toroidal playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines tick-rate bounds in ticks per second.
type SpeedConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Initial int `yaml:"initial"`
}

// Clamp restricts a requested tick rate to [Min, Max].
func (s SpeedConfig) Clamp(rate int) int {
	return core.Clamp(rate, s.Min, s.Max)
}

// BodyConfig defines the creature's starting shape.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// ScoringConfig defines points per award.
type ScoringConfig struct {
	Food    int `yaml:"food"`
	Special int `yaml:"special"`
	Pattern int `yaml:"pattern"`
}

// SpecialConfig defines the time-limited bonus item.
type SpecialConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick activation probability while inactive
	DurationMS  int     `yaml:"duration_ms"`
}

// Duration returns how long a spawned special item stays active.
func (s SpecialConfig) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// PatternConfig defines the S-shape bonus.
type PatternConfig struct {
	CooldownMS int `yaml:"cooldown_ms"`
}

// Cooldown returns the time before a claimed bonus re-arms.
func (p PatternConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMS) * time.Millisecond
}

// MessageConfig defines the transient bonus message.
type MessageConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns how long a bonus message stays on screen.
func (m MessageConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// ColorsConfig holds presentation colors by name. They have no gameplay effect.
type ColorsConfig struct {
	Body string `yaml:"body"`
	Head string `yaml:"head"`
}

// Palette resolves the configured color names.
func (c ColorsConfig) Palette() (body, head core.Color, err error) {
	body, err = core.ParseColor(c.Body)
	if err != nil {
		return core.ColorDefault, core.ColorDefault, err
	}
	head, err = core.ParseColor(c.Head)
	if err != nil {
		return core.ColorDefault, core.ColorDefault, err
	}
	return body, head, nil
}

// Validate reports every invalid field, joined into one error.
func (c SnakeConfig) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Grid.Width < MinGridSide || c.Grid.Height < MinGridSide {
		invalid("grid must be at least %dx%d, got %dx%d", MinGridSide, MinGridSide, c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.Min <= 0 {
		invalid("speed.min must be positive, got %d", c.Speed.Min)
	}
	if c.Speed.Min > c.Speed.Max {
		invalid("speed.min %d exceeds speed.max %d", c.Speed.Min, c.Speed.Max)
	}
	if c.Body.InitialLength < 1 || c.Body.InitialLength > min(c.Grid.Width, c.Grid.Height)-1 {
		invalid("body.initial_length must be in [1, %d], got %d", min(c.Grid.Width, c.Grid.Height)-1, c.Body.InitialLength)
	}
	if c.Special.SpawnChance < 0 || c.Special.SpawnChance > 1 {
		invalid("special.spawn_chance must be in [0, 1], got %g", c.Special.SpawnChance)
	}
	if c.Special.DurationMS < 0 || c.Pattern.CooldownMS < 0 || c.Message.DurationMS < 0 {
		invalid("durations must not be negative")
	}
	if c.Scoring.Food < 0 || c.Scoring.Special < 0 || c.Scoring.Pattern < 0 {
		invalid("scoring points must not be negative")
	}
	if _, _, err := c.Colors.Palette(); err != nil {
		invalid("colors: %v", err)
	}

	return errors.Join(errs...)
}
