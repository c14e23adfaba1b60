package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 30,
		},
		Speed: SpeedConfig{
			Min:     5,
			Max:     20,
			Initial: 10,
		},
		Body: BodyConfig{
			InitialLength: 3,
		},
		Scoring: ScoringConfig{
			Food:    10,
			Special: 50,
			Pattern: 100,
		},
		Special: SpecialConfig{
			SpawnChance: 0.01,
			DurationMS:  10000,
		},
		Pattern: PatternConfig{
			CooldownMS: 3000,
		},
		Message: MessageConfig{
			DurationMS: 2000,
		},
		Colors: ColorsConfig{
			Body: "green",
			Head: "blue",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
