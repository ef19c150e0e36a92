package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGame returns the hardcoded default round configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultGame() Game {
	return Game{
		Snake: SnakeConfig{
			InitialLength: 3,
			InitialLives:  3,
			InitialSpeed:  4.0,
			SpeedIncrease: 0.12,
			MinIntervalMS: 50,
		},
		Scoring: ScoringConfig{
			AppleScore:        10,
			DoublerMultiplier: 2,
			TripleMultiplier:  3,
			ComboMultiplier:   5,
			AppleGrowth:       1,
			TripleGrowth:      3,
		},
		Effects: EffectsConfig{
			SpeedBoostMS:     8000,
			SlowDownMS:       8000,
			MagnetMS:         10000,
			ScoreDoublerMS:   12000,
			TripleMS:         15000,
			SpeedBoostFactor: 0.6,
			SlowDownFactor:   1.5,
		},
		Spawning: SpawningConfig{
			BoardDelayMS:       6000,
			BoardLifetimeMS:    9000,
			BoardCooldownMS:    4000,
			PassageDelayMS:     12000,
			PassageRetryMS:     1500,
			SpeedThreshold:     6.0,
			SlowDownWeight:     3,
			TriplePerBucket:    3,
			ExtraLifePerBucket: 1,
			ExtraLifeLifeCap:   1,
			ExtraLifeGameCap:   3,
		},
		Lifecycle: LifecycleConfig{
			StartingDurationMS: 3000,
			RespawnDelayMS:     2500,
		},
	}
}

// GetDefaultYAML returns the embedded default game YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
