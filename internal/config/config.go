// Package config provides YAML-based game configuration loading for the
// snake simulation. A round never fails to start over configuration:
// missing or malformed files fall back to built-in defaults.
package config

// Game contains all tunables for one round. It is loaded once per round
// and treated as immutable for its duration.
type Game struct {
	Snake     SnakeConfig     `yaml:"snake"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Effects   EffectsConfig   `yaml:"effects"`
	Spawning  SpawningConfig  `yaml:"spawning"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
}

// SnakeConfig defines initial snake state and speed progression.
type SnakeConfig struct {
	InitialLength int     `yaml:"initial_length"`
	InitialLives  int     `yaml:"initial_lives"`
	InitialSpeed  float64 `yaml:"initial_speed"`            // cells per second
	SpeedIncrease float64 `yaml:"speed_increase_per_apple"` // cells per second per apple
	MinIntervalMS int     `yaml:"min_interval_ms"`          // tick interval floor
}

// ScoringConfig defines point values and growth amounts.
type ScoringConfig struct {
	AppleScore        int `yaml:"apple_score"`
	DoublerMultiplier int `yaml:"doubler_multiplier"`
	TripleMultiplier  int `yaml:"triple_multiplier"`
	ComboMultiplier   int `yaml:"combo_multiplier"` // ScoreDoubler and Triple both active
	AppleGrowth       int `yaml:"apple_growth"`
	TripleGrowth      int `yaml:"triple_growth"`
}

// EffectsConfig defines effect durations and speed modifiers.
// Durations are in milliseconds of simulation time; 0 means persistent.
type EffectsConfig struct {
	SpeedBoostMS     int     `yaml:"speed_boost_ms"`
	SlowDownMS       int     `yaml:"slow_down_ms"`
	MagnetMS         int     `yaml:"magnet_ms"`
	ScoreDoublerMS   int     `yaml:"score_doubler_ms"`
	TripleMS         int     `yaml:"triple_ms"`
	SpeedBoostFactor float64 `yaml:"speed_boost_factor"` // multiplies effective interval
	SlowDownFactor   float64 `yaml:"slow_down_factor"`
}

// SpawningConfig defines fruit spawn timing and selection weights.
type SpawningConfig struct {
	BoardDelayMS       int     `yaml:"board_delay_ms"`
	BoardLifetimeMS    int     `yaml:"board_lifetime_ms"`
	BoardCooldownMS    int     `yaml:"board_cooldown_ms"`
	PassageDelayMS     int     `yaml:"passage_delay_ms"`
	PassageRetryMS     int     `yaml:"passage_retry_ms"`
	SpeedThreshold     float64 `yaml:"speed_threshold"` // above this, SlowDown is weighted in
	SlowDownWeight     int     `yaml:"slow_down_weight"`
	TriplePerBucket    int     `yaml:"triple_per_bucket"`
	ExtraLifePerBucket int     `yaml:"extra_life_per_bucket"`
	ExtraLifeLifeCap   int     `yaml:"extra_life_life_cap"`
	ExtraLifeGameCap   int     `yaml:"extra_life_game_cap"`
}

// LifecycleConfig defines state machine transition timing.
type LifecycleConfig struct {
	StartingDurationMS int `yaml:"starting_duration_ms"`
	RespawnDelayMS     int `yaml:"respawn_delay_ms"`
}
