// Package sim implements the deterministic simulation core: fixed-grid
// snake movement, fruit spawning, effects, and the game lifecycle state
// machine. It owns all mutable round state; collaborators receive
// immutable snapshots or events, never direct references.
package sim

import (
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/config"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

// FruitType enumerates every collectible. The enum is closed: category,
// duration and category dispatch switch over it exhaustively.
type FruitType int

const (
	FruitApple FruitType = iota
	FruitSpeedBoost
	FruitSlowDown
	FruitMagnet
	FruitScoreDoubler
	FruitExtraLife
	FruitTriple
)

// String returns the fruit type name.
func (t FruitType) String() string {
	switch t {
	case FruitApple:
		return "apple"
	case FruitSpeedBoost:
		return "speed_boost"
	case FruitSlowDown:
		return "slow_down"
	case FruitMagnet:
		return "magnet"
	case FruitScoreDoubler:
		return "score_doubler"
	case FruitExtraLife:
		return "extra_life"
	case FruitTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// Category groups fruit types by spawn-location and lifetime policy.
type Category int

const (
	CategoryNormal  Category = iota // apples, replenished on consumption
	CategoryBoard                   // timed board pickups, at most one alive
	CategoryPassage                 // hidden pocket pickups, at most one alive
)

// Category returns the spawn/lifetime policy group for the fruit type.
func (t FruitType) Category() Category {
	switch t {
	case FruitApple:
		return CategoryNormal
	case FruitSpeedBoost, FruitSlowDown, FruitMagnet, FruitScoreDoubler:
		return CategoryBoard
	case FruitExtraLife, FruitTriple:
		return CategoryPassage
	default:
		return CategoryNormal
	}
}

// EffectDuration returns the effect duration in simulation milliseconds
// for a fruit type, per the round configuration. Apple and ExtraLife carry
// no effect and return 0.
func (t FruitType) EffectDuration(cfg *config.Game) int64 {
	switch t {
	case FruitSpeedBoost:
		return int64(cfg.Effects.SpeedBoostMS)
	case FruitSlowDown:
		return int64(cfg.Effects.SlowDownMS)
	case FruitMagnet:
		return int64(cfg.Effects.MagnetMS)
	case FruitScoreDoubler:
		return int64(cfg.Effects.ScoreDoublerMS)
	case FruitTriple:
		return int64(cfg.Effects.TripleMS)
	default:
		return 0
	}
}

// Fruit is a collectible present on the board or in a passage pocket.
type Fruit struct {
	ID        int
	Type      FruitType
	Pos       core.Cell
	SpawnedAt int64 // simulation time, ms
}
