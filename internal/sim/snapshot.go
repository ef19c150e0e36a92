package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

// Snapshot is a read-only copy of the simulation state for rendering
// and inspection. Slices are owned by the caller.
type Snapshot struct {
	Seed    int64
	SimTime int64
	State   State
	Score   int
	Level   int
	Lives   int
	Speed   float64 // effective cells per second

	Body    []core.Cell
	Heading core.Heading
	Fruits  []Fruit
	Effects []ActiveEffect

	Life LifeStats
	Run  RunStats
}

// Snapshot captures the current state. Fruit order is by spawn id so
// equal states always produce equal snapshots.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Seed:    g.seed,
		SimTime: g.clock.Now(),
		State:   g.state,
		Score:   g.score,
		Level:   g.level,
		Lives:   g.lives,
		Life:    g.life,
		Run:     g.run,
	}
	if g.snake != nil {
		s.Body = append(s.Body, g.snake.Body...)
		s.Heading = g.snake.Heading
		s.Speed = g.currentSpeed()
	}
	for _, f := range g.fruits {
		s.Fruits = append(s.Fruits, *f)
	}
	sort.Slice(s.Fruits, func(i, j int) bool { return s.Fruits[i].ID < s.Fruits[j].ID })
	s.Effects = g.effects.Snapshot(g.clock.Now())
	return s
}

// String renders a compact single-line form, convenient for comparing
// two runs step by step.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%d st=%s sc=%d lv=%d li=%d", s.SimTime, s.State, s.Score, s.Level, s.Lives)
	if len(s.Body) > 0 {
		fmt.Fprintf(&b, " head=%s h=%s len=%d", s.Body[0], s.Heading, len(s.Body))
	}
	for _, f := range s.Fruits {
		fmt.Fprintf(&b, " f:%s@%s", f.Type, f.Pos)
	}
	for _, e := range s.Effects {
		fmt.Fprintf(&b, " e:%s", e.Type)
	}
	return b.String()
}
