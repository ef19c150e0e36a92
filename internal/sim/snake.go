package sim

import "github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"

const turnQueueCap = 2

// Snake is the player body on the snake plane. Body is head-first.
// Turns are queued as relative quarter turns and drained one per tick,
// so two quick inputs inside a single interval produce two distinct
// turns on consecutive ticks instead of collapsing into a U-turn.
type Snake struct {
	Body    []core.Cell
	Heading core.Heading

	turnQueue []core.Action // ActionTurnLeft / ActionTurnRight only
	growth    int           // segments still owed from recent pickups
}

// newSnake builds a snake of length segments extending backward from
// head against the heading, so the whole body starts inside the spawn
// corridor.
func newSnake(head core.Cell, heading core.Heading, length int) *Snake {
	dx, dz := heading.Step()
	body := make([]core.Cell, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, core.C(head.X-dx*i, head.Y, head.Z-dz*i))
	}
	return &Snake{Body: body, Heading: heading}
}

// Head returns the lead segment.
func (s *Snake) Head() core.Cell { return s.Body[0] }

// Len returns the body length in segments.
func (s *Snake) Len() int { return len(s.Body) }

// Occupies reports whether any segment sits on the cell.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// QueueTurn appends a relative turn. Inputs past the queue cap are
// dropped, never coalesced.
func (s *Snake) QueueTurn(a core.Action) bool {
	if a != core.ActionTurnLeft && a != core.ActionTurnRight {
		return false
	}
	if len(s.turnQueue) >= turnQueueCap {
		return false
	}
	s.turnQueue = append(s.turnQueue, a)
	return true
}

// drainTurn pops one queued turn and rotates the heading. Called at
// most once per movement tick, before the step direction is read.
func (s *Snake) drainTurn() {
	if len(s.turnQueue) == 0 {
		return
	}
	a := s.turnQueue[0]
	s.turnQueue = s.turnQueue[1:]
	switch a {
	case core.ActionTurnLeft:
		s.Heading = s.Heading.TurnLeft()
	case core.ActionTurnRight:
		s.Heading = s.Heading.TurnRight()
	}
}

// clearTurns empties the turn queue. Used on crash and respawn.
func (s *Snake) clearTurns() {
	s.turnQueue = s.turnQueue[:0]
}

// NextCell returns the cell the head would enter on the next step with
// the current heading.
func (s *Snake) NextCell() core.Cell {
	dx, dz := s.Heading.Step()
	h := s.Head()
	return core.C(h.X+dx, h.Y, h.Z+dz)
}

// Grow credits extra segments to be added on upcoming steps.
func (s *Snake) Grow(segments int) {
	s.growth += segments
}

// Step moves the head onto next. If growth is owed the tail is kept and
// one growth unit is consumed, otherwise the tail cell is dropped.
func (s *Snake) Step(next core.Cell) {
	s.Body = append([]core.Cell{next}, s.Body...)
	if s.growth > 0 {
		s.growth--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// HitsSelf reports whether next collides with the body as it stands
// now. The vacating tail cell still counts: entering it is a crash.
func (s *Snake) HitsSelf(next core.Cell) bool {
	return s.Occupies(next)
}
