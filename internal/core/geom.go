// Package core provides fundamental types and utilities for the snake
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Cell is an integer position on the simulation grid.
// Y is the vertical layer; the snake moves on the Y=1 plane.
type Cell struct {
	X, Y, Z int
}

// C is a shorthand constructor for a Cell.
func C(x, y, z int) Cell {
	return Cell{X: x, Y: y, Z: z}
}

// Add returns the cell offset by (dx, dy, dz).
func (c Cell) Add(dx, dy, dz int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// String returns the cell as "(x,y,z)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Chebyshev returns the Chebyshev (chessboard) distance to another cell
// on the same horizontal plane. The vertical layer is ignored.
func (c Cell) Chebyshev(o Cell) int {
	return Max(Abs(c.X-o.X), Abs(c.Z-o.Z))
}

// Heading is a movement direction in radians, quantized to 90° multiples
// and normalized to (-π, π]. Heading 0 points toward decreasing Z.
type Heading float64

// Cardinal headings.
const (
	HeadingNorth Heading = 0
	HeadingWest  Heading = math.Pi / 2
	HeadingSouth Heading = math.Pi
	HeadingEast  Heading = -math.Pi / 2
)

// Normalize wraps the heading into (-π, π].
func (h Heading) Normalize() Heading {
	v := float64(h)
	for v > math.Pi {
		v -= 2 * math.Pi
	}
	for v <= -math.Pi {
		v += 2 * math.Pi
	}
	return Heading(v)
}

// TurnLeft returns the heading rotated 90° counterclockwise.
func (h Heading) TurnLeft() Heading {
	return (h + math.Pi/2).Normalize()
}

// TurnRight returns the heading rotated 90° clockwise.
func (h Heading) TurnRight() Heading {
	return (h - math.Pi/2).Normalize()
}

// Step returns the grid delta one cell forward: the head advances by
// (-round(sin h), -round(cos h)) on the X/Z plane.
func (h Heading) Step() (dx, dz int) {
	return -int(math.Round(math.Sin(float64(h)))), -int(math.Round(math.Cos(float64(h))))
}

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading {
	return (h + math.Pi).Normalize()
}

// Equal compares two headings modulo normalization, tolerating float error
// from repeated quarter turns.
func (h Heading) Equal(o Heading) bool {
	d := math.Abs(float64(h.Normalize() - o.Normalize()))
	return d < 1e-9 || math.Abs(d-2*math.Pi) < 1e-9
}

// String returns the cardinal name of a quantized heading.
func (h Heading) String() string {
	dx, dz := h.Step()
	switch {
	case dz == -1:
		return "north"
	case dz == 1:
		return "south"
	case dx == -1:
		return "west"
	case dx == 1:
		return "east"
	default:
		return "unknown"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
