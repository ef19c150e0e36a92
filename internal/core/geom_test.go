package core

import "testing"

func TestHeadingStep(t *testing.T) {
	tests := []struct {
		name   string
		h      Heading
		dx, dz int
	}{
		{name: "north moves toward -z", h: HeadingNorth, dx: 0, dz: -1},
		{name: "south moves toward +z", h: HeadingSouth, dx: 0, dz: 1},
		{name: "west moves toward -x", h: HeadingWest, dx: -1, dz: 0},
		{name: "east moves toward +x", h: HeadingEast, dx: 1, dz: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dz := tc.h.Step()
			if dx != tc.dx || dz != tc.dz {
				t.Errorf("Step() = (%d, %d), expected (%d, %d)", dx, dz, tc.dx, tc.dz)
			}
		})
	}
}

func TestHeadingTurns(t *testing.T) {
	if !HeadingNorth.TurnLeft().Equal(HeadingWest) {
		t.Errorf("north turned left should be west, got %s", HeadingNorth.TurnLeft())
	}
	if !HeadingNorth.TurnRight().Equal(HeadingEast) {
		t.Errorf("north turned right should be east, got %s", HeadingNorth.TurnRight())
	}
	if !HeadingWest.TurnLeft().Equal(HeadingSouth) {
		t.Errorf("west turned left should be south, got %s", HeadingWest.TurnLeft())
	}
	if !HeadingEast.TurnRight().Equal(HeadingSouth) {
		t.Errorf("east turned right should be south, got %s", HeadingEast.TurnRight())
	}
}

func TestHeadingLeftThenRightIsIdentity(t *testing.T) {
	for _, h := range []Heading{HeadingNorth, HeadingSouth, HeadingEast, HeadingWest} {
		got := h.TurnLeft().TurnRight()
		if !got.Equal(h) {
			t.Errorf("left then right from %s should return to %s, got %s", h, h, got)
		}
	}
}

func TestHeadingFourLeftTurnsIsIdentity(t *testing.T) {
	h := HeadingNorth
	for i := 0; i < 4; i++ {
		h = h.TurnLeft()
	}
	if !h.Equal(HeadingNorth) {
		t.Errorf("four left turns should return to north, got %s", h)
	}
}

func TestHeadingOpposite(t *testing.T) {
	if !HeadingNorth.Opposite().Equal(HeadingSouth) {
		t.Errorf("opposite of north should be south, got %s", HeadingNorth.Opposite())
	}
	if !HeadingWest.Opposite().Equal(HeadingEast) {
		t.Errorf("opposite of west should be east, got %s", HeadingWest.Opposite())
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Cell
		expected int
	}{
		{name: "same cell", a: C(5, 1, 5), b: C(5, 1, 5), expected: 0},
		{name: "adjacent orthogonal", a: C(5, 1, 5), b: C(6, 1, 5), expected: 1},
		{name: "adjacent diagonal", a: C(5, 1, 5), b: C(6, 1, 6), expected: 1},
		{name: "two apart", a: C(5, 1, 5), b: C(7, 1, 4), expected: 2},
		{name: "vertical layer ignored", a: C(5, 0, 5), b: C(5, 3, 5), expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Chebyshev(tc.b); got != tc.expected {
				t.Errorf("Chebyshev() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d, expected 10", got)
	}
}
