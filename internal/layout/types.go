// Package layout builds and classifies the per-round board layout: the
// perimeter wall with its passages, portals and billboard, plus the
// decorative city ring of buildings, banners and flyers.
package layout

import "github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"

// Grid dimensions. The board is a 26×26 grid on the snake plane: a 20×20
// playable area padded by a wall three cells thick on every side.
const (
	GridSize      = 26
	WallThickness = 3
	PlaySpan      = 20
	PlayMin       = WallThickness                // 3
	PlayMax       = GridSize - WallThickness - 1 // 22
	SnakePlane    = 1
)

// Wall identifies one side of the perimeter.
type Wall int

const (
	WallNorth Wall = iota // z = 0..2
	WallSouth             // z = 23..25
	WallEast              // x = 23..25
	WallWest              // x = 0..2
)

// Walls lists all four walls in a fixed order.
var Walls = [4]Wall{WallNorth, WallSouth, WallEast, WallWest}

// String returns the wall's compass name.
func (w Wall) String() string {
	switch w {
	case WallNorth:
		return "north"
	case WallSouth:
		return "south"
	case WallEast:
		return "east"
	case WallWest:
		return "west"
	default:
		return "unknown"
	}
}

// Cell returns the grid cell at the given offset (0..19 along the playable
// span) and ring (0 = innermost, adjacent to the playable area; 2 = outermost).
func (w Wall) Cell(offset, ring int) core.Cell {
	along := PlayMin + offset
	inner := WallThickness - 1 - ring // ring 0 -> 2, ring 2 -> 0
	switch w {
	case WallNorth:
		return core.C(along, SnakePlane, inner)
	case WallSouth:
		return core.C(along, SnakePlane, GridSize-1-inner)
	case WallEast:
		return core.C(GridSize-1-inner, SnakePlane, along)
	default: // WallWest
		return core.C(inner, SnakePlane, along)
	}
}

// Inward returns the heading that points from this wall into the playable area.
func (w Wall) Inward() core.Heading {
	switch w {
	case WallNorth:
		return core.HeadingSouth
	case WallSouth:
		return core.HeadingNorth
	case WallEast:
		return core.HeadingWest
	default: // WallWest
		return core.HeadingEast
	}
}

// PortalType distinguishes the two paired portal colors.
type PortalType int

const (
	PortalRed PortalType = iota
	PortalBlue
)

// String returns the portal color name.
func (t PortalType) String() string {
	if t == PortalRed {
		return "red"
	}
	return "blue"
}

// Portal is a teleportation block embedded in the innermost wall ring.
// Same-type portals pair; entering one emerges at its pair's fixed
// emergence cell, heading away from the pair's wall.
type Portal struct {
	ID          int
	Type        PortalType
	Wall        Wall
	Offset      int
	Cell        core.Cell
	Emergence   core.Cell    // three cells inward from the portal block
	ExitHeading core.Heading // always the pair wall's inward direction
	Primary     bool         // true for the double-portal wall pair
}

// PassageKind distinguishes the two corridor variants through the wall.
type PassageKind int

const (
	PassageStreet PassageKind = iota // U-shaped, two cells wide
	PassageAlcove                    // single-file doorway variant
)

// Passage is a corridor through the perimeter wall connecting the playable
// area to a hidden pocket. Entry is the smaller offset, Exit the larger.
type Passage struct {
	Kind      PassageKind
	Wall      Wall
	Entry     int // door offset, entry < exit, separated by >= 5
	Exit      int
	Width     int       // 2 for street, 1 for alcove
	SpawnCell core.Cell // hidden fruit spawn pocket inside the corridor
	cells     map[core.Cell]bool
}

// Contains reports whether the cell belongs to this passage's corridor.
func (p *Passage) Contains(c core.Cell) bool {
	return p.cells[c]
}

// DoorSpan reports whether the offset lies on one of the passage doors.
func (p *Passage) DoorSpan(offset int) bool {
	if offset >= p.Entry && offset < p.Entry+p.Width {
		return true
	}
	return offset >= p.Exit && offset < p.Exit+p.Width
}

// Billboard is the advertising structure: a three-cell base on the innermost
// wall ring with a hollow chamber behind it. The chamber sits geometrically
// on the perimeter but is never classified as wall.
type Billboard struct {
	Wall    Wall
	Offset  int         // base spans Offset..Offset+2
	Base    [3]core.Cell
	Chamber [3]core.Cell
}

// BuildingKind stratifies the decorative city ring.
type BuildingKind int

const (
	BuildingRegular BuildingKind = iota
	BuildingSkyscraper
	BuildingTransmission
	BuildingSearchlight
)

// RoofStyle is one of the four roof variants for regular buildings.
type RoofStyle int

const (
	RoofFlat RoofStyle = iota
	RoofPitched
	RoofDome
	RoofAntenna
)

// Building occupies one wall cell and extends upward.
type Building struct {
	Wall   Wall
	Offset int
	Ring   int
	Kind   BuildingKind
	Height int
	Roof   RoofStyle
}

// Banner is a wall-mounted advertising surface. Twenty paid banners are
// split 4/4/6/6 across the walls; six cosmetic banners prefer offsets next
// to sufficiently tall buildings.
type Banner struct {
	Wall   Wall
	Offset int
	Paid   bool
}

// Flyer is a small poster placed into a flyable wall sub-segment.
type Flyer struct {
	Wall     Wall
	Offset   int
	Indented bool // placed inside an alcove doorway or street island zone
}

// Layout is the immutable per-round board structure. It is created once by
// Generate at round start and is read-only during simulation.
type Layout struct {
	Seed int64

	Street    Passage
	Alcove    Passage
	Portals   [4]Portal
	Billboard Billboard

	Buildings []Building
	Banners   []Banner
	Flyers    []Flyer

	portalByCell map[core.Cell]int // index into Portals
	chamberCells map[core.Cell]bool
}

// roles records which structural role each wall carries for a round.
type roles struct {
	street    Wall
	alcove    Wall
	portal    Wall
	billboard Wall
}
