package layout

import "github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"

// Classification predicates. All of them are pure functions of
// (cell, layout): for a given layout the answers never change, and for
// every grid cell at most one of IsWall, IsStreetPassage, IsAlcove and
// PortalAt is positive.

// InBorder reports whether the cell lies in the three-cell perimeter band
// on the snake plane.
func (l *Layout) InBorder(c core.Cell) bool {
	if c.Y != SnakePlane {
		return false
	}
	if c.X < 0 || c.X >= GridSize || c.Z < 0 || c.Z >= GridSize {
		return false
	}
	return c.X < PlayMin || c.X > PlayMax || c.Z < PlayMin || c.Z > PlayMax
}

// Inside reports whether the cell lies in the 20×20 playable area.
func (l *Layout) Inside(c core.Cell) bool {
	return c.Y == SnakePlane &&
		c.X >= PlayMin && c.X <= PlayMax &&
		c.Z >= PlayMin && c.Z <= PlayMax
}

// IsWall reports whether the cell is solid perimeter wall: in the border
// band and not part of any passage, portal block, or the billboard's
// hollow chamber.
func (l *Layout) IsWall(c core.Cell) bool {
	if !l.InBorder(c) {
		return false
	}
	if l.Street.Contains(c) || l.Alcove.Contains(c) {
		return false
	}
	if _, ok := l.portalByCell[c]; ok {
		return false
	}
	if l.chamberCells[c] {
		return false
	}
	return true
}

// PortalAt returns the portal occupying the cell, or nil.
func (l *Layout) PortalAt(c core.Cell) *Portal {
	if i, ok := l.portalByCell[c]; ok {
		return &l.Portals[i]
	}
	return nil
}

// IsStreetPassage reports whether the cell belongs to the street corridor.
func (l *Layout) IsStreetPassage(c core.Cell) bool {
	return l.Street.Contains(c)
}

// IsAlcove reports whether the cell belongs to the alcove corridor.
func (l *Layout) IsAlcove(c core.Cell) bool {
	return l.Alcove.Contains(c)
}

// IsChamber reports whether the cell is part of the billboard's hollow chamber.
func (l *Layout) IsChamber(c core.Cell) bool {
	return l.chamberCells[c]
}

// Walkable reports whether the snake may occupy the cell: playable area,
// passage corridors, portal blocks and the billboard chamber.
func (l *Layout) Walkable(c core.Cell) bool {
	if l.Inside(c) {
		return true
	}
	if !l.InBorder(c) {
		return false
	}
	return !l.IsWall(c)
}

// PairOf returns the portal paired with p: the other portal of the same type.
func (l *Layout) PairOf(p *Portal) *Portal {
	for i := range l.Portals {
		q := &l.Portals[i]
		if q.Type == p.Type && q.ID != p.ID {
			return q
		}
	}
	return nil
}
