package layout

import (
	"strings"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

// Sketch renders the layout as a top-down ASCII map, one rune per cell.
// Useful for debugging generated layouts and for the `layout` CLI command.
//
//	#  wall        S  street passage   a  alcove passage
//	R/B  portal    =  billboard base   o  billboard chamber
//	.  playable
func (l *Layout) Sketch() string {
	var sb strings.Builder
	sb.Grow((GridSize + 1) * GridSize)

	for z := 0; z < GridSize; z++ {
		if z > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < GridSize; x++ {
			sb.WriteRune(l.sketchRune(core.C(x, SnakePlane, z)))
		}
	}
	return sb.String()
}

func (l *Layout) sketchRune(c core.Cell) rune {
	if p := l.PortalAt(c); p != nil {
		if p.Type == PortalRed {
			return 'R'
		}
		return 'B'
	}
	if l.IsStreetPassage(c) {
		return 'S'
	}
	if l.IsAlcove(c) {
		return 'a'
	}
	if l.IsChamber(c) {
		return 'o'
	}
	for _, b := range l.Billboard.Base {
		if b == c {
			return '='
		}
	}
	if l.IsWall(c) {
		return '#'
	}
	if l.Inside(c) {
		return '.'
	}
	return ' '
}
