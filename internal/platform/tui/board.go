package tui

import (
	"fmt"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/layout"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/sim"
)

// boardRenderer draws the top-down city view into a screen buffer. The
// building index is rebuilt whenever the layout changes.
type boardRenderer struct {
	lay       *layout.Layout
	buildings map[core.Cell]layout.Building
}

func newBoardRenderer(lay *layout.Layout) *boardRenderer {
	r := &boardRenderer{lay: lay}
	r.index()
	return r
}

func (r *boardRenderer) index() {
	r.buildings = make(map[core.Cell]layout.Building)
	for _, b := range r.lay.Buildings {
		r.buildings[b.Wall.Cell(b.Offset, b.Ring)] = b
	}
}

// setLayout swaps in a new world after a restart.
func (r *boardRenderer) setLayout(lay *layout.Layout) {
	if r.lay == lay {
		return
	}
	r.lay = lay
	r.index()
}

// draw renders the grid, snake, fruit and HUD. The board is centered
// horizontally with one HUD row above and one below.
func (r *boardRenderer) draw(s *core.Screen, snap sim.Snapshot, highScore int) {
	s.Clear()
	offX := (s.Width() - layout.GridSize) / 2
	if offX < 0 {
		offX = 0
	}
	offY := 2

	for z := 0; z < layout.GridSize; z++ {
		for x := 0; x < layout.GridSize; x++ {
			ch, col := r.cellGlyph(core.C(x, layout.SnakePlane, z))
			s.SetColored(offX+x, offY+z, ch, col)
		}
	}

	for _, f := range snap.Fruits {
		ch, col := fruitGlyph(f.Type)
		s.SetColored(offX+f.Pos.X, offY+f.Pos.Z, ch, col)
	}

	for i := len(snap.Body) - 1; i >= 0; i-- {
		c := snap.Body[i]
		ch, col := '○', core.ColorGreen
		if i == 0 {
			ch, col = '●', core.ColorBrightGreen
		}
		s.SetColored(offX+c.X, offY+c.Z, ch, col)
	}

	r.drawHUD(s, snap, highScore, offY+layout.GridSize)
	r.drawOverlay(s, snap)
}

// cellGlyph picks the rune and color for a static world cell.
func (r *boardRenderer) cellGlyph(c core.Cell) (rune, core.Color) {
	lay := r.lay
	if p := lay.PortalAt(c); p != nil {
		if p.Type == layout.PortalRed {
			return 'R', core.ColorBrightRed
		}
		return 'B', core.ColorBrightBlue
	}
	if lay.IsChamber(c) {
		return '·', core.ColorGray
	}
	if lay.IsStreetPassage(c) || lay.IsAlcove(c) {
		return '░', core.ColorYellow
	}
	if b, ok := r.buildings[c]; ok {
		return buildingGlyph(b)
	}
	if lay.IsWall(c) {
		return '█', core.ColorGray
	}
	if lay.InBorder(c) {
		return '█', core.ColorGray
	}
	return ' ', core.ColorDefault
}

func buildingGlyph(b layout.Building) (rune, core.Color) {
	switch b.Kind {
	case layout.BuildingSearchlight:
		return '☼', core.ColorBrightYellow
	case layout.BuildingSkyscraper:
		return '▲', core.ColorBrightWhite
	case layout.BuildingTransmission:
		return 'T', core.ColorCyan
	default:
		if b.Height >= 8 {
			return '▓', core.ColorWhite
		}
		return '█', core.ColorGray
	}
}

func fruitGlyph(t sim.FruitType) (rune, core.Color) {
	switch t {
	case sim.FruitApple:
		return '●', core.ColorBrightRed
	case sim.FruitSpeedBoost:
		return '»', core.ColorBrightCyan
	case sim.FruitSlowDown:
		return '«', core.ColorBlue
	case sim.FruitMagnet:
		return 'U', core.ColorBrightMagenta
	case sim.FruitScoreDoubler:
		return '2', core.ColorBrightYellow
	case sim.FruitExtraLife:
		return '♥', core.ColorBrightRed
	case sim.FruitTriple:
		return '3', core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

func (r *boardRenderer) drawHUD(s *core.Screen, snap sim.Snapshot, highScore, y int) {
	hud := fmt.Sprintf("Score: %d  High: %d  Level: %d  Lives: %d  Speed: %.1f",
		snap.Score, highScore, snap.Level, snap.Lives, snap.Speed)
	s.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	if len(snap.Effects) > 0 {
		line := "Active:"
		for _, e := range snap.Effects {
			remain := (e.ExpiresAt - snap.SimTime + 999) / 1000
			line += fmt.Sprintf(" %s(%ds)", e.Type, remain)
		}
		s.DrawTextColored(2, 1, line, core.ColorBrightCyan)
	}

	if y < s.Height() {
		s.DrawTextColored(2, y, "a/← left  d/→ right  p pause  q quit", core.ColorGray)
	}
}

func (r *boardRenderer) drawOverlay(s *core.Screen, snap sim.Snapshot) {
	mid := s.Height() / 2
	switch snap.State {
	case sim.StateWelcome:
		s.DrawTextCentered(mid-1, "S N A K E   C I T Y")
		s.DrawTextCentered(mid+1, "press enter to play")
	case sim.StateStarting:
		s.DrawTextCentered(mid, "get ready...")
	case sim.StatePaused:
		s.DrawTextCentered(mid, "[ paused ]")
	case sim.StateCrashed:
		s.DrawTextCentered(mid, "crashed!")
	case sim.StateGameOver:
		s.DrawTextCentered(mid-1, "GAME OVER")
		s.DrawTextCentered(mid, fmt.Sprintf("final score: %d", snap.Score))
		s.DrawTextCentered(mid+2, "r restart  b scores  q quit")
	}
}
