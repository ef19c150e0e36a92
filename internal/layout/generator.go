package layout

import (
	"math/rand"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

// Placement counts for the decorative pass.
const (
	paidBannerCount     = 20
	cosmeticBannerCount = 6
	flyerCount          = 22
	flyerGap            = 2 // minimum free offsets between flyers
	tallBuildingHeight  = 10
)

// Generate builds one Layout for a round. The same seed always produces the
// same layout. Structural placement (passages, portals, billboard) always
// succeeds on the fixed board; decorative placement skips items that find
// no valid slot rather than retrying indefinitely.
func Generate(seed int64) *Layout {
	rng := rand.New(rand.NewSource(seed))

	l := &Layout{
		Seed:         seed,
		portalByCell: make(map[core.Cell]int),
		chamberCells: make(map[core.Cell]bool),
	}

	r := assignRoles(rng)
	l.Street = buildPassage(PassageStreet, r.street, rng)
	l.Alcove = buildPassage(PassageAlcove, r.alcove, rng)
	buildBillboard(l, r.billboard, rng)
	placePortals(l, r, rng)
	placeBuildings(l, r, rng)
	placeBanners(l, rng)
	placeFlyers(l, rng)

	return l
}

// assignRoles randomly maps the four walls to the four structural roles.
func assignRoles(rng *rand.Rand) roles {
	walls := []Wall{WallNorth, WallSouth, WallEast, WallWest}
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	return roles{
		street:    walls[0],
		alcove:    walls[1],
		portal:    walls[2],
		billboard: walls[3],
	}
}

// buildPassage picks the two door offsets (separated by at least 5) and
// materializes the corridor cells. The street variant is two cells wide and
// runs through rings 1..2; the alcove is single file, one ring deep.
func buildPassage(kind PassageKind, wall Wall, rng *rand.Rand) Passage {
	width := 1
	if kind == PassageStreet {
		width = 2
	}

	// entry < exit, exit door still fully on the wall span. Door separation
	// is capped so the corridor never swallows the whole wall: the wall must
	// keep free offsets for its secondary portal and the searchlight tower.
	maxDoor := PlaySpan - width // 18 or 19
	entry := rng.Intn(maxDoor - 5 + 1)
	maxSep := core.Min(maxDoor-entry, 12)
	exit := entry + 5 + rng.Intn(maxSep-5+1)

	p := Passage{
		Kind:  kind,
		Wall:  wall,
		Entry: entry,
		Exit:  exit,
		Width: width,
		cells: make(map[core.Cell]bool),
	}

	// Door openings through the innermost ring.
	for i := 0; i < width; i++ {
		p.cells[wall.Cell(entry+i, 0)] = true
		p.cells[wall.Cell(exit+i, 0)] = true
	}

	// Connecting corridor behind the wall face.
	if kind == PassageStreet {
		for o := entry; o < exit+width; o++ {
			p.cells[wall.Cell(o, 1)] = true
			p.cells[wall.Cell(o, 2)] = true
		}
		p.SpawnCell = wall.Cell((entry+exit+1)/2, 2)
	} else {
		for o := entry; o <= exit; o++ {
			p.cells[wall.Cell(o, 1)] = true
		}
		p.SpawnCell = wall.Cell((entry+exit)/2, 1)
	}

	return p
}

// buildBillboard places the three-cell base on the innermost ring with its
// hollow chamber directly behind it.
func buildBillboard(l *Layout, wall Wall, rng *rand.Rand) {
	offset := rng.Intn(PlaySpan - 2)
	b := Billboard{Wall: wall, Offset: offset}
	for i := 0; i < 3; i++ {
		b.Base[i] = wall.Cell(offset+i, 0)
		b.Chamber[i] = wall.Cell(offset+i, 1)
		l.chamberCells[b.Chamber[i]] = true
	}
	l.Billboard = b
}

// placePortals puts the Red/Blue pair on the double-portal wall and the
// secondary Red on the street wall / secondary Blue on the alcove wall,
// outside their own passage's door spans.
func placePortals(l *Layout, r roles, rng *rand.Rand) {
	// Primary pair: two offsets at least 2 apart.
	o1 := rng.Intn(PlaySpan)
	o2 := o1
	for core.Abs(o2-o1) < 2 {
		o2 = rng.Intn(PlaySpan)
	}
	primaryRed, primaryBlue := o1, o2
	if rng.Intn(2) == 0 {
		primaryRed, primaryBlue = o2, o1
	}

	secondaryRed := freePortalOffset(&l.Street, rng)
	secondaryBlue := freePortalOffset(&l.Alcove, rng)

	specs := [4]struct {
		typ     PortalType
		wall    Wall
		offset  int
		primary bool
	}{
		{PortalRed, r.portal, primaryRed, true},
		{PortalBlue, r.portal, primaryBlue, true},
		{PortalRed, r.street, secondaryRed, false},
		{PortalBlue, r.alcove, secondaryBlue, false},
	}

	for i, s := range specs {
		cell := s.wall.Cell(s.offset, 0)
		dx, dz := s.wall.Inward().Step()
		l.Portals[i] = Portal{
			ID:          i,
			Type:        s.typ,
			Wall:        s.wall,
			Offset:      s.offset,
			Cell:        cell,
			Emergence:   cell.Add(3*dx, 0, 3*dz),
			ExitHeading: s.wall.Inward(),
			Primary:     s.primary,
		}
		l.portalByCell[cell] = i
	}
}

// freePortalOffset picks an offset on the passage's wall outside its door
// spans. With doors at least 5 apart there is always room.
func freePortalOffset(p *Passage, rng *rand.Rand) int {
	for {
		o := rng.Intn(PlaySpan)
		if !p.DoorSpan(o) {
			return o
		}
	}
}

// placeBuildings fills the decorative city ring: two non-adjacent
// skyscrapers, four transmission towers, one searchlight tower on the
// street wall, then regular buildings with ring-stratified heights.
func placeBuildings(l *Layout, r roles, rng *rand.Rand) {
	occupied := occupiedOffsets(l)

	type slot struct {
		wall   Wall
		offset int
	}
	var free []slot
	for _, w := range Walls {
		for o := 0; o < PlaySpan; o++ {
			if !occupied[w][o] {
				free = append(free, slot{w, o})
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	taken := make(map[slot]bool)
	adjacent := func(a, b slot) bool {
		return a.wall == b.wall && core.Abs(a.offset-b.offset) <= 1
	}

	// One searchlight tower, constrained to the street-passage wall.
	// Reserved first: its wall-bound slot must not be eaten by the others.
	for _, s := range free {
		if s.wall != r.street {
			continue
		}
		taken[s] = true
		l.Buildings = append(l.Buildings, Building{
			Wall: s.wall, Offset: s.offset, Ring: 2,
			Kind: BuildingSearchlight, Height: 8, Roof: RoofFlat,
		})
		break
	}

	// Two skyscrapers, never side by side.
	var sky []slot
	for _, s := range free {
		if len(sky) == 2 {
			break
		}
		if taken[s] || (len(sky) == 1 && adjacent(sky[0], s)) {
			continue
		}
		sky = append(sky, s)
		taken[s] = true
		l.Buildings = append(l.Buildings, Building{
			Wall: s.wall, Offset: s.offset, Ring: 2,
			Kind: BuildingSkyscraper, Height: 14 + rng.Intn(6), Roof: RoofFlat,
		})
	}

	// Four transmission towers.
	placed := 0
	for _, s := range free {
		if placed == 4 {
			break
		}
		if taken[s] {
			continue
		}
		taken[s] = true
		placed++
		l.Buildings = append(l.Buildings, Building{
			Wall: s.wall, Offset: s.offset, Ring: 2,
			Kind: BuildingTransmission, Height: 10 + rng.Intn(3), Roof: RoofAntenna,
		})
	}

	// Regular buildings on every remaining non-structural wall cell.
	base := make(map[core.Cell]bool, 3)
	for _, c := range l.Billboard.Base {
		base[c] = true
	}
	for _, w := range Walls {
		for ring := 0; ring < WallThickness; ring++ {
			for o := 0; o < PlaySpan; o++ {
				if ring == 2 && taken[slot{w, o}] {
					continue
				}
				cell := w.Cell(o, ring)
				if !l.IsWall(cell) || base[cell] {
					continue
				}
				l.Buildings = append(l.Buildings, Building{
					Wall: w, Offset: o, Ring: ring,
					Kind:   BuildingRegular,
					Height: regularHeight(ring, rng),
					Roof:   RoofStyle(rng.Intn(4)),
				})
			}
		}
	}
}

// regularHeight draws a height from the ring's range: the inner ring stays
// low so the board reads open, the outer ring forms the skyline.
func regularHeight(ring int, rng *rand.Rand) int {
	switch ring {
	case 0:
		return 2 + rng.Intn(3) // 2..4
	case 1:
		return 4 + rng.Intn(4) // 4..7
	default:
		return 7 + rng.Intn(6) // 7..12
	}
}

// occupiedOffsets marks, per wall, the offsets reserved by structure:
// passage corridors, portals plus one, billboard plus two.
func occupiedOffsets(l *Layout) map[Wall][PlaySpan]bool {
	occ := make(map[Wall][PlaySpan]bool, 4)
	for _, w := range Walls {
		occ[w] = [PlaySpan]bool{}
	}
	mark := func(w Wall, from, to int) {
		a := occ[w]
		for o := core.Max(0, from); o <= core.Min(PlaySpan-1, to); o++ {
			a[o] = true
		}
		occ[w] = a
	}

	for _, p := range []*Passage{&l.Street, &l.Alcove} {
		mark(p.Wall, p.Entry, p.Exit+p.Width-1)
	}
	for i := range l.Portals {
		pt := &l.Portals[i]
		mark(pt.Wall, pt.Offset-1, pt.Offset+1)
	}
	mark(l.Billboard.Wall, l.Billboard.Offset-2, l.Billboard.Offset+4)

	return occ
}

// placeBanners distributes twenty paid banners 4/4/6/6 across the walls and
// six cosmetic banners preferring offsets next to tall buildings. A banner
// with no free slot left is skipped.
func placeBanners(l *Layout, rng *rand.Rand) {
	occupied := occupiedOffsets(l)
	used := make(map[Wall]map[int]bool, 4)
	for _, w := range Walls {
		used[w] = make(map[int]bool)
	}

	freeOffsets := func(w Wall) []int {
		var out []int
		occ := occupied[w]
		for o := 0; o < PlaySpan; o++ {
			if !occ[o] && !used[w][o] {
				out = append(out, o)
			}
		}
		return out
	}

	// paidBannerCount split 4/4/6/6 across the shuffled walls.
	quotas := []int{4, 4, 6, 6}
	rng.Shuffle(len(quotas), func(i, j int) { quotas[i], quotas[j] = quotas[j], quotas[i] })

	placed := 0
	for wi, w := range Walls {
		for n := 0; n < quotas[wi] && placed < paidBannerCount; n++ {
			cand := freeOffsets(w)
			if len(cand) == 0 {
				break // skip, never retry
			}
			o := cand[rng.Intn(len(cand))]
			used[w][o] = true
			l.Banners = append(l.Banners, Banner{Wall: w, Offset: o, Paid: true})
			placed++
		}
	}

	// Cosmetic banners: prefer offsets adjacent to a tall building.
	tall := make(map[Wall]map[int]bool, 4)
	for _, w := range Walls {
		tall[w] = make(map[int]bool)
	}
	for _, b := range l.Buildings {
		if b.Height >= tallBuildingHeight {
			tall[b.Wall][b.Offset] = true
		}
	}

	for n := 0; n < cosmeticBannerCount; n++ {
		w := Walls[rng.Intn(len(Walls))]
		cand := freeOffsets(w)
		if len(cand) == 0 {
			continue
		}
		var preferred []int
		for _, o := range cand {
			if tall[w][o-1] || tall[w][o+1] {
				preferred = append(preferred, o)
			}
		}
		pool := cand
		if len(preferred) > 0 {
			pool = preferred
		}
		o := pool[rng.Intn(len(pool))]
		used[w][o] = true
		l.Banners = append(l.Banners, Banner{Wall: w, Offset: o, Paid: false})
	}
}

// flyerSegment is a contiguous run of flyable offsets on one wall.
type flyerSegment struct {
	wall     Wall
	from, to int // inclusive
	indented bool
}

func (s flyerSegment) length() int {
	return s.to - s.from + 1
}

// placeFlyers distributes 22 flyers across walls proportionally to their
// flyable length, sampling positions proportionally to remaining segment
// length and carving a minimum gap around each placement.
func placeFlyers(l *Layout, rng *rand.Rand) {
	segsByWall := make(map[Wall][]flyerSegment, 4)
	total := 0
	lengths := make(map[Wall]int, 4)
	for _, w := range Walls {
		segs := flyableSegments(l, w)
		segsByWall[w] = segs
		for _, s := range segs {
			lengths[w] += s.length()
		}
		total += lengths[w]
	}
	if total == 0 {
		return
	}

	// Wall quotas by largest remainder.
	quota := make(map[Wall]int, 4)
	assigned := 0
	type rem struct {
		wall Wall
		frac float64
	}
	var rems []rem
	for _, w := range Walls {
		exact := float64(flyerCount) * float64(lengths[w]) / float64(total)
		quota[w] = int(exact)
		assigned += quota[w]
		rems = append(rems, rem{w, exact - float64(quota[w])})
	}
	for assigned < flyerCount {
		best := 0
		for i := 1; i < len(rems); i++ {
			if rems[i].frac > rems[best].frac {
				best = i
			}
		}
		quota[rems[best].wall]++
		rems[best].frac = -1
		assigned++
	}

	for _, w := range Walls {
		segs := segsByWall[w]
		for n := 0; n < quota[w]; n++ {
			seg, pos, ok := sampleSegment(segs, rng)
			if !ok {
				break // no valid slot left on this wall, skip
			}
			l.Flyers = append(l.Flyers, Flyer{Wall: w, Offset: pos, Indented: segs[seg].indented})
			segs = carve(segs, seg, pos)
		}
	}
}

// flyableSegments computes the complement of the wall's no-fly zones
// (portals ±1, billboard ±1, passage doors ±1), plus the indented island
// zones between a passage's own doors.
func flyableSegments(l *Layout, w Wall) []flyerSegment {
	blocked := [PlaySpan]bool{}
	block := func(from, to int) {
		for o := core.Max(0, from); o <= core.Min(PlaySpan-1, to); o++ {
			blocked[o] = true
		}
	}

	portalBlocked := [PlaySpan]bool{}
	for i := range l.Portals {
		p := &l.Portals[i]
		if p.Wall == w {
			block(p.Offset-1, p.Offset+1)
			for o := core.Max(0, p.Offset-1); o <= core.Min(PlaySpan-1, p.Offset+1); o++ {
				portalBlocked[o] = true
			}
		}
	}
	if l.Billboard.Wall == w {
		block(l.Billboard.Offset-1, l.Billboard.Offset+3)
	}

	indented := [PlaySpan]bool{}
	for _, p := range []*Passage{&l.Street, &l.Alcove} {
		if p.Wall != w {
			continue
		}
		block(p.Entry-1, p.Entry+p.Width)
		block(p.Exit-1, p.Exit+p.Width)
		// Island between the doors: flyable, marked indented. A secondary
		// portal can land on the island; its no-fly zone stays blocked.
		for o := p.Entry + p.Width + 1; o <= p.Exit-2; o++ {
			if o >= 0 && o < PlaySpan && !portalBlocked[o] {
				indented[o] = true
				blocked[o] = false
			}
		}
	}

	var segs []flyerSegment
	o := 0
	for o < PlaySpan {
		if blocked[o] {
			o++
			continue
		}
		start := o
		ind := indented[o]
		for o < PlaySpan && !blocked[o] && indented[o] == ind {
			o++
		}
		segs = append(segs, flyerSegment{wall: w, from: start, to: o - 1, indented: ind})
	}
	return segs
}

// sampleSegment picks a segment with probability proportional to its length
// and a uniform position inside it.
func sampleSegment(segs []flyerSegment, rng *rand.Rand) (idx, pos int, ok bool) {
	total := 0
	for _, s := range segs {
		total += s.length()
	}
	if total <= 0 {
		return 0, 0, false
	}
	t := rng.Intn(total)
	for i, s := range segs {
		if t < s.length() {
			return i, s.from + t, true
		}
		t -= s.length()
	}
	return 0, 0, false
}

// carve removes the placed flyer and its minimum gap from the segment list.
func carve(segs []flyerSegment, idx, pos int) []flyerSegment {
	s := segs[idx]
	out := make([]flyerSegment, 0, len(segs)+1)
	out = append(out, segs[:idx]...)
	if pos-flyerGap-1 >= s.from {
		out = append(out, flyerSegment{wall: s.wall, from: s.from, to: pos - flyerGap - 1, indented: s.indented})
	}
	if pos+flyerGap+1 <= s.to {
		out = append(out, flyerSegment{wall: s.wall, from: pos + flyerGap + 1, to: s.to, indented: s.indented})
	}
	out = append(out, segs[idx+1:]...)
	return out
}
