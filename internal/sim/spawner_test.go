package sim

import (
	"testing"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/config"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

// holdGame returns a game in play with an enormous tick interval, so
// spawn timers fire on the clock without any movement ticks running.
func holdGame(seed int64, sink Sink) (*Game, *config.Game) {
	cfg := config.DefaultGame()
	cfg.Snake.InitialSpeed = 0.0001
	g := New(Options{Config: &cfg, Seed: seed, Sink: sink})
	g.HandleInput(core.ActionConfirm)
	g.Advance(int64(cfg.Lifecycle.StartingDurationMS))
	return g, &cfg
}

func boardFruits(g *Game) []*Fruit {
	var out []*Fruit
	for _, f := range g.fruits {
		if f.Type.Category() == CategoryBoard {
			out = append(out, f)
		}
	}
	return out
}

func TestNoSpawnsDuringCountdown(t *testing.T) {
	cfg := config.DefaultGame()
	cfg.Lifecycle.StartingDurationMS = 1 << 20
	cfg.Snake.InitialSpeed = 0.0001 // no movement ticks, timers only
	g := New(Options{Config: &cfg, Seed: 42})
	g.HandleInput(core.ActionConfirm)

	g.Advance(1<<20 - 1)
	if g.State() != StateStarting {
		t.Fatalf("state = %v, want starting", g.State())
	}
	if n := len(boardFruits(g)); n != 0 {
		t.Fatalf("board fruits during countdown = %d, want 0", n)
	}
	if g.passageFruitID != 0 {
		t.Fatal("passage fruit spawned during countdown")
	}

	// chains arm at the transition into play
	g.Advance(1 + int64(cfg.Spawning.BoardDelayMS))
	if n := len(boardFruits(g)); n != 1 {
		t.Fatalf("board fruits after countdown = %d, want 1", n)
	}
}

func TestBoardFruitChain(t *testing.T) {
	sink := &recordSink{}
	g, cfg := holdGame(42, sink)

	g.Advance(int64(cfg.Spawning.BoardDelayMS) - 1)
	if n := len(boardFruits(g)); n != 0 {
		t.Fatalf("board fruits before delay = %d, want 0", n)
	}
	g.Advance(1)
	if n := len(boardFruits(g)); n != 1 {
		t.Fatalf("board fruits after delay = %d, want 1", n)
	}
	if g.boardFruitID == 0 {
		t.Fatal("board fruit id not tracked")
	}

	g.Advance(int64(cfg.Spawning.BoardLifetimeMS))
	if n := len(boardFruits(g)); n != 0 {
		t.Fatalf("board fruits after lifetime = %d, want 0", n)
	}
	if sink.count(EventFruitExpired) != 1 {
		t.Fatalf("expiry events = %d, want exactly 1", sink.count(EventFruitExpired))
	}

	// next one arrives after cooldown plus delay
	wait := int64(cfg.Spawning.BoardCooldownMS + cfg.Spawning.BoardDelayMS)
	g.Advance(wait - 1)
	if n := len(boardFruits(g)); n != 0 {
		t.Fatalf("board fruits during cooldown = %d, want 0", n)
	}
	g.Advance(1)
	if n := len(boardFruits(g)); n != 1 {
		t.Fatalf("board fruits after cooldown = %d, want 1", n)
	}
}

func TestBoardFruitConsumptionCancelsExpiry(t *testing.T) {
	sink := &recordSink{}
	g, cfg := holdGame(42, sink)

	g.Advance(int64(cfg.Spawning.BoardDelayMS))
	fruits := boardFruits(g)
	if len(fruits) != 1 {
		t.Fatalf("board fruits = %d, want 1", len(fruits))
	}
	g.consume(fruits[0], g.Now())

	g.Advance(int64(cfg.Spawning.BoardLifetimeMS) * 2)
	if sink.count(EventFruitExpired) != 0 {
		t.Fatalf("expiry events after consumption = %d, want 0", sink.count(EventFruitExpired))
	}
	if n := len(boardFruits(g)); n != 1 {
		t.Fatalf("board fruits after cooldown cycle = %d, want 1 fresh one", n)
	}
}

func TestBucketComposition(t *testing.T) {
	g, cfg := holdGame(7, nil)
	g.refillBucket()
	if len(g.bucket) != cfg.Spawning.TriplePerBucket+cfg.Spawning.ExtraLifePerBucket {
		t.Fatalf("bucket size = %d", len(g.bucket))
	}
	triples, lives := 0, 0
	for _, ft := range g.bucket {
		switch ft {
		case FruitTriple:
			triples++
		case FruitExtraLife:
			lives++
		default:
			t.Fatalf("unexpected bucket entry %v", ft)
		}
	}
	if triples != cfg.Spawning.TriplePerBucket || lives != cfg.Spawning.ExtraLifePerBucket {
		t.Fatalf("bucket = %d triples, %d extra lives", triples, lives)
	}
}

func TestBucketRefillsWhenEmpty(t *testing.T) {
	g, cfg := holdGame(7, nil)
	g.bucket = nil
	total := cfg.Spawning.TriplePerBucket + cfg.Spawning.ExtraLifePerBucket
	for i := 0; i < total*3; i++ {
		ft := g.drawFromBucket()
		if ft != FruitTriple && ft != FruitExtraLife {
			t.Fatalf("draw %d = %v, want passage fruit", i, ft)
		}
	}
}

func TestExtraLifeCaps(t *testing.T) {
	g, cfg := holdGame(7, nil)

	g.bucket = []FruitType{FruitExtraLife}
	g.extraLifeLife = cfg.Spawning.ExtraLifeLifeCap
	if ft := g.drawFromBucket(); ft != FruitTriple {
		t.Fatalf("draw at life cap = %v, want triple substitute", ft)
	}

	g.bucket = []FruitType{FruitExtraLife}
	g.extraLifeLife = 0
	g.extraLifeGame = cfg.Spawning.ExtraLifeGameCap
	if ft := g.drawFromBucket(); ft != FruitTriple {
		t.Fatalf("draw at game cap = %v, want triple substitute", ft)
	}

	g.bucket = []FruitType{FruitExtraLife}
	g.extraLifeGame = 0
	if ft := g.drawFromBucket(); ft != FruitExtraLife {
		t.Fatalf("uncapped draw = %v, want extra life", ft)
	}
	if g.extraLifeLife != 1 || g.extraLifeGame != 1 {
		t.Fatalf("cap counters = %d/%d, want 1/1", g.extraLifeLife, g.extraLifeGame)
	}
}

func TestPassageSpawnAlternates(t *testing.T) {
	g, _ := holdGame(42, nil)
	first := g.nextPassageCell()
	second := g.nextPassageCell()
	third := g.nextPassageCell()
	if first != g.layout.Street.SpawnCell {
		t.Fatalf("first pocket = %v, want street spawn", first)
	}
	if second != g.layout.Alcove.SpawnCell {
		t.Fatalf("second pocket = %v, want alcove spawn", second)
	}
	if third != first {
		t.Fatalf("third pocket = %v, want street again", third)
	}
}

func TestPassageSpawnRetriesWhenBlocked(t *testing.T) {
	g, cfg := holdGame(42, nil)
	g.snake = &Snake{Body: []core.Cell{g.layout.Street.SpawnCell}}
	g.passageFlip = false

	before := len(g.clock.pending())
	g.spawnPassageFruit(g.Now())
	if g.passageFruitID != 0 {
		t.Fatal("fruit spawned on an occupied pocket")
	}
	if len(g.clock.pending()) != before+1 {
		t.Fatal("retry not scheduled")
	}
	if got := g.clock.pending(); got[len(got)-1] < g.Now()+int64(cfg.Spawning.PassageRetryMS) {
		t.Fatalf("retry due too early: %v", got)
	}
}

func TestPassageFruitSpawnsInPocket(t *testing.T) {
	g, cfg := holdGame(42, nil)
	g.Advance(int64(cfg.Spawning.PassageDelayMS))
	if g.passageFruitID == 0 {
		t.Fatal("no passage fruit after delay")
	}
	f := g.fruits[g.passageFruitID]
	if f.Pos != g.layout.Street.SpawnCell && f.Pos != g.layout.Alcove.SpawnCell {
		t.Fatalf("passage fruit at %v, want a spawn pocket", f.Pos)
	}
	if f.Type.Category() != CategoryPassage {
		t.Fatalf("passage fruit type = %v", f.Type)
	}
}

func TestPickBoardTypeStaysInCategory(t *testing.T) {
	g, _ := holdGame(7, nil)
	for i := 0; i < 200; i++ {
		if ft := g.pickBoardType(); ft.Category() != CategoryBoard {
			t.Fatalf("pick %d = %v, not a board pickup", i, ft)
		}
	}
}

func TestSlowDownOnlyAboveSpeedThreshold(t *testing.T) {
	g, cfg := holdGame(7, nil)
	for i := 0; i < 200; i++ {
		if ft := g.pickBoardType(); ft == FruitSlowDown {
			t.Fatalf("pick %d = slow down below the speed threshold", i)
		}
	}

	// eat enough apples to push the base speed over the threshold
	need := (cfg.Spawning.SpeedThreshold - cfg.Snake.InitialSpeed) / cfg.Snake.SpeedIncrease
	g.life.Apples = int(need) + 1
	seen := false
	for i := 0; i < 200; i++ {
		if g.pickBoardType() == FruitSlowDown {
			seen = true
			break
		}
	}
	if !seen {
		t.Fatal("slow down never picked above the speed threshold")
	}
}

func TestFreeCellAvoidsOccupied(t *testing.T) {
	g, _ := holdGame(7, nil)
	for i := 0; i < 100; i++ {
		c, ok := g.freeCell()
		if !ok {
			t.Fatal("no free cell on a nearly empty board")
		}
		if g.snake.Occupies(c) {
			t.Fatalf("free cell %v overlaps the snake", c)
		}
		if g.fruitAt(c) != nil {
			t.Fatalf("free cell %v overlaps a fruit", c)
		}
		if !g.layout.Inside(c) {
			t.Fatalf("free cell %v outside the playable area", c)
		}
	}
}
