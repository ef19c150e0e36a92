package sim

import (
	"testing"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/config"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
)

type recordSink struct {
	events []Event
}

func (r *recordSink) Handle(e Event) { r.events = append(r.events, e) }

func (r *recordSink) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type countingRecorder struct {
	calls int
	last  RunStats
}

func (c *countingRecorder) RecordRun(s RunStats) error {
	c.calls++
	c.last = s
	return nil
}

func testGame(seed int64, sink Sink, rec Recorder) (*Game, *config.Game) {
	cfg := config.DefaultGame()
	g := New(Options{Config: &cfg, Seed: seed, Sink: sink, Recorder: rec})
	return g, &cfg
}

// startPlaying confirms past the welcome screen and runs out the
// starting countdown.
func startPlaying(g *Game, cfg *config.Game) {
	g.HandleInput(core.ActionConfirm)
	g.Advance(int64(cfg.Lifecycle.StartingDurationMS))
	g.Advance(0)
}

// parkSnake replaces the snake with a fresh one in open ground and
// clears all fruit, giving tests full control over the board.
func parkSnake(g *Game, head core.Cell, h core.Heading) {
	g.snake = newSnake(head, h, 3)
	g.fruits = make(map[int]*Fruit)
}

func TestLifecycleStartsOnWelcome(t *testing.T) {
	g, _ := testGame(42, nil, nil)
	if g.State() != StateWelcome {
		t.Fatalf("state = %v, want welcome", g.State())
	}
	if g.Layout() == nil {
		t.Fatal("layout not generated")
	}
}

func TestStartingCountdown(t *testing.T) {
	g, cfg := testGame(42, nil, nil)
	g.HandleInput(core.ActionConfirm)
	if g.State() != StateStarting {
		t.Fatalf("state = %v, want starting", g.State())
	}
	g.Advance(int64(cfg.Lifecycle.StartingDurationMS) - 1)
	if g.State() != StateStarting {
		t.Fatalf("state = %v, want starting before countdown ends", g.State())
	}
	g.Advance(1)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing after countdown", g.State())
	}
}

func TestAppleScoreAndGrowth(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	g.addFruit(FruitApple, core.C(10, 1, 11))

	lenBefore := g.snake.Len()
	g.Advance(250) // one tick at initial speed
	if g.score != cfg.Scoring.AppleScore {
		t.Fatalf("score = %d, want %d", g.score, cfg.Scoring.AppleScore)
	}
	if g.run.Apples != 1 || g.life.Apples != 1 {
		t.Fatalf("apple counters = %d/%d, want 1/1", g.life.Apples, g.run.Apples)
	}
	// growth lands on the following step
	iv := g.tickInterval()
	g.Advance(iv)
	if g.snake.Len() != lenBefore+cfg.Scoring.AppleGrowth {
		t.Fatalf("length = %d, want %d", g.snake.Len(), lenBefore+cfg.Scoring.AppleGrowth)
	}
}

func TestComboMultiplier(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	now := g.Now()
	g.effects.Apply(FruitScoreDoubler, now, 60000)
	g.effects.Apply(FruitTriple, now, 60000)
	g.addFruit(FruitApple, core.C(10, 1, 11))

	g.Advance(250)
	want := cfg.Scoring.AppleScore * cfg.Scoring.ComboMultiplier
	if g.score != want {
		t.Fatalf("combo score = %d, want %d", g.score, want)
	}
}

func TestAppleGrowthUnderTriple(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	g.effects.Apply(FruitScoreDoubler, g.Now(), 60000)
	g.effects.Apply(FruitTriple, g.Now(), 60000)
	g.addFruit(FruitApple, core.C(10, 1, 11))

	lenBefore := g.snake.Len()
	g.Advance(250) // eat the apple
	if want := cfg.Scoring.AppleScore * cfg.Scoring.ComboMultiplier; g.score != want {
		t.Fatalf("combo score = %d, want %d", g.score, want)
	}
	// drain the banked growth over the following steps
	g.fruits = make(map[int]*Fruit)
	for i := 0; i < cfg.Scoring.TripleGrowth; i++ {
		g.Advance(g.tickInterval())
	}
	if g.snake.Len() != lenBefore+cfg.Scoring.TripleGrowth {
		t.Fatalf("growth from one apple under triple = %d, want %d",
			g.snake.Len()-lenBefore, cfg.Scoring.TripleGrowth)
	}
}

func TestScoreMultiplierTable(t *testing.T) {
	g, cfg := testGame(1, nil, nil)
	startPlaying(g, cfg)
	now := g.Now()

	if m := g.scoreMultiplier(now); m != 1 {
		t.Fatalf("base multiplier = %d, want 1", m)
	}
	g.effects.Apply(FruitScoreDoubler, now, 60000)
	if m := g.scoreMultiplier(now); m != cfg.Scoring.DoublerMultiplier {
		t.Fatalf("doubler multiplier = %d, want %d", m, cfg.Scoring.DoublerMultiplier)
	}
	g.effects.Clear()
	g.effects.Apply(FruitTriple, now, 60000)
	if m := g.scoreMultiplier(now); m != cfg.Scoring.TripleMultiplier {
		t.Fatalf("triple multiplier = %d, want %d", m, cfg.Scoring.TripleMultiplier)
	}
	g.effects.Apply(FruitScoreDoubler, now, 60000)
	if m := g.scoreMultiplier(now); m != cfg.Scoring.ComboMultiplier {
		t.Fatalf("combo multiplier = %d, want %d", m, cfg.Scoring.ComboMultiplier)
	}
}

func TestQueuedTurnsApplyOnConsecutiveTicks(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)

	g.HandleInput(core.ActionTurnLeft)
	g.HandleInput(core.ActionTurnRight)

	g.Advance(250)
	if !g.snake.Heading.Equal(core.HeadingWest) {
		t.Fatalf("heading after first tick = %v, want west", g.snake.Heading)
	}
	if g.snake.Head() != core.C(9, 1, 12) {
		t.Fatalf("head after first tick = %v", g.snake.Head())
	}
	g.Advance(250)
	if !g.snake.Heading.Equal(core.HeadingNorth) {
		t.Fatalf("heading after second tick = %v, want north", g.snake.Heading)
	}
	if g.snake.Head() != core.C(9, 1, 11) {
		t.Fatalf("head after second tick = %v", g.snake.Head())
	}
}

func TestTurnQueueCap(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	if !g.snake.QueueTurn(core.ActionTurnLeft) {
		t.Fatal("first turn rejected")
	}
	if !g.snake.QueueTurn(core.ActionTurnLeft) {
		t.Fatal("second turn rejected")
	}
	if g.snake.QueueTurn(core.ActionTurnLeft) {
		t.Fatal("third turn accepted past queue cap")
	}
}

func TestWallCrashAndRespawn(t *testing.T) {
	sink := &recordSink{}
	g, cfg := testGame(42, sink, nil)
	startPlaying(g, cfg)

	head := wallApproach(g)
	parkSnake(g, head, core.HeadingNorth)
	g.Advance(250)

	if g.State() != StateCrashed {
		t.Fatalf("state = %v, want crashed", g.State())
	}
	if g.lives != cfg.Snake.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", g.lives, cfg.Snake.InitialLives-1)
	}
	if sink.count(EventCrashed) != 1 {
		t.Fatalf("crash events = %d, want 1", sink.count(EventCrashed))
	}

	g.Advance(int64(cfg.Lifecycle.RespawnDelayMS))
	if g.State() != StateStarting {
		t.Fatalf("state after respawn delay = %v, want starting", g.State())
	}
	if g.snake.Len() != cfg.Snake.InitialLength {
		t.Fatalf("respawn length = %d, want %d", g.snake.Len(), cfg.Snake.InitialLength)
	}
	if g.life.Apples != 0 {
		t.Fatalf("life apples after respawn = %d, want 0", g.life.Apples)
	}
	if sink.count(EventRespawned) != 1 {
		t.Fatalf("respawn events = %d, want 1", sink.count(EventRespawned))
	}
}

func TestCrashFinalizesLifeStats(t *testing.T) {
	sink := &recordSink{}
	g, cfg := testGame(42, sink, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	g.addFruit(FruitApple, core.C(10, 1, 11))
	g.Advance(250) // eat one apple

	head := wallApproach(g)
	parkSnake(g, head, core.HeadingNorth)
	g.Advance(g.tickInterval())

	var crashed *Event
	for i := range sink.events {
		if sink.events[i].Type == EventCrashed {
			crashed = &sink.events[i]
		}
	}
	if crashed == nil {
		t.Fatal("no crash event emitted")
	}
	if crashed.Life.DurationMS <= 0 {
		t.Fatalf("life duration = %d, want > 0", crashed.Life.DurationMS)
	}
	if crashed.Life.Apples != 1 {
		t.Fatalf("life apples = %d, want 1", crashed.Life.Apples)
	}
	if crashed.Life.TopSpeed <= 0 {
		t.Fatalf("life top speed = %f, want > 0", crashed.Life.TopSpeed)
	}
}

// wallApproach finds a playable cell directly south of a solid north
// wall cell.
func wallApproach(g *Game) core.Cell {
	for x := 3; x <= 22; x++ {
		if g.layout.IsWall(core.C(x, 1, 2)) {
			return core.C(x, 1, 3)
		}
	}
	panic("no solid north wall cell")
}

func TestSelfCollision(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 10), core.HeadingNorth)
	// fold the body into a hook so the next step lands on a segment
	g.snake.Body = []core.Cell{
		core.C(10, 1, 10), core.C(10, 1, 11), core.C(11, 1, 11),
		core.C(11, 1, 10), core.C(11, 1, 9), core.C(10, 1, 9),
	}
	g.Advance(250)
	if g.State() != StateCrashed {
		t.Fatalf("state = %v, want crashed on self collision", g.State())
	}
}

func TestGameOverPersistsExactlyOnce(t *testing.T) {
	rec := &countingRecorder{}
	cfg := config.DefaultGame()
	cfg.Snake.InitialLives = 1
	g := New(Options{Config: &cfg, Seed: 42, Recorder: rec})
	startPlaying(g, &cfg)

	g.score = 170
	head := wallApproach(g)
	parkSnake(g, head, core.HeadingNorth)
	g.Advance(250)

	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if rec.calls != 1 {
		t.Fatalf("recorder calls = %d, want 1", rec.calls)
	}
	if rec.last.Score != 170 {
		t.Fatalf("recorded score = %d, want 170", rec.last.Score)
	}
	g.Advance(60000)
	if rec.calls != 1 {
		t.Fatalf("recorder calls after idle = %d, want still 1", rec.calls)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultGame()
	cfg.Snake.InitialLives = 1
	g := New(Options{Config: &cfg, Seed: 42})
	startPlaying(g, &cfg)
	head := wallApproach(g)
	parkSnake(g, head, core.HeadingNorth)
	g.Advance(250)

	g.HandleInput(core.ActionRestart)
	if g.State() != StateWelcome {
		t.Fatalf("state after restart = %v, want welcome", g.State())
	}
	if g.Now() != 0 {
		t.Fatalf("clock after restart = %d, want 0", g.Now())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)

	g.HandleInput(core.ActionPause)
	if g.State() != StatePaused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	before := g.Snapshot()
	g.Advance(10000)
	after := g.Snapshot()
	if before.String() != after.String() {
		t.Fatalf("paused state drifted:\n before %s\n after  %s", before, after)
	}

	g.HandleInput(core.ActionPause)
	g.Advance(250)
	if g.snake.Head() == core.C(10, 1, 12) {
		t.Fatal("snake did not move after unpause")
	}
}

func TestMagnetPullsByChebyshevRange(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	g.effects.Apply(FruitMagnet, g.Now(), 60000)

	// head lands on (10,1,11); boost is at distance 1, slowdown at 2
	inRange := g.addFruit(FruitSpeedBoost, core.C(11, 1, 10))
	outOfRange := g.addFruit(FruitSlowDown, core.C(12, 1, 9))

	g.Advance(250)
	if _, alive := g.fruits[inRange.ID]; alive {
		t.Fatal("fruit within magnet range not consumed")
	}
	if _, alive := g.fruits[outOfRange.ID]; !alive {
		t.Fatal("fruit outside magnet range consumed")
	}
	if !g.effects.Has(FruitSpeedBoost, g.Now()) {
		t.Fatal("pulled fruit effect not applied")
	}
}

func TestPortalTeleport(t *testing.T) {
	g, cfg := testGame(42, nil, nil)
	startPlaying(g, cfg)

	p := &g.layout.Portals[0]
	pair := g.layout.PairOf(p)
	dx, dz := p.Wall.Inward().Step()
	// stand one cell inside the playable area facing the portal block
	head := p.Cell.Add(dx, 0, dz)
	parkSnake(g, head, p.Wall.Inward().Opposite())

	sink := &recordSink{}
	g.sink = sink
	g.Advance(250)

	if g.snake.Head() != pair.Emergence {
		t.Fatalf("head = %v, want pair emergence %v", g.snake.Head(), pair.Emergence)
	}
	if !g.snake.Heading.Equal(pair.ExitHeading) {
		t.Fatalf("heading = %v, want %v", g.snake.Heading, pair.ExitHeading)
	}
	if sink.count(EventPortalEntered) != 1 {
		t.Fatalf("portal events = %d, want 1", sink.count(EventPortalEntered))
	}
	if g.run.PortalsEntered != 1 {
		t.Fatalf("portals entered = %d, want 1", g.run.PortalsEntered)
	}
}

func TestPassageCompletionNeedsFarDoor(t *testing.T) {
	g, cfg := testGame(42, nil, nil)
	startPlaying(g, cfg)
	st := g.layout.Street

	entryDoor := st.Wall.Cell(st.Entry, 0)
	exitDoor := st.Wall.Cell(st.Exit, 0)
	dx, dz := st.Wall.Inward().Step()
	outside := exitDoor.Add(dx, 0, dz)

	g.trackPassage(false, entryDoor, 0)
	g.snake = &Snake{Body: []core.Cell{outside, exitDoor}}
	g.trackPassage(true, outside, 0)
	if g.run.PassagesCompleted != 1 {
		t.Fatalf("passages completed = %d, want 1", g.run.PassagesCompleted)
	}

	// dipping back out the same two-cell door must not count
	sameDoor := st.Wall.Cell(st.Entry+1, 0)
	outside = sameDoor.Add(dx, 0, dz)
	g.trackPassage(false, entryDoor, 0)
	g.snake = &Snake{Body: []core.Cell{outside, sameDoor}}
	g.trackPassage(true, outside, 0)
	if g.run.PassagesCompleted != 1 {
		t.Fatalf("passages completed = %d, want still 1", g.run.PassagesCompleted)
	}
}

func TestLevelFromApples(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	sink := &recordSink{}
	g.sink = sink
	startPlaying(g, cfg)

	g.run.Apples = 9
	g.checkLevel(g.Now())
	if g.level != 1 {
		t.Fatalf("level = %d, want 1 at 9 apples", g.level)
	}
	g.run.Apples = 10
	g.checkLevel(g.Now())
	if g.level != 2 {
		t.Fatalf("level = %d, want 2 at 10 apples", g.level)
	}
	if sink.count(EventLevelUp) != 1 {
		t.Fatalf("level up events = %d, want 1", sink.count(EventLevelUp))
	}
}

func TestSpeedIntervalProgression(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)

	if iv := g.tickInterval(); iv != 250 {
		t.Fatalf("initial interval = %d, want 250", iv)
	}
	g.life.Apples = 10 // 4.0 + 1.2 = 5.2 cells/s
	want := int64(1000.0 / (cfg.Snake.InitialSpeed + 10*cfg.Snake.SpeedIncrease))
	if iv := g.tickInterval(); iv != want {
		t.Fatalf("interval at 10 apples = %d, want %d", iv, want)
	}
	g.life.Apples = 1000 // clamps at the floor
	if iv := g.tickInterval(); iv != int64(cfg.Snake.MinIntervalMS) {
		t.Fatalf("clamped interval = %d, want %d", iv, cfg.Snake.MinIntervalMS)
	}

	g.life.Apples = 0
	g.effects.Apply(FruitSpeedBoost, g.Now(), 60000)
	if iv := g.tickInterval(); iv != int64(250*cfg.Effects.SpeedBoostFactor) {
		t.Fatalf("boosted interval = %d, want %d", iv, int64(250*cfg.Effects.SpeedBoostFactor))
	}
	g.effects.Clear()
	g.effects.Apply(FruitSlowDown, g.Now(), 60000)
	if iv := g.tickInterval(); iv != int64(250*cfg.Effects.SlowDownFactor) {
		t.Fatalf("slowed interval = %d, want %d", iv, int64(250*cfg.Effects.SlowDownFactor))
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(g *Game) []string {
		var states []string
		g.HandleInput(core.ActionConfirm)
		g.Advance(3000)
		for frame := 0; frame < 600; frame++ {
			switch frame {
			case 50:
				g.HandleInput(core.ActionTurnLeft)
			case 120:
				g.HandleInput(core.ActionTurnRight)
			case 200:
				g.HandleInput(core.ActionTurnLeft)
			case 340:
				g.HandleInput(core.ActionTurnLeft)
			}
			g.Advance(16)
			if frame%50 == 0 {
				states = append(states, g.Snapshot().String())
			}
		}
		return states
	}

	a, _ := testGame(12345, nil, nil)
	b, _ := testGame(12345, nil, nil)
	sa, sb := script(a), script(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("replay diverged at checkpoint %d:\n a %s\n b %s", i, sa[i], sb[i])
		}
	}
}

func TestSnapshotFruitOrderStable(t *testing.T) {
	g, cfg := testGame(7, nil, nil)
	startPlaying(g, cfg)
	parkSnake(g, core.C(10, 1, 12), core.HeadingNorth)
	g.addFruit(FruitApple, core.C(5, 1, 5))
	g.addFruit(FruitMagnet, core.C(6, 1, 5))
	g.addFruit(FruitTriple, core.C(7, 1, 5))

	first := g.Snapshot().String()
	for i := 0; i < 20; i++ {
		if got := g.Snapshot().String(); got != first {
			t.Fatalf("snapshot order unstable:\n %s\n %s", first, got)
		}
	}
}
