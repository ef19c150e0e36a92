package sim

import (
	"math/rand"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/config"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/layout"
)

// State is the lifecycle phase of a round.
type State int

const (
	StateLoading State = iota
	StateWelcome
	StateStarting
	StatePlaying
	StatePaused
	StateCrashed
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateWelcome:
		return "welcome"
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCrashed:
		return "crashed"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// magnetRadius is the Chebyshev pull range of the magnet effect.
const magnetRadius = 1

// Options configures a new Game. Zero-value Sink and Recorder fall back
// to no-ops.
type Options struct {
	Config   *config.Game
	Seed     int64
	Sink     Sink
	Recorder Recorder
}

// Game is the deterministic simulation for one session. It is not safe
// for concurrent use; the frame driver owns it.
type Game struct {
	cfg    *config.Game
	seed   int64
	rng    *rand.Rand
	layout *layout.Layout
	clock  *clock

	state State
	snake *Snake
	accum int64 // ms owed toward the next movement tick

	score  int
	level  int
	lives  int
	fruits map[int]*Fruit

	nextFruitID    int
	boardTimer     int
	boardExpiry    int
	boardFruitID   int
	passageTimer   int
	passageFruitID int
	passageFlip    bool
	bucket         []FruitType
	extraLifeLife  int
	extraLifeGame  int
	roundStart     int64

	effects *effectSet

	inPassage    bool
	passageEntry core.Cell

	life LifeStats
	run  RunStats

	sink Sink
	rec  Recorder
}

// New generates the layout for the seed and returns a game sitting on
// the welcome screen.
func New(opts Options) *Game {
	g := &Game{
		cfg:     opts.Config,
		sink:    opts.Sink,
		rec:     opts.Recorder,
		effects: newEffectSet(),
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.rec == nil {
		g.rec = nopRecorder{}
	}
	g.Reset(opts.Seed)
	return g
}

// Reset discards all round state and regenerates the world from seed.
// The game lands on the welcome screen.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.state = StateLoading
	g.rng = rand.New(rand.NewSource(seed))
	g.layout = layout.Generate(seed)
	g.clock = newClock()
	g.fruits = make(map[int]*Fruit)
	g.nextFruitID = 0
	g.effects.Clear()
	g.bucket = g.bucket[:0]
	g.setState(StateWelcome)
}

// Layout exposes the generated world for rendering.
func (g *Game) Layout() *layout.Layout { return g.layout }

// State returns the current lifecycle phase.
func (g *Game) State() State { return g.state }

// Now returns the current simulation time in milliseconds.
func (g *Game) Now() int64 { return g.clock.Now() }

// HandleInput applies one player action. Turns queue up during play;
// everything else drives the lifecycle.
func (g *Game) HandleInput(a core.Action) {
	switch g.state {
	case StateWelcome:
		if a == core.ActionConfirm {
			g.startRound()
		}
	case StatePlaying:
		switch a {
		case core.ActionTurnLeft, core.ActionTurnRight:
			g.snake.QueueTurn(a)
		case core.ActionPause, core.ActionBack:
			g.setState(StatePaused)
		}
	case StatePaused:
		switch a {
		case core.ActionPause, core.ActionConfirm, core.ActionBack:
			g.setState(StatePlaying)
		}
	case StateGameOver:
		switch a {
		case core.ActionConfirm, core.ActionRestart:
			g.Reset(g.seed + 1)
		}
	}
}

// Advance moves the simulation forward by elapsedMS of real time. The
// clock freezes entirely while paused; movement ticks accrue only while
// playing, so menus and countdowns never owe catch-up steps.
func (g *Game) Advance(elapsedMS int64) {
	if g.state == StatePaused {
		return
	}
	wasPlaying := g.state == StatePlaying
	g.clock.Advance(elapsedMS)
	if !wasPlaying || g.state != StatePlaying {
		g.accum = 0
		return
	}
	g.accum += elapsedMS
	for g.state == StatePlaying {
		iv := g.tickInterval()
		if g.accum < iv {
			break
		}
		g.accum -= iv
		g.tick()
	}
}

// tickInterval returns the current milliseconds per movement step:
// base interval from accumulated apples, clamped, then scaled by any
// active speed effects.
func (g *Game) tickInterval() int64 {
	speed := g.cfg.Snake.InitialSpeed + g.cfg.Snake.SpeedIncrease*float64(g.life.Apples)
	iv := 1000.0 / speed
	if iv < float64(g.cfg.Snake.MinIntervalMS) {
		iv = float64(g.cfg.Snake.MinIntervalMS)
	}
	now := g.clock.Now()
	if g.effects.Has(FruitSpeedBoost, now) {
		iv *= g.cfg.Effects.SpeedBoostFactor
	}
	if g.effects.Has(FruitSlowDown, now) {
		iv *= g.cfg.Effects.SlowDownFactor
	}
	return int64(iv)
}

// currentSpeed is the effective speed in cells per second, effects
// included.
func (g *Game) currentSpeed() float64 {
	return 1000.0 / float64(g.tickInterval())
}

// tick executes one movement step: drain a queued turn, resolve the
// target cell through portals, collide or move, then consume.
func (g *Game) tick() {
	now := g.clock.Now()
	g.snake.drainTurn()
	next := g.snake.NextCell()

	if p := g.layout.PortalAt(next); p != nil {
		pair := g.layout.PairOf(p)
		g.snake.Heading = pair.ExitHeading
		next = pair.Emergence
		g.life.PortalsEntered++
		g.run.PortalsEntered++
		g.emit(Event{Type: EventPortalEntered, At: now})
	}

	if !g.layout.Walkable(next) || g.snake.HitsSelf(next) {
		g.crash(now)
		return
	}

	wasInPassage := g.inPassage
	g.snake.Step(next)
	if g.snake.Len() > g.run.MaxLength {
		g.run.MaxLength = g.snake.Len()
	}
	g.trackPassage(wasInPassage, next, now)
	g.noteSpeed(g.currentSpeed())

	if f := g.fruitAt(next); f != nil {
		g.consume(f, now)
	}
	if g.effects.Has(FruitMagnet, now) {
		g.attract(now)
	}
}

// trackPassage watches the head move through corridors and credits a
// completion when it leaves through the far door. The two doors of a
// passage are at least three cells apart, so a dip back out the same
// door never counts.
func (g *Game) trackPassage(was bool, head core.Cell, now int64) {
	in := g.layout.IsStreetPassage(head) || g.layout.IsAlcove(head)
	switch {
	case in && !was:
		g.inPassage = true
		g.passageEntry = head
	case !in && was:
		g.inPassage = false
		prev := g.snake.Body[core.Min(1, g.snake.Len()-1)]
		if prev.Chebyshev(g.passageEntry) >= 3 {
			g.life.PassagesCompleted++
			g.run.PassagesCompleted++
			g.emit(Event{Type: EventPassageCompleted, At: now})
		}
	}
}

// attract consumes every fruit within the magnet's Chebyshev radius of
// the head. Several fruits can be taken in one tick.
func (g *Game) attract(now int64) {
	head := g.snake.Head()
	var pulled []*Fruit
	for _, f := range g.fruits {
		if head.Chebyshev(f.Pos) <= magnetRadius {
			pulled = append(pulled, f)
		}
	}
	// deterministic order regardless of map iteration
	for i := 0; i < len(pulled); i++ {
		for j := i + 1; j < len(pulled); j++ {
			if pulled[j].ID < pulled[i].ID {
				pulled[i], pulled[j] = pulled[j], pulled[i]
			}
		}
	}
	for _, f := range pulled {
		if _, alive := g.fruits[f.ID]; alive {
			g.consume(f, now)
		}
	}
}

// consume applies a fruit's reward and removes it from the board.
func (g *Game) consume(f *Fruit, now int64) {
	delete(g.fruits, f.ID)
	g.life.Fruits++
	g.run.Fruits++
	g.emit(Event{Type: EventFruitConsumed, At: now, Fruit: f.Type, Score: g.score})

	switch f.Type {
	case FruitApple:
		g.score += g.cfg.Scoring.AppleScore * g.scoreMultiplier(now)
		growth := g.cfg.Scoring.AppleGrowth
		if g.effects.Has(FruitTriple, now) {
			growth = g.cfg.Scoring.TripleGrowth
		}
		g.snake.Grow(growth)
		g.life.Apples++
		g.run.Apples++
		g.checkLevel(now)
		g.spawnApple()
	case FruitSpeedBoost, FruitSlowDown, FruitMagnet, FruitScoreDoubler:
		g.effects.Apply(f.Type, now, f.Type.EffectDuration(g.cfg))
		if f.ID == g.boardFruitID {
			g.onBoardFruitConsumed()
		}
	case FruitTriple:
		g.effects.Apply(FruitTriple, now, FruitTriple.EffectDuration(g.cfg))
		if f.ID == g.passageFruitID {
			g.onPassageFruitConsumed()
		}
	case FruitExtraLife:
		g.lives++
		if f.ID == g.passageFruitID {
			g.onPassageFruitConsumed()
		}
	}
}

// scoreMultiplier returns the apple score factor for the active effect
// combination. Doubler and triple together pay the combo rate, not
// their product.
func (g *Game) scoreMultiplier(now int64) int {
	d := g.effects.Has(FruitScoreDoubler, now)
	t := g.effects.Has(FruitTriple, now)
	switch {
	case d && t:
		return g.cfg.Scoring.ComboMultiplier
	case t:
		return g.cfg.Scoring.TripleMultiplier
	case d:
		return g.cfg.Scoring.DoublerMultiplier
	default:
		return 1
	}
}

// checkLevel recomputes the level from lifetime apples and announces
// promotions.
func (g *Game) checkLevel(now int64) {
	lvl := g.run.Apples/10 + 1
	if lvl > g.level {
		g.level = lvl
		g.emit(Event{Type: EventLevelUp, At: now, Level: lvl})
	}
}

// startRound begins a fresh round from the welcome screen.
func (g *Game) startRound() {
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Snake.InitialLives
	g.run = RunStats{Seed: g.seed}
	g.roundStart = g.clock.Now()
	g.extraLifeGame = 0
	g.refillBucket()
	g.startLife()
}

// startLife resets per-life state, rebuilds the snake in the street
// doorway with a fresh fruit set and runs the starting countdown before
// play resumes.
func (g *Game) startLife() {
	head, heading := g.spawnPose()
	g.snake = newSnake(head, heading, g.cfg.Snake.InitialLength)
	g.effects.Clear()
	g.accum = 0
	g.inPassage = false
	g.extraLifeLife = 0
	g.life = LifeStats{StartedAt: g.clock.Now()}
	g.run.MaxLength = core.Max(g.run.MaxLength, g.snake.Len())

	g.fruits = make(map[int]*Fruit)
	g.boardFruitID = 0
	g.passageFruitID = 0
	g.spawnApple()

	g.setState(StateStarting)
	g.clock.Schedule(int64(g.cfg.Lifecycle.StartingDurationMS), func(now int64) {
		if g.state != StateStarting {
			return
		}
		g.setState(StatePlaying)
		// spawn chains run only during play
		g.scheduleBoardFruit(int64(g.cfg.Spawning.BoardDelayMS))
		g.schedulePassageFruit(int64(g.cfg.Spawning.PassageDelayMS))
	})
}

// spawnPose puts the snake head on the playable cell just inside the
// street's entry door, heading inward, so the body trails back through
// the corridor.
func (g *Game) spawnPose() (core.Cell, core.Heading) {
	st := g.layout.Street
	door := st.Wall.Cell(st.Entry, 0)
	h := st.Wall.Inward()
	dx, dz := h.Step()
	return core.C(door.X+dx, door.Y, door.Z+dz), h
}

// crash ends the current life. Spawn timers are torn down so nothing
// fires into the death pause; the finalized life record rides on the
// crash event, then a respawn or game over follows.
func (g *Game) crash(now int64) {
	g.lives--
	g.run.LivesUsed++
	g.snake.clearTurns()
	g.effects.Clear()
	g.clock.Cancel(g.boardTimer)
	g.clock.Cancel(g.boardExpiry)
	g.clock.Cancel(g.passageTimer)
	if g.boardFruitID != 0 {
		delete(g.fruits, g.boardFruitID)
		g.boardFruitID = 0
	}
	g.life.DurationMS = now - g.life.StartedAt
	g.emit(Event{Type: EventCrashed, At: now, Score: g.score, Life: g.life})
	g.setState(StateCrashed)

	if g.lives <= 0 {
		g.finishRound(now)
		return
	}
	g.clock.Schedule(int64(g.cfg.Lifecycle.RespawnDelayMS), func(now int64) {
		g.startLife()
		g.emit(Event{Type: EventRespawned, At: now})
	})
}

// finishRound closes out the run, persists it exactly once and moves to
// the game over screen.
func (g *Game) finishRound(now int64) {
	g.run.Score = g.score
	g.run.Level = g.level
	g.run.DurationMS = now - g.roundStart
	_ = g.rec.RecordRun(g.run)
	g.setState(StateGameOver)
	g.emit(Event{Type: EventGameOver, At: now, Score: g.score, Level: g.level})
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.state = s
	g.emit(Event{Type: EventStateChanged, At: g.clock.Now(), State: s})
}

func (g *Game) emit(e Event) {
	g.sink.Handle(e)
}
