package sim

import (
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/layout"
)

// spawnApple places the single always-present apple on a free playable
// cell. Called on round start and immediately after each consumption.
func (g *Game) spawnApple() {
	cell, ok := g.freeCell()
	if !ok {
		return
	}
	g.addFruit(FruitApple, cell)
}

// scheduleBoardFruit arms the board pickup chain. Exactly one board
// fruit is alive at a time; the chain is delay, spawn, lifetime expiry
// or consumption, cooldown, delay again.
func (g *Game) scheduleBoardFruit(delayMS int64) {
	g.boardTimer = g.clock.Schedule(delayMS, func(now int64) {
		g.spawnBoardFruit(now)
	})
}

func (g *Game) spawnBoardFruit(now int64) {
	// a timer can outlive the play phase it was armed in
	if g.state != StatePlaying {
		return
	}
	cell, ok := g.freeCell()
	if !ok {
		g.scheduleBoardFruit(int64(g.cfg.Spawning.BoardCooldownMS))
		return
	}
	t := g.pickBoardType()
	f := g.addFruit(t, cell)
	g.boardFruitID = f.ID
	g.boardExpiry = g.clock.Schedule(int64(g.cfg.Spawning.BoardLifetimeMS), func(now int64) {
		g.expireBoardFruit(now)
	})
}

func (g *Game) expireBoardFruit(now int64) {
	if f, ok := g.fruits[g.boardFruitID]; ok {
		delete(g.fruits, g.boardFruitID)
		g.emit(Event{Type: EventFruitExpired, At: now, Fruit: f.Type})
	}
	g.boardFruitID = 0
	g.scheduleBoardFruit(int64(g.cfg.Spawning.BoardCooldownMS + g.cfg.Spawning.BoardDelayMS))
}

// onBoardFruitConsumed cancels the pending expiry and restarts the
// chain from cooldown.
func (g *Game) onBoardFruitConsumed() {
	g.clock.Cancel(g.boardExpiry)
	g.boardFruitID = 0
	g.scheduleBoardFruit(int64(g.cfg.Spawning.BoardCooldownMS + g.cfg.Spawning.BoardDelayMS))
}

// pickBoardType selects the next board pickup. Below the speed
// threshold SlowDown is left out of the pool entirely; above it
// SlowDown enters at the configured weight and SpeedBoost becomes a
// long shot.
func (g *Game) pickBoardType() FruitType {
	type weighted struct {
		t FruitType
		w int
	}
	pool := []weighted{
		{FruitMagnet, 1},
		{FruitScoreDoubler, 1},
	}
	if g.currentSpeed() >= g.cfg.Spawning.SpeedThreshold {
		pool = append(pool,
			weighted{FruitSpeedBoost, 1},
			weighted{FruitSlowDown, g.cfg.Spawning.SlowDownWeight},
		)
	} else {
		pool = append(pool, weighted{FruitSpeedBoost, 2})
	}
	total := 0
	for _, p := range pool {
		total += p.w
	}
	n := g.rng.Intn(total)
	for _, p := range pool {
		if n < p.w {
			return p.t
		}
		n -= p.w
	}
	return FruitMagnet
}

// schedulePassageFruit arms the hidden pocket pickup. Passage fruit
// never expires; the next one is scheduled only after consumption.
func (g *Game) schedulePassageFruit(delayMS int64) {
	g.passageTimer = g.clock.Schedule(delayMS, func(now int64) {
		g.spawnPassageFruit(now)
	})
}

func (g *Game) spawnPassageFruit(now int64) {
	if g.state != StatePlaying {
		return
	}
	cell := g.nextPassageCell()
	if g.snake.Occupies(cell) || g.fruitAt(cell) != nil {
		g.schedulePassageFruit(int64(g.cfg.Spawning.PassageRetryMS))
		return
	}
	f := g.addFruit(g.drawFromBucket(), cell)
	g.passageFruitID = f.ID
}

func (g *Game) onPassageFruitConsumed() {
	g.passageFruitID = 0
	g.schedulePassageFruit(int64(g.cfg.Spawning.PassageDelayMS))
}

// nextPassageCell alternates between the street and alcove spawn
// pockets so both passages stay worth visiting.
func (g *Game) nextPassageCell() core.Cell {
	g.passageFlip = !g.passageFlip
	if g.passageFlip {
		return g.layout.Street.SpawnCell
	}
	return g.layout.Alcove.SpawnCell
}

// drawFromBucket pops the next passage fruit from the shuffled bucket,
// refilling when empty. ExtraLife is capped per life and per game;
// capped draws degrade to Triple.
func (g *Game) drawFromBucket() FruitType {
	if len(g.bucket) == 0 {
		g.refillBucket()
	}
	t := g.bucket[0]
	g.bucket = g.bucket[1:]
	if t == FruitExtraLife && !g.extraLifeAllowed() {
		return FruitTriple
	}
	if t == FruitExtraLife {
		g.extraLifeLife++
		g.extraLifeGame++
	}
	return t
}

func (g *Game) refillBucket() {
	g.bucket = g.bucket[:0]
	for i := 0; i < g.cfg.Spawning.TriplePerBucket; i++ {
		g.bucket = append(g.bucket, FruitTriple)
	}
	for i := 0; i < g.cfg.Spawning.ExtraLifePerBucket; i++ {
		g.bucket = append(g.bucket, FruitExtraLife)
	}
	g.rng.Shuffle(len(g.bucket), func(i, j int) {
		g.bucket[i], g.bucket[j] = g.bucket[j], g.bucket[i]
	})
}

func (g *Game) extraLifeAllowed() bool {
	return g.extraLifeLife < g.cfg.Spawning.ExtraLifeLifeCap &&
		g.extraLifeGame < g.cfg.Spawning.ExtraLifeGameCap
}

// freeCell collects every playable cell not occupied by the snake or a
// fruit and picks one at random. Iteration order is fixed so the same
// seed always yields the same choice.
func (g *Game) freeCell() (core.Cell, bool) {
	var free []core.Cell
	for z := layout.PlayMin; z <= layout.PlayMax; z++ {
		for x := layout.PlayMin; x <= layout.PlayMax; x++ {
			c := core.C(x, layout.SnakePlane, z)
			if g.snake.Occupies(c) || g.fruitAt(c) != nil {
				continue
			}
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

func (g *Game) addFruit(t FruitType, cell core.Cell) *Fruit {
	g.nextFruitID++
	f := &Fruit{ID: g.nextFruitID, Type: t, Pos: cell, SpawnedAt: g.clock.Now()}
	g.fruits[f.ID] = f
	g.emit(Event{Type: EventFruitSpawned, At: g.clock.Now(), Fruit: t})
	return f
}

func (g *Game) fruitAt(c core.Cell) *Fruit {
	for _, f := range g.fruits {
		if f.Pos == c {
			return f
		}
	}
	return nil
}
