package sim

import "sort"

// timerFn runs when a scheduled timer fires. now is the simulation time
// the timer was due at, not the time the clock drained it.
type timerFn func(now int64)

// timer is a one-shot entry on the simulation clock.
type timer struct {
	id  int
	at  int64
	seq int
	fn  timerFn
}

// clock is the simulation-time scheduler. Time only advances through
// Advance, so everything scheduled here is deterministic for a given
// input sequence. Timers due at the same instant fire in schedule order.
type clock struct {
	now     int64
	nextID  int
	nextSeq int
	timers  []timer
}

func newClock() *clock {
	return &clock{nextID: 1}
}

// Now returns the current simulation time in milliseconds.
func (c *clock) Now() int64 { return c.now }

// Schedule registers fn to run delayMS milliseconds from now and returns
// a timer id usable with Cancel.
func (c *clock) Schedule(delayMS int64, fn timerFn) int {
	id := c.nextID
	c.nextID++
	c.timers = append(c.timers, timer{id: id, at: c.now + delayMS, seq: c.nextSeq, fn: fn})
	c.nextSeq++
	return id
}

// Cancel removes a pending timer. Canceling an already-fired or unknown
// id is a no-op.
func (c *clock) Cancel(id int) {
	for i := range c.timers {
		if c.timers[i].id == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Advance moves simulation time forward by elapsedMS and fires every
// timer that becomes due, in due-time order. Timers scheduled by firing
// timers are honored within the same advance if they fall inside it.
func (c *clock) Advance(elapsedMS int64) {
	target := c.now + elapsedMS
	for {
		i := c.nextDue(target)
		if i < 0 {
			break
		}
		t := c.timers[i]
		c.timers = append(c.timers[:i], c.timers[i+1:]...)
		c.now = t.at
		t.fn(t.at)
	}
	c.now = target
}

// nextDue returns the index of the earliest timer due at or before
// target, or -1 if none. Ties break on schedule order.
func (c *clock) nextDue(target int64) int {
	best := -1
	for i := range c.timers {
		if c.timers[i].at > target {
			continue
		}
		if best < 0 || c.timers[i].at < c.timers[best].at ||
			(c.timers[i].at == c.timers[best].at && c.timers[i].seq < c.timers[best].seq) {
			best = i
		}
	}
	return best
}

// pending returns the due times of all outstanding timers, sorted.
// Test helper.
func (c *clock) pending() []int64 {
	out := make([]int64, 0, len(c.timers))
	for _, t := range c.timers {
		out = append(out, t.at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
