package sim

// ActiveEffect is a timed modifier currently applied to the snake. At
// most one effect per fruit type is active; picking up the same type
// again replaces the old expiry outright rather than extending it.
type ActiveEffect struct {
	Type      FruitType
	ExpiresAt int64 // simulation time, ms
}

// effectSet tracks active effects. Expiry is lazy: entries are purged
// whenever the set is consulted, so no timers are needed.
type effectSet struct {
	active map[FruitType]int64
}

func newEffectSet() *effectSet {
	return &effectSet{active: make(map[FruitType]int64)}
}

// Apply activates (or re-activates) an effect until now+durationMS.
// A zero duration makes the effect persistent until cleared.
func (s *effectSet) Apply(t FruitType, now, durationMS int64) {
	if durationMS == 0 {
		s.active[t] = persistent
		return
	}
	s.active[t] = now + durationMS
}

const persistent = int64(-1)

// Has reports whether the effect is active at now, purging it if expired.
func (s *effectSet) Has(t FruitType, now int64) bool {
	exp, ok := s.active[t]
	if !ok {
		return false
	}
	if exp != persistent && exp <= now {
		delete(s.active, t)
		return false
	}
	return true
}

// Clear drops every active effect. Used on crash and round reset.
func (s *effectSet) Clear() {
	for t := range s.active {
		delete(s.active, t)
	}
}

// Snapshot returns the effects still active at now, in fruit-type order.
func (s *effectSet) Snapshot(now int64) []ActiveEffect {
	var out []ActiveEffect
	for t := FruitApple; t <= FruitTriple; t++ {
		if s.Has(t, now) {
			out = append(out, ActiveEffect{Type: t, ExpiresAt: s.active[t]})
		}
	}
	return out
}
