package sim

// EventType tags simulation events emitted toward presentation layers.
type EventType int

const (
	EventFruitSpawned EventType = iota
	EventFruitExpired
	EventFruitConsumed
	EventPortalEntered
	EventPassageCompleted
	EventLevelUp
	EventCrashed
	EventRespawned
	EventGameOver
	EventStateChanged
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventFruitSpawned:
		return "fruit_spawned"
	case EventFruitExpired:
		return "fruit_expired"
	case EventFruitConsumed:
		return "fruit_consumed"
	case EventPortalEntered:
		return "portal_entered"
	case EventPassageCompleted:
		return "passage_completed"
	case EventLevelUp:
		return "level_up"
	case EventCrashed:
		return "crashed"
	case EventRespawned:
		return "respawned"
	case EventGameOver:
		return "game_over"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}

// Event is a notification from the simulation. Fields are populated per
// type; unused ones are zero.
type Event struct {
	Type  EventType
	At    int64 // simulation time, ms
	Fruit FruitType
	Level int
	State State
	Score int
	Life  LifeStats // finalized stats, on crash events only
}

// Sink receives simulation events. Implementations must not call back
// into the game; they run synchronously inside the tick.
type Sink interface {
	Handle(Event)
}

// nopSink discards every event.
type nopSink struct{}

func (nopSink) Handle(Event) {}

// Recorder persists finished runs. The game calls RecordRun exactly
// once per round, when the last life is lost.
type Recorder interface {
	RecordRun(RunStats) error
}

// nopRecorder drops finished runs.
type nopRecorder struct{}

func (nopRecorder) RecordRun(RunStats) error { return nil }
