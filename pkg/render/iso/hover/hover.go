// Package hover implements the two-state reveal machine for tooltips.
//
// The scene engine only declares each tooltip in the [Dormant] state. A
// presentation layer (the inline script of an SVG document, or the terminal
// inspector) feeds pointer-intent events into a [Tracker], which moves the
// owning element to [Revealed] on Enter and back to Dormant on Leave.
package hover

import (
	"slices"
	"sync"
)

// State is the visual state of one overlay.
type State int

const (
	Dormant State = iota
	Revealed
)

// String returns the value used in the data-state attribute.
func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "dormant"
}

// Event is a pointer-intent signal.
type Event int

const (
	// Enter means intent is over the owning column.
	Enter Event = iota
	// Leave means intent has moved away.
	Leave
)

// Next returns the state after ev. Repeated events are idempotent.
func Next(s State, ev Event) State {
	switch ev {
	case Enter:
		return Revealed
	case Leave:
		return Dormant
	}
	return s
}

// Tracker holds the state of every element that has seen an event.
// Unknown elements are Dormant. The zero value is ready to use, and a
// Tracker is safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	states map[string]State
	// Exclusive makes Enter on one element dismiss every other element,
	// matching a single pointer.
	Exclusive bool
}

// NewTracker creates a tracker. With exclusive set, at most one element is
// revealed at a time.
func NewTracker(exclusive bool) *Tracker {
	return &Tracker{states: make(map[string]State), Exclusive: exclusive}
}

// Dispatch applies ev to element id and returns its new state.
func (t *Tracker) Dispatch(id string, ev Event) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.states == nil {
		t.states = make(map[string]State)
	}
	if t.Exclusive && ev == Enter {
		for other, s := range t.states {
			if other != id && s == Revealed {
				t.states[other] = Next(s, Leave)
			}
		}
	}
	s := Next(t.states[id], ev)
	t.states[id] = s
	return s
}

// Enter is shorthand for Dispatch(id, Enter).
func (t *Tracker) Enter(id string) State { return t.Dispatch(id, Enter) }

// Leave is shorthand for Dispatch(id, Leave).
func (t *Tracker) Leave(id string) State { return t.Dispatch(id, Leave) }

// State returns the current state of id.
func (t *Tracker) State(id string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}

// Revealed returns the ids currently revealed, sorted.
func (t *Tracker) Revealed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var ids []string
	for id, s := range t.states {
		if s == Revealed {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Reset returns every element to Dormant.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.states)
}
