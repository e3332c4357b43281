package layout

import "slices"

// EventType identifies a container event.
type EventType string

const (
	EventChildAdded    EventType = "childAdded"
	EventChildRemoved  EventType = "childRemoved"
	EventMaximize      EventType = "maximize"
	EventMinimize      EventType = "minimize"
	EventActiveChanged EventType = "activeChanged"
	EventRatioChanged  EventType = "ratioChanged"
)

// Event is delivered synchronously to handlers registered with On.
type Event struct {
	Type EventType
	// Source is the container that fired the event first. Relayed events
	// keep their original source.
	Source Container
	// Child is the added, removed or newly active child.
	Child Container
	// Index is the child position for add/remove/activate events.
	Index int
	// View is the view container a maximize or minimize is requested for.
	View *ViewContainer
}

// Handler processes an event.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// emitter is a synchronous, single-threaded event dispatcher.
type emitter struct {
	nextID   int
	handlers map[EventType][]subscription
}

// On registers fn for events of type t and returns a function removing it.
func (e *emitter) On(t EventType, fn Handler) func() {
	if e.handlers == nil {
		e.handlers = make(map[EventType][]subscription)
	}
	e.nextID++
	id := e.nextID
	e.handlers[t] = append(e.handlers[t], subscription{id: id, fn: fn})
	return func() {
		e.handlers[t] = slices.DeleteFunc(e.handlers[t], func(s subscription) bool { return s.id == id })
	}
}

func (e *emitter) fire(ev Event) {
	// handlers may unsubscribe while being dispatched
	for _, s := range slices.Clone(e.handlers[ev.Type]) {
		s.fn(ev)
	}
}

func (e *emitter) clearHandlers() {
	e.handlers = nil
}
