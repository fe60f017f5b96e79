// Package document is the process-wide event surface the panel listens on.
// The host feeds every pointer press and key press into a Document; components
// register listeners for the event kinds they care about and must remove them
// when they stop caring.
package document

import (
	"sort"
	"sync"
)

// EventKind distinguishes the event sources a listener can observe.
type EventKind int

const (
	PointerDown EventKind = iota
	KeyDown
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case KeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Event is a single pointer or key event. X and Y are terminal cell
// coordinates for pointer events; Key is the bubbletea key string for key
// events ("esc", "enter", "a", ...).
type Event struct {
	Kind EventKind
	X    int
	Y    int
	Key  string
}

// Listener receives dispatched events.
type Listener func(Event)

// Document fans events out to registered listeners.
type Document struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[EventKind]map[uint64]Listener
}

// New creates an empty Document.
func New() *Document {
	return &Document{listeners: make(map[EventKind]map[uint64]Listener)}
}

// Registration is the handle returned by AddListener.
type Registration struct {
	doc  *Document
	kind EventKind
	id   uint64
}

// AddListener subscribes fn to events of the given kind.
func (d *Document) AddListener(kind EventKind, fn Listener) Registration {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	byKind, ok := d.listeners[kind]
	if !ok {
		byKind = make(map[uint64]Listener)
		d.listeners[kind] = byKind
	}
	byKind[d.nextID] = fn
	return Registration{doc: d, kind: kind, id: d.nextID}
}

// Remove unsubscribes the listener. Removing twice, or removing the zero
// Registration, does nothing.
func (r Registration) Remove() {
	if r.doc == nil {
		return
	}
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	delete(r.doc.listeners[r.kind], r.id)
}

// Active reports whether the registration is still subscribed.
func (r Registration) Active() bool {
	if r.doc == nil {
		return false
	}
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	_, ok := r.doc.listeners[r.kind][r.id]
	return ok
}

// Dispatch delivers ev to every listener registered for its kind, in
// registration order. Listeners may add or remove registrations while being
// called; a listener removed during dispatch is not called afterwards.
func (d *Document) Dispatch(ev Event) {
	for _, id := range d.snapshot(ev.Kind) {
		d.mu.Lock()
		fn, ok := d.listeners[ev.Kind][id]
		d.mu.Unlock()
		if ok {
			fn(ev)
		}
	}
}

func (d *Document) snapshot(kind EventKind) []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]uint64, 0, len(d.listeners[kind]))
	for id := range d.listeners[kind] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ListenerCount returns how many listeners are registered for the given
// kinds, or for all kinds when none are given.
func (d *Document) ListenerCount(kinds ...EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(kinds) == 0 {
		total := 0
		for _, byKind := range d.listeners {
			total += len(byKind)
		}
		return total
	}

	total := 0
	for _, kind := range kinds {
		total += len(d.listeners[kind])
	}
	return total
}
