package analytics

import "sync"

// Event is a single analytics event pushed to the tag-manager data layer.
// The "event" key names the event; remaining keys are its payload.
type Event map[string]any

// Tracker is the outbound analytics channel. Delivery is best-effort:
// a failing or missing tracker must never affect the caller.
type Tracker interface {
	Track(event Event)
}

// TrackEvent pushes an event through the tracker, swallowing a nil tracker
// and any panic the implementation raises. Analytics never breaks the
// primary flow.
func TrackEvent(t Tracker, event Event) {
	if t == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	t.Track(event)
}

// DataLayer is an in-memory Tracker mirroring the tag manager's dataLayer:
// an append-only event list. Safe for concurrent use.
type DataLayer struct {
	mu     sync.Mutex
	events []Event
}

func NewDataLayer() *DataLayer {
	return &DataLayer{}
}

func (d *DataLayer) Track(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

// Events returns a copy of everything pushed so far.
func (d *DataLayer) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Event, len(d.events))
	copy(out, d.events)
	return out
}
