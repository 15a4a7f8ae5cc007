package alloc

import "sync"

// Recorder keeps every event in memory. The zero value is ready to use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	allocs int
	frees  int
}

func (r *Recorder) Record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	switch e.Kind {
	case Allocated:
		r.allocs++
	case Deallocating:
		r.frees++
	}
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Allocated returns the number of Allocated events seen.
func (r *Recorder) Allocated() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.allocs
}

// Deallocated returns the number of Deallocating events seen.
func (r *Recorder) Deallocated() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frees
}

// Live returns allocations minus deallocations: the number of nodes created
// through the observed strategies that have not been destroyed yet.
func (r *Recorder) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.allocs - r.frees
}

// Reset drops all recorded events and counts.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.allocs = 0
	r.frees = 0
}
