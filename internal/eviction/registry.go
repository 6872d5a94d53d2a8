package eviction

import (
	"sync"
	"time"
)

// Registry hands out one Tracker per node name.
type Registry struct {
	mutex     sync.Mutex
	trackers  map[string]*Tracker
	threshold int
	window    time.Duration
}

func NewRegistry(threshold int, window time.Duration) *Registry {
	return &Registry{
		trackers:  make(map[string]*Tracker),
		threshold: threshold,
		window:    window,
	}
}

// Enabled reports whether trackers from this registry can ever trip.
func (r *Registry) Enabled() bool {
	return r.threshold > 0
}

// Tracker returns the tracker for name, creating it on first use.
func (r *Registry) Tracker(name string) *Tracker {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.trackers[name]
	if !ok {
		t = NewTracker(r.threshold, r.window)
		r.trackers[name] = t
	}
	return t
}

func (r *Registry) Forget(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.trackers, name)
}

func (r *Registry) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.trackers = make(map[string]*Tracker)
}

// Stats returns the current failure count per tracked node.
func (r *Registry) Stats() map[string]int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stats := make(map[string]int, len(r.trackers))
	for name, t := range r.trackers {
		stats[name] = t.Failures()
	}
	return stats
}
