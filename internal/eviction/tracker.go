package eviction

import (
	"sync"
	"time"
)

type Tracker struct {
	mutex        sync.Mutex
	failures     int
	firstFailure time.Time
	threshold    int
	window       time.Duration
}

func NewTracker(threshold int, window time.Duration) *Tracker {
	return &Tracker{
		threshold: threshold,
		window:    window,
	}
}

// RecordFailure counts a failure and returns true on the failure that brings
// the count to the threshold. Later failures in the same run return false, so
// concurrent callers see a single trip. A non-positive threshold never trips.
func (t *Tracker) RecordFailure() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := time.Now()
	if t.window > 0 && t.failures > 0 && now.Sub(t.firstFailure) > t.window {
		t.failures = 0
	}

	if t.failures == 0 {
		t.firstFailure = now
	}
	t.failures++

	return t.threshold > 0 && t.failures == t.threshold
}

func (t *Tracker) RecordSuccess() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.failures = 0
}

func (t *Tracker) Failures() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.failures
}
