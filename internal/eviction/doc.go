// Package eviction tracks failures that callers report against nodes and
// decides when a node should be dropped from its cluster.
//
// A Tracker counts consecutive failures. The window is measured from the
// first failure of a run: a failure arriving later than that starts a new
// run. RecordFailure reports true exactly once per run, on the failure that
// reaches the threshold. A success also starts the count over.
//
// Usage:
//
//	registry := eviction.NewRegistry(3, 30*time.Second)
//	tracker := registry.Tracker("node-a")
//	if err != nil {
//	    if tracker.RecordFailure() {
//	        // remove node-a from the strategy
//	    }
//	} else {
//	    tracker.RecordSuccess()
//	}
package eviction
