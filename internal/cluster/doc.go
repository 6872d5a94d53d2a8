// Package cluster owns the selection strategy for one logical cluster of
// nodes. It turns an empty pick into ErrNoNodeAvailable, evicts nodes by
// name, and can evict a node automatically after repeated failures that
// the caller reports.
package cluster
