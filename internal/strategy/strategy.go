package strategy

// Strategy selects the node that should handle the next unit of work.
//
// Nodes returned by Next are copies of the stored slots. When N is a pointer
// type the caller must not cache it across a call to Init or RemoveNode.
type Strategy[N any] interface {
	// Init replaces the managed node set. A nil or empty slice is valid.
	Init(nodes []N)
	// Next returns the selected node, or false if the node set is empty.
	Next() (N, bool)
	// GetAllNodes returns the current node set in order.
	GetAllNodes() []N
	// RemoveNode removes the first node matching match and reports whether
	// one was removed.
	RemoveNode(match func(N) bool) bool
	// Name identifies the algorithm.
	Name() string
}
