package nodeset

import "slices"

// Set is an ordered sequence of nodes. Insertion order is preserved and
// duplicates occupy independent slots.
type Set[N any] struct {
	nodes []N
}

// New creates a Set holding a copy of nodes.
func New[N any](nodes []N) *Set[N] {
	s := &Set[N]{}
	s.Replace(nodes)
	return s
}

// Replace discards the current contents and takes a copy of nodes.
func (s *Set[N]) Replace(nodes []N) {
	s.nodes = slices.Clone(nodes)
}

func (s *Set[N]) Len() int {
	return len(s.nodes)
}

// At returns the node at index i. It panics if i is out of range.
func (s *Set[N]) At(i int) N {
	return s.nodes[i]
}

// IndexFunc returns the index of the first node matching match, or -1.
func (s *Set[N]) IndexFunc(match func(N) bool) int {
	return slices.IndexFunc(s.nodes, match)
}

// RemoveFunc removes the first node matching match and returns it.
// The order of the remaining nodes is preserved.
func (s *Set[N]) RemoveFunc(match func(N) bool) (N, bool) {
	var removed N

	i := s.IndexFunc(match)
	if i < 0 {
		return removed, false
	}

	removed = s.nodes[i]
	s.nodes = slices.Delete(s.nodes, i, i+1)
	return removed, true
}

// Snapshot returns a copy of the nodes in their current order.
func (s *Set[N]) Snapshot() []N {
	out := make([]N, len(s.nodes))
	copy(out, s.nodes)
	return out
}
