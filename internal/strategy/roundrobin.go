package strategy

var _ Strategy[string] = (*RoundRobin[string])(nil)

// RoundRobin visits nodes in a fixed cyclic order. The zero value is an
// empty strategy ready for Init.
type RoundRobin[N any] struct {
	guardedSet[N]
	cursor int
}

// NewRoundRobin creates a round-robin strategy over a copy of nodes.
func NewRoundRobin[N any](nodes ...N) *RoundRobin[N] {
	rr := &RoundRobin[N]{}
	rr.nodes.Replace(nodes)
	return rr
}

// Next advances the cursor modulo the current length and returns the node
// under it. Init keeps the cursor, so it is reinterpreted against whatever
// set is current at the next call.
func (rr *RoundRobin[N]) Next() (N, bool) {
	rr.mutex.Lock()
	defer rr.mutex.Unlock()

	var zero N
	size := rr.nodes.Len()
	if size == 0 {
		return zero, false
	}

	rr.cursor = (rr.cursor + 1) % size
	return rr.nodes.At(rr.cursor), true
}

func (rr *RoundRobin[N]) Name() string {
	return TypeRoundRobin
}
