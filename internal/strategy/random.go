package strategy

import (
	"math/rand/v2"
)

var _ Strategy[string] = (*Random[string])(nil)

type Random[N any] struct {
	guardedSet[N]
}

func NewRandom[N any](nodes ...N) *Random[N] {
	r := &Random[N]{}
	r.nodes.Replace(nodes)
	return r
}

func (r *Random[N]) Next() (N, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var zero N
	if r.nodes.Len() == 0 {
		return zero, false
	}

	return r.nodes.At(rand.IntN(r.nodes.Len())), true
}

func (r *Random[N]) Name() string {
	return TypeRandom
}
