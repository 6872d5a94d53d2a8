package strategy

import (
	"errors"
	"fmt"
)

const (
	TypeRoundRobin = "round-robin"
	TypeRandom     = "random"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Types lists every strategy name accepted by New.
func Types() []string {
	return []string{TypeRoundRobin, TypeRandom}
}

// New builds the strategy registered under kind, seeded with nodes.
func New[N any](kind string, nodes ...N) (Strategy[N], error) {
	switch kind {
	case TypeRoundRobin:
		return NewRoundRobin(nodes...), nil
	case TypeRandom:
		return NewRandom(nodes...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}
