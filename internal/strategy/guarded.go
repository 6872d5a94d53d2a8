package strategy

import (
	"sync"

	"github.com/angeloszaimis/nodeselect/internal/nodeset"
)

// guardedSet holds the node set shared by every strategy. The same mutex
// guards any selection state the embedding strategy keeps, so a pick never
// sees a half-applied Init or RemoveNode.
type guardedSet[N any] struct {
	mutex sync.Mutex
	nodes nodeset.Set[N]
}

func (g *guardedSet[N]) Init(nodes []N) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.nodes.Replace(nodes)
}

func (g *guardedSet[N]) GetAllNodes() []N {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.nodes.Snapshot()
}

// RemoveNode runs match under the lock. The deferred unlock keeps the
// strategy usable if match panics.
func (g *guardedSet[N]) RemoveNode(match func(N) bool) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	_, removed := g.nodes.RemoveFunc(match)
	return removed
}
