package strategy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/nodeselect/internal/strategy"
)

var _ = Describe("Random", func() {
	var (
		strat *strategy.Random[string]
		nodes []string
	)

	BeforeEach(func() {
		nodes = []string{"a", "b", "c"}
		strat = strategy.NewRandom(nodes...)
	})

	It("should select a node from the set", func() {
		node, ok := strat.Next()
		Expect(ok).To(BeTrue())
		Expect(nodes).To(ContainElement(node))
	})

	It("should distribute across nodes over multiple calls", func() {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			node, _ := strat.Next()
			seen[node] = true
		}
		Expect(len(seen)).To(BeNumerically(">=", 2))
	})

	It("should report no node for an empty set", func() {
		var empty strategy.Random[string]
		_, ok := empty.Next()
		Expect(ok).To(BeFalse())
	})

	It("should never select a removed node", func() {
		Expect(strat.RemoveNode(func(n string) bool { return n == "b" })).To(BeTrue())
		for i := 0; i < 100; i++ {
			node, ok := strat.Next()
			Expect(ok).To(BeTrue())
			Expect(node).NotTo(Equal("b"))
		}
	})

	It("should identify the algorithm", func() {
		Expect(strat.Name()).To(Equal(strategy.TypeRandom))
	})
})
