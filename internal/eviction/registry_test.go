package eviction_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/nodeselect/internal/eviction"
)

var _ = Describe("Registry", func() {
	var registry *eviction.Registry

	BeforeEach(func() {
		registry = eviction.NewRegistry(2, time.Minute)
	})

	Describe("Enabled", func() {
		It("should be enabled with a positive threshold", func() {
			Expect(registry.Enabled()).To(BeTrue())
		})

		It("should be disabled with a zero threshold", func() {
			Expect(eviction.NewRegistry(0, time.Minute).Enabled()).To(BeFalse())
		})
	})

	Describe("Tracker", func() {
		It("should return the same tracker for the same node", func() {
			t1 := registry.Tracker("node-a")
			t2 := registry.Tracker("node-a")
			Expect(t1).To(BeIdenticalTo(t2))
		})

		It("should return different trackers for different nodes", func() {
			t1 := registry.Tracker("node-a")
			t2 := registry.Tracker("node-b")
			Expect(t1).NotTo(BeIdenticalTo(t2))
		})

		It("should use the registry threshold", func() {
			t := registry.Tracker("node-a")
			Expect(t.RecordFailure()).To(BeFalse())
			Expect(t.RecordFailure()).To(BeTrue())
		})

		It("should create one tracker under concurrent lookups", func() {
			const goroutines = 100

			var wg sync.WaitGroup
			wg.Add(goroutines)
			for i := 0; i < goroutines; i++ {
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					Expect(registry.Tracker("node-a")).NotTo(BeNil())
				}()
			}
			wg.Wait()

			Expect(registry.Stats()).To(HaveLen(1))
		})
	})

	Describe("Forget", func() {
		It("should drop the tracker and its count", func() {
			registry.Tracker("node-a").RecordFailure()
			registry.Forget("node-a")

			Expect(registry.Stats()).NotTo(HaveKey("node-a"))
			Expect(registry.Tracker("node-a").Failures()).To(Equal(0))
		})
	})

	Describe("Reset", func() {
		It("should clear all trackers", func() {
			registry.Tracker("node-a")
			registry.Tracker("node-b")
			Expect(registry.Stats()).To(HaveLen(2))

			registry.Reset()
			Expect(registry.Stats()).To(BeEmpty())
		})
	})

	Describe("Stats", func() {
		It("should report failures per node", func() {
			registry.Tracker("node-a").RecordFailure()
			registry.Tracker("node-b")

			stats := registry.Stats()
			Expect(stats).To(HaveKeyWithValue("node-a", 1))
			Expect(stats).To(HaveKeyWithValue("node-b", 0))
		})
	})
})
