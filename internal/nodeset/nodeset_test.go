package nodeset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/nodeselect/internal/nodeset"
)

var _ = Describe("Set", func() {
	var set *nodeset.Set[string]

	BeforeEach(func() {
		set = nodeset.New([]string{"a", "b", "c"})
	})

	Describe("New", func() {
		It("should preserve insertion order", func() {
			Expect(set.Len()).To(Equal(3))
			Expect(set.At(0)).To(Equal("a"))
			Expect(set.At(2)).To(Equal("c"))
		})

		It("should copy the input slice", func() {
			input := []string{"x", "y"}
			s := nodeset.New(input)
			input[0] = "changed"
			Expect(s.At(0)).To(Equal("x"))
		})

		It("should accept nil", func() {
			s := nodeset.New[string](nil)
			Expect(s.Len()).To(Equal(0))
			Expect(s.Snapshot()).To(BeEmpty())
		})

		It("should keep duplicates as separate slots", func() {
			s := nodeset.New([]string{"a", "a", "b"})
			Expect(s.Len()).To(Equal(3))
		})
	})

	Describe("Replace", func() {
		It("should discard the previous nodes", func() {
			set.Replace([]string{"d"})
			Expect(set.Snapshot()).To(Equal([]string{"d"}))
		})

		It("should allow an empty replacement", func() {
			set.Replace([]string{})
			Expect(set.Len()).To(Equal(0))
		})
	})

	Describe("RemoveFunc", func() {
		It("should remove the first match only", func() {
			s := nodeset.New([]string{"a", "b", "a"})

			removed, ok := s.RemoveFunc(func(n string) bool { return n == "a" })
			Expect(ok).To(BeTrue())
			Expect(removed).To(Equal("a"))
			Expect(s.Snapshot()).To(Equal([]string{"b", "a"}))
		})

		It("should keep the order of the remaining nodes", func() {
			_, ok := set.RemoveFunc(func(n string) bool { return n == "b" })
			Expect(ok).To(BeTrue())
			Expect(set.Snapshot()).To(Equal([]string{"a", "c"}))
		})

		It("should be a no-op when nothing matches", func() {
			removed, ok := set.RemoveFunc(func(n string) bool { return n == "z" })
			Expect(ok).To(BeFalse())
			Expect(removed).To(BeEmpty())
			Expect(set.Snapshot()).To(Equal([]string{"a", "b", "c"}))
		})
	})

	Describe("IndexFunc", func() {
		It("should return -1 for a missing node", func() {
			Expect(set.IndexFunc(func(n string) bool { return n == "z" })).To(Equal(-1))
		})

		It("should return the index of the first match", func() {
			Expect(set.IndexFunc(func(n string) bool { return n == "c" })).To(Equal(2))
		})
	})

	Describe("Snapshot", func() {
		It("should not alias internal storage", func() {
			snap := set.Snapshot()
			snap[0] = "changed"
			Expect(set.At(0)).To(Equal("a"))
		})
	})
})
