package dynarray_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/dynvec/internal/dynarray"
)

var _ = Describe("Cursor", func() {
	Context("over an empty array", func() {
		var arr *dynarray.Array[int]

		BeforeEach(func() {
			arr = dynarray.Of[int]()
		})

		It("is at the end immediately", func() {
			Expect(arr.Begin().IsEnd()).To(BeTrue())
			Expect(arr.End().IsEnd()).To(BeTrue())
		})

		It("compares equal regardless of position", func() {
			c1 := arr.Begin()
			c2 := arr.Begin().Next()
			Expect(dynarray.CursorsEqual(c1, c2)).To(BeTrue())
		})

		It("yields the zero value", func() {
			Expect(arr.Begin().Value()).To(BeZero())
		})
	})

	Context("over [1, 2, 3]", func() {
		var arr *dynarray.Array[int]

		BeforeEach(func() {
			arr = dynarray.Of(1, 2, 3)
		})

		It("treats the last element as the end marker", func() {
			c := arr.Begin()
			Expect(c.IsEnd()).To(BeFalse())
			Expect(c.Value()).To(Equal(1))

			c.Next()
			Expect(c.IsEnd()).To(BeFalse())
			Expect(c.Value()).To(Equal(2))

			c.Next()
			Expect(c.IsEnd()).To(BeTrue())
			Expect(c.Value()).To(Equal(3))
		})

		It("does not advance past the end marker", func() {
			c := arr.End()
			Expect(c.Pos()).To(Equal(2))
			c.Next().Next()
			Expect(c.Pos()).To(Equal(2))
			Expect(c.Value()).To(Equal(3))
		})

		It("ignores writes made after it was created", func() {
			c := arr.Begin()
			Expect(arr.Set(0, 100)).To(Succeed())
			Expect(c.Value()).To(Equal(1))

			arr.Release()
			Expect(c.Len()).To(Equal(3))
			Expect(c.Snapshot().ToSlice()).To(Equal([]int{1, 2, 3}))
		})

		It("compares by position and value", func() {
			Expect(dynarray.CursorsEqual(arr.Begin(), arr.Begin())).To(BeTrue())
			Expect(dynarray.CursorsEqual(arr.Begin(), arr.Begin().Next())).To(BeFalse())
			Expect(dynarray.CursorsEqual(arr.End(), arr.Begin().Next().Next())).To(BeTrue())
			Expect(dynarray.CursorsEqual(arr.Begin(), arr.End())).To(BeFalse())
		})

		It("compares equal to a cursor over a different array with the same values", func() {
			other := dynarray.Of(1, 9)
			Expect(dynarray.CursorsEqual(arr.Begin(), other.Begin())).To(BeTrue())
			Expect(dynarray.CursorsEqual(arr.Begin().Next(), other.Begin().Next())).To(BeFalse())
		})

		It("accepts a custom equality", func() {
			always := func(a, b int) bool { return true }
			Expect(arr.Begin().EqualFunc(dynarray.Of(7, 8).Begin(), always)).To(BeTrue())
		})
	})

	Context("over a single element", func() {
		It("starts on the end marker", func() {
			c := dynarray.Of("x").Begin()
			Expect(c.IsEnd()).To(BeTrue())
			Expect(c.Value()).To(Equal("x"))
			Expect(dynarray.CursorsEqual(c, dynarray.Of("y").End())).To(BeTrue())
		})
	})
})
