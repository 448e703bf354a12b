package adt

import (
	"fmt"

	"github.com/sarchlab/adtlab/hooking"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stack", func() {
	var s Stack

	BeforeEach(func() {
		s = MakeStackBuilder().WithCapacity(3).Build("Lab.Stack")
	})

	It("should use the default capacity", func() {
		Expect(MakeStackBuilder().Build("Stack").Capacity()).
			To(Equal(DefaultCapacity))
	})

	It("should panic on invalid capacity or name", func() {
		Expect(func() { MakeStackBuilder().WithCapacity(0).Build("Stack") }).
			To(Panic())
		Expect(func() { MakeStackBuilder().Build("stack") }).To(Panic())
	})

	It("should push and pop in LIFO order", func() {
		Expect(s.Push("A")).To(Succeed())
		Expect(s.Push("B")).To(Succeed())
		Expect(s.Push("C")).To(Succeed())
		Expect(s.IsFull()).To(BeTrue())

		err := s.Push("D")
		Expect(err).To(MatchError(ErrOverflow))
		Expect(s.Size()).To(Equal(3))

		for _, expected := range []Value{"C", "B", "A"} {
			v, err := s.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(expected))
		}

		_, err = s.Pop()
		Expect(err).To(MatchError(ErrUnderflow))
		Expect(s.IsEmpty()).To(BeTrue())
	})

	It("should pop in reverse insertion order for any fill level", func() {
		for n := 1; n <= 8; n++ {
			st := MakeStackBuilder().WithCapacity(n).Build("Stack")

			for i := 0; i < n; i++ {
				Expect(st.Push(Value(fmt.Sprint(i)))).To(Succeed())
			}

			for i := n - 1; i >= 0; i-- {
				v, err := st.Pop()
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(Value(fmt.Sprint(i))))
			}
		}
	})

	It("should reject blank values", func() {
		Expect(s.Push("")).To(MatchError(ErrInvalidValue))
		Expect(s.Push("   ")).To(MatchError(ErrInvalidValue))
		Expect(s.Size()).To(Equal(0))
	})

	It("should peek without removing", func() {
		v, ok := s.Peek()
		Expect(ok).To(BeFalse())
		Expect(v).To(Equal(Value("")))

		Expect(s.Push("A")).To(Succeed())
		Expect(s.Push("B")).To(Succeed())

		v, ok = s.Peek()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(Value("B")))
		Expect(s.Size()).To(Equal(2))

		v, ok = s.Bottom()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(Value("A")))
	})

	It("should clear idempotently", func() {
		Expect(s.Push("A")).To(Succeed())

		s.Clear()
		s.Clear()

		Expect(s.Size()).To(Equal(0))
		Expect(s.IsEmpty()).To(BeTrue())
		_, ok := s.Peek()
		Expect(ok).To(BeFalse())
	})

	It("should search from the top", func() {
		Expect(s.Push("A")).To(Succeed())
		Expect(s.Push("B")).To(Succeed())
		Expect(s.Push("A")).To(Succeed())

		Expect(s.Search("A")).To(Equal(0))
		Expect(s.Search("B")).To(Equal(1))
		Expect(s.Search("Z")).To(Equal(-1))
		Expect(s.Contains("B")).To(BeTrue())
		Expect(s.Contains("Z")).To(BeFalse())
	})

	It("should return a copy of the items", func() {
		Expect(s.Push("A")).To(Succeed())

		items := s.Items()
		items[0] = "X"

		Expect(s.Items()).To(Equal([]Value{"A"}))
	})

	Context("when changing capacity", func() {
		BeforeEach(func() {
			Expect(s.Push("A")).To(Succeed())
			Expect(s.Push("B")).To(Succeed())
			Expect(s.Push("C")).To(Succeed())
		})

		It("should reject capacity below 1", func() {
			Expect(s.SetCapacity(0)).To(MatchError(ErrInvalidCapacity))
			Expect(s.Capacity()).To(Equal(3))
			Expect(s.Size()).To(Equal(3))
		})

		It("should grow", func() {
			Expect(s.SetCapacity(4)).To(Succeed())
			Expect(s.Push("D")).To(Succeed())
		})

		It("should keep the most recent elements when shrinking", func() {
			var discarded interface{}
			s.AcceptHook(hooking.FuncHook(func(ctx hooking.HookCtx) {
				if ctx.Pos == HookPosResize {
					discarded = ctx.Detail
				}
			}))

			Expect(s.SetCapacity(2)).To(Succeed())

			Expect(s.Items()).To(Equal([]Value{"B", "C"}))
			top, _ := s.Peek()
			Expect(top).To(Equal(Value("C")))
			Expect(discarded).To(Equal([]Value{"A"}))
		})
	})

	It("should invoke hooks on mutation", func() {
		var positions []*hooking.HookPos
		s.AcceptHook(hooking.FuncHook(func(ctx hooking.HookCtx) {
			Expect(ctx.Domain).To(BeIdenticalTo(s))
			positions = append(positions, ctx.Pos)
		}))

		Expect(s.Push("A")).To(Succeed())
		_, _ = s.Pop()
		_, _ = s.Pop()
		s.Clear()

		Expect(positions).To(Equal([]*hooking.HookPos{
			HookPosPush, HookPosPop, HookPosClear,
		}))
	})
})
