package demo

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/hooking"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ Controller = &StackController{}

var _ = Describe("StackController", func() {
	var (
		mockCtrl *gomock.Controller
		notifier *MockNotifier
		animator *MockAnimator
		clock    *MockClock
		now      time.Time
		c        *StackController
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		notifier = NewMockNotifier(mockCtrl)
		animator = NewMockAnimator(mockCtrl)
		clock = NewMockClock(mockCtrl)
		now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		clock.EXPECT().Now().Return(now).AnyTimes()

		c = MakeControllerBuilder().
			WithCapacity(3).
			WithNotifier(notifier).
			WithAnimator(animator).
			WithClock(clock).
			BuildStackController("Lab.Stack")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start empty", func() {
		view := c.View()
		Expect(view.Kind).To(Equal("stack"))
		Expect(view.Name).To(Equal("Lab.Stack"))
		Expect(view.IsEmpty).To(BeTrue())
		Expect(view.Capacity).To(Equal(3))
		Expect(view.Lead).To(BeNil())
		Expect(view.Trail).To(BeNil())
		Expect(c.Kind()).To(Equal("stack"))
	})

	It("should run the capacity 3 scenario", func() {
		var events []FeedbackEvent
		notifier.EXPECT().Notify(gomock.Any()).
			Do(func(e FeedbackEvent) { events = append(events, e) }).
			Times(8)
		animator.EXPECT().Animate(gomock.Any()).Times(6)

		for _, v := range []adt.Value{"A", "B", "C"} {
			_, e := c.Push(v)
			Expect(e.Kind).To(Equal(FeedbackSuccess))
		}

		view, e := c.Push("D")
		Expect(e.Kind).To(Equal(FeedbackOverflow))
		Expect(e.Value).To(Equal(adt.Value("D")))
		Expect(view.Size).To(Equal(3))
		Expect(view.IsFull).To(BeTrue())
		Expect(*view.Lead).To(Equal(adt.Value("C")))

		for _, expected := range []adt.Value{"C", "B", "A"} {
			_, e = c.Pop()
			Expect(e.Kind).To(Equal(FeedbackSuccess))
			Expect(e.Value).To(Equal(expected))
		}

		view, e = c.Pop()
		Expect(e.Kind).To(Equal(FeedbackUnderflow))
		Expect(e.HasValue).To(BeFalse())
		Expect(view.IsEmpty).To(BeTrue())

		Expect(events).To(HaveLen(8))
		Expect(events[0].ID).To(Equal("1"))
		Expect(events[7].ID).To(Equal("8"))
		Expect(events[0].Time).To(Equal(now))
		Expect(events[0].Container).To(Equal("Lab.Stack"))
	})

	It("should reject blank input without touching the stack", func() {
		notifier.EXPECT().Notify(gomock.Any()).Times(2)

		view, e := c.Push("   ")
		Expect(e.Kind).To(Equal(FeedbackValidationError))
		Expect(e.Command).To(Equal(OpPush))
		Expect(view.Size).To(Equal(0))

		_, e = c.Search("")
		Expect(e.Kind).To(Equal(FeedbackValidationError))
	})

	It("should trim input", func() {
		notifier.EXPECT().Notify(gomock.Any())
		animator.EXPECT().Animate(Animation{
			Container: "Lab.Stack", Op: OpPush, Value: "A", Index: 0,
		})

		view, _ := c.Push("  A ")

		Expect(view.Items).To(Equal([]ProjectedItem{
			{Value: "A", IsLead: true, IsTrail: true},
		}))
	})

	It("should project the stack bottom to top", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		c.Push("A")
		c.Push("B")
		view, _ := c.Push("C")

		Expect(view.Items).To(Equal([]ProjectedItem{
			{Value: "A", IsTrail: true},
			{Value: "B"},
			{Value: "C", IsLead: true},
		}))
		Expect(*view.Lead).To(Equal(adt.Value("C")))
		Expect(*view.Trail).To(Equal(adt.Value("A")))
	})

	It("should peek without failing", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		_, e := c.Peek()
		Expect(e.Kind).To(Equal(FeedbackInfo))
		Expect(e.HasValue).To(BeFalse())

		c.Push("A")
		view, e := c.Peek()
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		Expect(e.Value).To(Equal(adt.Value("A")))
		Expect(view.Size).To(Equal(1))
	})

	It("should always answer a clear", func() {
		notifier.EXPECT().Notify(gomock.Any()).Times(4)
		animator.EXPECT().Animate(gomock.Any()).Times(2)

		_, e := c.Clear()
		Expect(e.Kind).To(Equal(FeedbackInfo))
		Expect(e.Message).NotTo(BeEmpty())

		c.Push("A")
		view, e := c.Clear()
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		Expect(view.Size).To(Equal(0))
		Expect(view.IsEmpty).To(BeTrue())

		_, e = c.Clear()
		Expect(e.Kind).To(Equal(FeedbackInfo))
	})

	It("should search from the top", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		c.Push("A")
		c.Push("B")

		_, e := c.Search("A")
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		Expect(e.Message).To(ContainSubstring("1 position"))

		_, e = c.Search("Z")
		Expect(e.Kind).To(Equal(FeedbackInfo))
	})

	It("should change capacity and keep the top", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		c.Push("A")
		c.Push("B")
		c.Push("C")

		view, e := c.SetCapacity(0)
		Expect(e.Kind).To(Equal(FeedbackInvalidCapacity))
		Expect(view.Capacity).To(Equal(3))

		view, e = c.SetCapacity(2)
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		Expect(view.Capacity).To(Equal(2))
		Expect(view.Size).To(Equal(2))
		Expect(*view.Lead).To(Equal(adt.Value("C")))
		Expect(*view.Trail).To(Equal(adt.Value("B")))
	})

	It("should work without a notifier or animator", func() {
		bare := MakeControllerBuilder().WithCapacity(1).BuildStackController("Stack")

		_, e := bare.Push("A")
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		_, e = bare.Push("B")
		Expect(e.Kind).To(Equal(FeedbackOverflow))
		Expect(bare.Stack().Size()).To(Equal(1))
	})

	It("should dispatch commands", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		c.Dispatch(Command{Op: OpPush, Value: "A"})
		view, e := c.Dispatch(Command{Op: OpSetCapacity, Capacity: 4})
		Expect(e.Kind).To(Equal(FeedbackSuccess))
		Expect(view.Capacity).To(Equal(4))

		view, e = c.Dispatch(Command{Op: OpEnqueue, Value: "B"})
		Expect(e.Kind).To(Equal(FeedbackValidationError))
		Expect(view.Size).To(Equal(1))

		_, e = c.Dispatch(Command{Op: OpPop})
		Expect(e.Value).To(Equal(adt.Value("A")))
	})

	It("should hand each outcome to the hooks", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		var ctxs []hooking.HookCtx
		c.AcceptHook(hooking.FuncHook(func(ctx hooking.HookCtx) {
			ctxs = append(ctxs, ctx)
		}))

		c.Push("A")
		c.Pop()

		Expect(ctxs).To(HaveLen(2))
		Expect(ctxs[0].Pos).To(BeIdenticalTo(HookPosCommand))
		Expect(ctxs[0].Item.(FeedbackEvent).Command).To(Equal(OpPush))
		Expect(ctxs[0].Detail.(ViewState).Size).To(Equal(1))
		Expect(ctxs[1].Detail.(ViewState).Size).To(Equal(0))
	})

	It("should not let callers mutate the stored view", func() {
		notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
		animator.EXPECT().Animate(gomock.Any()).AnyTimes()

		view, _ := c.Push("A")
		view.Items[0].Value = "X"
		*view.Lead = "X"

		Expect(c.View().Items[0].Value).To(Equal(adt.Value("A")))
		Expect(*c.View().Lead).To(Equal(adt.Value("A")))
	})
})
