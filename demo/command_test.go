package demo

import (
	"encoding/json"
	"time"

	"github.com/sarchlab/adtlab/adt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Op", func() {
	It("should parse names", func() {
		op, err := ParseOp(" Push ")
		Expect(err).NotTo(HaveOccurred())
		Expect(op).To(Equal(OpPush))

		op, err = ParseOp("capacity")
		Expect(err).NotTo(HaveOccurred())
		Expect(op).To(Equal(OpSetCapacity))
	})

	It("should reject unknown names", func() {
		_, err := ParseOp("shuffle")
		Expect(err).To(HaveOccurred())

		_, err = ParseOp("unknown")
		Expect(err).To(HaveOccurred())
	})

	It("should read back ops and kinds by name", func() {
		var op Op
		Expect(op.UnmarshalText([]byte("dequeue"))).To(Succeed())
		Expect(op).To(Equal(OpDequeue))
		Expect(op.UnmarshalText([]byte("unknown"))).To(Succeed())
		Expect(op).To(Equal(OpUnknown))
		Expect(op.UnmarshalText([]byte("shuffle"))).NotTo(Succeed())

		var kind FeedbackKind
		Expect(kind.UnmarshalText([]byte("invalid-capacity"))).To(Succeed())
		Expect(kind).To(Equal(FeedbackInvalidCapacity))
		Expect(kind.UnmarshalText([]byte("fatal"))).NotTo(Succeed())
	})

	It("should decode the JSON it encodes", func() {
		event := FeedbackEvent{
			ID:        "7",
			Time:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Container: "Lab.Queue",
			Command:   OpEnqueue,
			Kind:      FeedbackOverflow,
			Value:     adt.Value("X"),
			HasValue:  true,
			Message:   "full",
		}

		data, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"command":"enqueue"`))
		Expect(string(data)).To(ContainSubstring(`"kind":"overflow"`))

		var decoded FeedbackEvent
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded.Time).To(BeTemporally("==", event.Time))

		decoded.Time = event.Time
		Expect(decoded).To(Equal(event))
	})

	It("should name feedback kinds", func() {
		Expect(FeedbackValidationError.String()).To(Equal("validation-error"))
		Expect(FeedbackKind(99).String()).To(Equal("unknown"))
		Expect(FeedbackOverflow.IsFailure()).To(BeTrue())
		Expect(FeedbackInfo.IsFailure()).To(BeFalse())
	})
})
