package logging

import (
	"bytes"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sarchlab/adtlab/demo"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LogHook", func() {
	var (
		logger *logrus.Logger
		logs   *test.Hook
		c      *demo.StackController
	)

	BeforeEach(func() {
		logger, logs = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		c = demo.MakeControllerBuilder().
			WithCapacity(1).
			BuildStackController("Lab.Stack")
		c.AcceptHook(NewLogHook(logger))
	})

	It("should log successes at info level", func() {
		c.Push("A")

		entry := logs.LastEntry()
		Expect(entry.Level).To(Equal(logrus.InfoLevel))
		Expect(entry.Data["container"]).To(Equal("Lab.Stack"))
		Expect(entry.Data["command"]).To(Equal("push"))
		Expect(entry.Data["kind"]).To(Equal("success"))
		Expect(entry.Data["value"]).To(Equal("A"))
		Expect(entry.Data["size"]).To(Equal(1))
	})

	It("should log failures at warn level", func() {
		c.Push("A")
		c.Push("B")

		entry := logs.LastEntry()
		Expect(entry.Level).To(Equal(logrus.WarnLevel))
		Expect(entry.Data["kind"]).To(Equal("overflow"))
		Expect(logs.AllEntries()).To(HaveLen(2))
	})

	It("should log container mutations at debug level", func() {
		c.Stack().AcceptHook(NewLogHook(logger))

		c.Push("A")

		entries := logs.AllEntries()
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Level).To(Equal(logrus.DebugLevel))
		Expect(entries[0].Data["position"]).To(Equal("Container Push"))
	})

	It("should build loggers", func() {
		buf := bytes.NewBuffer(nil)

		l, err := NewLogger(buf, "warn", true)
		Expect(err).NotTo(HaveOccurred())
		l.Info("hidden")
		l.Warn("shown")

		Expect(buf.String()).To(ContainSubstring(`"msg":"shown"`))
		Expect(buf.String()).NotTo(ContainSubstring("hidden"))

		_, err = NewLogger(buf, "loud", false)
		Expect(err).To(HaveOccurred())
	})
})
