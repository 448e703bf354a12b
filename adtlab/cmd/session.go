package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/adtlab/config"
	"github.com/sarchlab/adtlab/console"
	"github.com/sarchlab/adtlab/datarecording"
	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/hooking"
	"github.com/sarchlab/adtlab/idgen"
	"github.com/sarchlab/adtlab/logging"
	"github.com/sarchlab/adtlab/naming"
)

const labName = "Lab"

// session holds what every command that runs controllers needs.
type session struct {
	cfg     config.Config
	logger  *logrus.Logger
	logHook *logging.LogHook
	hooks   []hooking.Hook
}

func newSession(c config.Config) (*session, error) {
	logger, err := logging.NewLogger(os.Stderr, c.LogLevel, c.LogJSON)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: c, logger: logger, logHook: logging.NewLogHook(logger)}
	s.hooks = append(s.hooks, s.logHook)

	if c.Record {
		recorder := datarecording.New(c.RecordPath)
		s.hooks = append(s.hooks, datarecording.NewFeedbackRecorder(recorder))
	}

	return s, nil
}

// builder returns a controller builder that reports feedback to out. A nil
// out leaves feedback to the hooks.
func (s *session) builder(out io.Writer) demo.ControllerBuilder {
	b := demo.MakeControllerBuilder()

	if s.cfg.Record {
		b = b.WithIDGenerator(idgen.NewXID())
	}

	if out != nil {
		b = b.WithNotifier(console.NewToaster(out)).
			WithAnimator(console.NewAnimator(out))
	}

	return b
}

func (s *session) attach(c demo.Controller) {
	for _, h := range s.hooks {
		c.AcceptHook(h)
	}
}

func (s *session) stackController(out io.Writer) *demo.StackController {
	c := s.builder(out).
		WithCapacity(s.cfg.StackCapacity).
		BuildStackController(naming.BuildName(labName, "Stack"))
	s.attach(c)
	c.Stack().AcceptHook(s.logHook)

	return c
}

func (s *session) queueController(out io.Writer) *demo.QueueController {
	c := s.builder(out).
		WithCapacity(s.cfg.QueueCapacity).
		BuildQueueController(naming.BuildName(labName, "Queue"))
	s.attach(c)
	c.Queue().AcceptHook(s.logHook)

	return c
}
