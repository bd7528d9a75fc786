package semaphore

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options configure the diagnostics of a Semaphore. They have no effect on its
// behaviour. The zero Options disable all logging.
type Options struct {
	// Debug enables a trace of every state transition: creation, each acquire
	// attempt, grant and queueing, each release, hand-over and over-release.
	Debug bool

	// Name labels the trace lines of this semaphore.
	Name string

	// Logger receives the trace when Debug is set. If nil, a logger at debug
	// level writing to stderr is used.
	Logger logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if !o.Debug {
		return nil
	}
	l := o.Logger
	if l == nil {
		std := logrus.New()
		std.SetOutput(os.Stderr)
		std.SetLevel(logrus.DebugLevel)
		l = std
	}
	return l.WithField("semaphore", o.Name)
}

// discard swallows the trace of semaphores created without Debug.
var discard logrus.FieldLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}
