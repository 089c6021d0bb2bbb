package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/govconf"
)

var _ govconf.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f govconf.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f govconf.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f govconf.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }

// Error routes an "err" field through logrus' own error key.
func (l LogrusLogger) Error(msg string, f govconf.Fields) {
	e := l.E
	if err, ok := f["err"].(error); ok {
		e = e.WithError(err)
		rest := make(logrus.Fields, len(f))
		for k, v := range f {
			if k != "err" {
				rest[k] = v
			}
		}
		e.WithFields(rest).Error(msg)
		return
	}
	e.WithFields(logrus.Fields(f)).Error(msg)
}
