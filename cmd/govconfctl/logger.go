package main

import (
	"fmt"
	"io"
	stdslog "log/slog"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/govconf"
	logruslog "github.com/unkn0wn-root/govconf/log/logrus"
	sloglog "github.com/unkn0wn-root/govconf/log/slog"
	zaplog "github.com/unkn0wn-root/govconf/log/zap"
)

// newLogger builds the adapter selected by --log-format. The returned func
// flushes buffered output.
func newLogger(format, level string, w io.Writer) (govconf.Logger, func(), error) {
	switch strings.ToLower(format) {
	case "", "zap":
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, err
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
		l := zap.New(core)
		return zaplog.ZapLogger{L: l}, func() { _ = l.Sync() }, nil
	case "logrus":
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nil, err
		}
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(lvl)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return logruslog.LogrusLogger{E: logrus.NewEntry(l)}, func() {}, nil
	case "slog":
		var lvl stdslog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nil, err
		}
		h := stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: lvl})
		return sloglog.Logger{L: stdslog.New(h)}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want zap, logrus or slog)", format)
	}
}
