package sinks

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/1pkg/cmdargs"
)

type zapSink struct {
	logger *zap.Logger
}

// Zap turns every diagnostic write into one logger entry, the level
// is picked from the diagnostic prefix and extra lines go to the details field.
func Zap(logger *zap.Logger) io.Writer {
	return zapSink{logger: logger}
}

func (s zapSink) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimRight(string(p), "\n"), "\n")
	msg := lines[0]
	var fields []zap.Field
	if len(lines) > 1 {
		fields = append(fields, zap.Strings("details", lines[1:]))
	}
	switch {
	case strings.HasPrefix(msg, cmdargs.ErrorPrefix):
		s.logger.Error(msg, fields...)
	case strings.HasPrefix(msg, cmdargs.WarningPrefix):
		s.logger.Warn(msg, fields...)
	default:
		s.logger.Info(msg, fields...)
	}
	return len(p), nil
}
