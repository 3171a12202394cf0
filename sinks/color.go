package sinks

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/1pkg/cmdargs"
)

type colorSink struct {
	w    io.Writer
	err  *color.Color
	warn *color.Color
}

// Color highlights diagnostic prefixes written to w,
// it follows color.NoColor to decide whether to emit escape sequences.
func Color(w io.Writer) io.Writer {
	return colorSink{
		w:    w,
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
	}
}

func (s colorSink) Write(p []byte) (int, error) {
	msg := string(p)
	switch {
	case strings.HasPrefix(msg, cmdargs.ErrorPrefix):
		msg = s.err.Sprint(cmdargs.ErrorPrefix) + msg[len(cmdargs.ErrorPrefix):]
	case strings.HasPrefix(msg, cmdargs.WarningPrefix):
		msg = s.warn.Sprint(cmdargs.WarningPrefix) + msg[len(cmdargs.WarningPrefix):]
	}
	if _, err := io.WriteString(s.w, msg); err != nil {
		return 0, err
	}
	return len(p), nil
}
