package sinks

import (
	"strings"

	"github.com/samber/lo"

	"github.com/1pkg/cmdargs"
)

// Recorder keeps every diagnostic in memory, one entry per write.
// The zero value is ready to use.
type Recorder struct {
	entries []string
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.entries = append(r.entries, string(p))
	return len(p), nil
}

func (r *Recorder) Entries() []string {
	return append([]string{}, r.entries...)
}

func (r *Recorder) Errors() []string {
	return r.prefixed(cmdargs.ErrorPrefix)
}

func (r *Recorder) Warnings() []string {
	return r.prefixed(cmdargs.WarningPrefix)
}

func (r *Recorder) Len() int {
	return len(r.entries)
}

func (r *Recorder) Reset() {
	r.entries = nil
}

func (r *Recorder) String() string {
	return strings.Join(r.entries, "")
}

func (r *Recorder) prefixed(prefix string) []string {
	return lo.Filter(r.entries, func(entry string, _ int) bool {
		return strings.HasPrefix(entry, prefix)
	})
}
