package cmdargs

import "io"

type Option func(*Args)

// WithLog sets the diagnostic sink, see Args.SetLog.
func WithLog(w io.Writer) Option {
	return func(a *Args) {
		a.SetLog(w)
	}
}

// WithProgramName overrides the program name taken from argv[0].
func WithProgramName(name string) Option {
	return func(a *Args) {
		a.name = name
	}
}
