package cmdargs

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	ErrorPrefix   = "Error:"
	WarningPrefix = "Warning:"
)

// ErrOutOfRange is returned when the remaining arguments can't satisfy a request.
// A failing call never changes the cursor, except for the name token consumed
// by SubCmd and SubCmdUntil.
var ErrOutOfRange = errors.New("argument vector out of range")

// Predicate tests a single argument.
type Predicate func(string) bool

// Args is a stateful cursor over a command line argument vector.
// Args is not safe for concurrent use, sub arguments share nothing
// with their parent and can be handed to other goroutines.
type Args struct {
	args  []string
	name  string
	index int
	log   io.Writer
}

// New builds the cursor from a raw argv,
// argv[0] is stored as the program name and the arguments start at argv[1].
func New(argv []string, opts ...Option) *Args {
	a := &Args{log: os.Stderr}
	if len(argv) > 0 {
		a.name = argv[0]
		a.args = append(make([]string, 0, len(argv)-1), argv[1:]...)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Empty builds a cursor without arguments, populate it with Append.
func Empty(opts ...Option) *Args {
	return New(nil, opts...)
}

// Size returns the number of remaining arguments.
func (a *Args) Size() int {
	return len(a.args) - a.index
}

// TotalSize returns the number of stored arguments regardless of the position.
func (a *Args) TotalSize() int {
	return len(a.args)
}

// Position returns the number of already consumed arguments.
func (a *Args) Position() int {
	return a.index
}

// Rest returns a copy of the remaining arguments without consuming them.
func (a *Args) Rest() []string {
	return append([]string{}, a.args[a.index:]...)
}

func (a *Args) Peek() (string, error) {
	if a.index >= len(a.args) {
		return "", errors.Wrap(ErrOutOfRange, "no argument left to peek")
	}
	return a.args[a.index], nil
}

// PeekAt returns the argument offset positions away from the current one,
// negative offsets look at consumed arguments.
func (a *Args) PeekAt(offset int) (string, error) {
	i := a.index + offset
	if i >= len(a.args) {
		return "", errors.Wrapf(ErrOutOfRange, "argument vector too short to peek at %d", offset)
	}
	if i < 0 {
		return "", errors.Wrapf(ErrOutOfRange, "argument index can't become negative peeking at %d", offset)
	}
	return a.args[i], nil
}

func (a *Args) Shift() error {
	if a.index >= len(a.args) {
		return errors.Wrap(ErrOutOfRange, "no argument left to shift")
	}
	a.index++
	return nil
}

// Next returns the current argument and shifts the cursor by one position.
func (a *Args) Next() (string, error) {
	arg, err := a.Peek()
	if err != nil {
		return "", err
	}
	a.index++
	return arg, nil
}

func (a *Args) Append(values ...string) {
	a.args = append(a.args, values...)
}

func (a *Args) ProgramName() string {
	return a.name
}

func (a *Args) SetProgramName(name string) {
	a.name = name
}

// Log returns the diagnostic sink.
func (a *Args) Log() io.Writer {
	return a.log
}

// SetLog replaces the diagnostic sink, nil restores the standard error.
// The sink is borrowed and has to outlive the cursor.
func (a *Args) SetLog(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	a.log = w
}

// SubArgs slices the next size arguments into a new cursor
// with an empty program name and advances by size positions.
func (a *Args) SubArgs(size int) (*Args, error) {
	if size < 0 || a.index+size > len(a.args) {
		return nil, errors.Wrapf(
			ErrOutOfRange,
			"sub arguments of size %d can't be formed from %d remaining",
			size,
			a.Size(),
		)
	}
	return a.slice(a.index + size), nil
}

// SubArgsUntil slices the arguments up to, not including, the first one
// satisfying the predicate. All remaining arguments are taken when none does.
func (a *Args) SubArgsUntil(p Predicate) *Args {
	rest := a.args[a.index:]
	i := len(rest)
	if p != nil {
		if _, idx, ok := lo.FindIndexOf(rest, p); ok {
			i = idx
		}
	}
	return a.slice(a.index + i)
}

// SubCmd is SubArgs with the next argument used as the program name.
// The name stays consumed if the sub arguments can't be formed.
func (a *Args) SubCmd(size int) (*Args, error) {
	name, err := a.Next()
	if err != nil {
		return nil, errors.Wrap(err, "sub command name can't be read")
	}
	sub, err := a.SubArgs(size)
	if err != nil {
		return nil, errors.Wrapf(err, "sub command %s can't be formed", name)
	}
	sub.name = name
	return sub, nil
}

// SubCmdUntil is SubArgsUntil with the next argument used as the program name,
// the name itself is never tested against the predicate.
func (a *Args) SubCmdUntil(p Predicate) (*Args, error) {
	name, err := a.Next()
	if err != nil {
		return nil, errors.Wrap(err, "sub command name can't be read")
	}
	sub := a.SubArgsUntil(p)
	sub.name = name
	return sub, nil
}

func (a *Args) slice(end int) *Args {
	sub := &Args{
		args: append([]string{}, a.args[a.index:end]...),
		log:  os.Stderr,
	}
	a.index = end
	return sub
}

// logf writes a single diagnostic with one write call.
func (a *Args) logf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.log, format, args...)
}
