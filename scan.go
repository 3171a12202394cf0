package cmdargs

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
)

// ErrUnsupportedTarget is returned for targets Extract can't assign to.
var ErrUnsupportedTarget = errors.New("unsupported extraction target")

// Setter is implemented by flag.Value and pflag.Value alike.
type Setter interface {
	Set(string) error
}

// Extract consumes the next argument and parses it into the target.
// Parsing problems never fail the call, they are written to the cursor log
// and the longest parsed prefix is still assigned. The call only fails
// when no argument is left or the target isn't supported, in both cases
// nothing is consumed.
func Extract(a *Args, target interface{}) error {
	k := KindOf(target)
	if k == Invalid {
		return errors.Wrapf(ErrUnsupportedTarget, "argument can't be extracted into %T", target)
	}
	arg, err := a.Next()
	if err != nil {
		return err
	}
	n, ok := parse(k, arg, target)
	if !ok {
		a.logf("%s could not parse %s.\n", ErrorPrefix, arg)
		return nil
	}
	if n < len(arg) {
		a.logf("%s partially parsed string\nUnparsed bit: '%s'\n", WarningPrefix, arg[n:])
	}
	return nil
}

// Scan extracts the next arguments into the targets in order,
// it stops at the first failing extraction.
func (a *Args) Scan(targets ...interface{}) error {
	for _, target := range targets {
		if err := Extract(a, target); err != nil {
			return err
		}
	}
	return nil
}

// parse returns the number of consumed bytes of arg.
func parse(k Kind, arg string, target interface{}) (int, bool) {
	var v interface{}
	var n int
	switch {
	case k == Value:
		if err := target.(Setter).Set(arg); err != nil {
			return 0, false
		}
		return len(arg), true
	case k == Text:
		if err := target.(encoding.TextUnmarshaler).UnmarshalText([]byte(arg)); err != nil {
			return 0, false
		}
		return len(arg), true
	case k == String:
		v, n = arg, len(arg)
	case k == Bool:
		i := spaces(arg)
		for _, tkn := range []string{"true", "false", "1", "0"} {
			if strings.HasPrefix(arg[i:], tkn) {
				v, n = tkn == "true" || tkn == "1", i+len(tkn)
				break
			}
		}
		if v == nil {
			return 0, false
		}
	case k.Signed():
		if n = intPrefix(arg, true); n == 0 {
			return 0, false
		}
		i, err := strconv.ParseInt(strings.TrimLeftFunc(arg[:n], unicode.IsSpace), 10, k.Base())
		if err != nil {
			return 0, false
		}
		v = i
	case k.Unsigned():
		if n = intPrefix(arg, false); n == 0 {
			return 0, false
		}
		digits := strings.TrimPrefix(strings.TrimLeftFunc(arg[:n], unicode.IsSpace), "+")
		u, err := strconv.ParseUint(digits, 10, k.Base())
		if err != nil {
			return 0, false
		}
		v = u
	case k.Float():
		if n = floatPrefix(arg); n == 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimLeftFunc(arg[:n], unicode.IsSpace), k.Base())
		if err != nil {
			return 0, false
		}
		v = f
	case k.Complex():
		// Mapstructure has no complex support, assign it directly.
		c, n, ok := complexPrefix(arg, k.Base())
		if !ok {
			return 0, false
		}
		reflect.ValueOf(target).Elem().SetComplex(c)
		return n, true
	default:
		return 0, false
	}
	if err := mapstructure.Decode(v, target); err != nil {
		return 0, false
	}
	return n, true
}

func spaces(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

func digits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// intPrefix returns the end of the longest base 10 integer prefix of s
// including leading spaces and sign, or 0 if there is none.
func intPrefix(s string, signed bool) int {
	i := spaces(s)
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}
	j := digits(s, i)
	if j == i {
		return 0
	}
	return j
}

// floatPrefix is intPrefix for decimal floats with optional fraction and exponent.
func floatPrefix(s string) int {
	i := spaces(s)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = digits(s, i)
	mantissa := i - start
	if i < len(s) && s[i] == '.' {
		j := digits(s, i+1)
		mantissa += j - i - 1
		i = j
	}
	if mantissa == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(s, j); k > j {
			i = k
		}
	}
	return i
}

// complexPrefix accepts a whole complex literal or a real prefix.
func complexPrefix(s string, bits int) (complex128, int, bool) {
	if c, err := strconv.ParseComplex(strings.TrimSpace(s), bits); err == nil {
		return c, len(s), true
	}
	n := floatPrefix(s)
	if n == 0 {
		return 0, 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimLeftFunc(s[:n], unicode.IsSpace), bits/2)
	if err != nil {
		return 0, 0, false
	}
	return complex(f, 0), n, true
}
