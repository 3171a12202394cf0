package cmdargs

import (
	"strings"

	"github.com/samber/lo"
)

// Is matches any of the provided values exactly.
func Is(values ...string) Predicate {
	return func(arg string) bool {
		return lo.Contains(values, arg)
	}
}

func HasPrefix(prefix string) Predicate {
	return func(arg string) bool {
		return strings.HasPrefix(arg, prefix)
	}
}

func Not(p Predicate) Predicate {
	return func(arg string) bool {
		return !p(arg)
	}
}

// IsFlag reports whether the argument is dash prefixed,
// lone dash and negative numbers are not flags.
func IsFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return false
	}
	return floatPrefix(arg) != len(arg)
}
