package cmdargs

// Number lists the kinds a Range can validate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range holds the bounds used to validate the next argument of a cursor.
// The number should be in [min, max], or in [min, +inf) when min == max.
type Range struct {
	min  float64
	max  float64
	args *Args
}

// Range returns the validator for the [min, max] bounds.
//
//	a := cmdargs.New(os.Args)
//	var i int
//	if arg, _ := a.Next(); arg == "--val" {
//		_ = cmdargs.Validate(a.Range(2, 14), &i)
//	}
//
// The error message mentions the previous argument, scanning several values
// for one flag is better done with Extract and custom messages.
func (a *Args) Range(min, max float64) Range {
	return Range{min: min, max: max, args: a}
}

// AtLeast returns the validator for the [min, +inf) bounds.
func (a *Args) AtLeast(min float64) Range {
	return a.Range(min, min)
}

func (r Range) Min() float64 {
	return r.min
}

func (r Range) Max() float64 {
	return r.max
}

// Bounded reports whether the range has an upper bound.
func (r Range) Bounded() bool {
	return r.min < r.max
}

// Validate extracts the next argument of the range cursor into n and reports
// bound violations to the cursor log. The number is assigned even when it is
// out of bounds, the bounds are checked against whatever n holds afterwards.
// Only the Extract errors are returned.
func Validate[N Number](r Range, n *N) error {
	label := ErrorPrefix + " number"
	if r.args.Position() > 0 {
		prev, _ := r.args.PeekAt(-1)
		label = ErrorPrefix + " argument to " + prev
	}
	if err := Extract(r.args, n); err != nil {
		return err
	}
	if float64(*n) < r.min {
		r.args.logf("%s must be greater than %v.\n", label, N(r.min))
	}
	if r.min < r.max && r.max < float64(*n) {
		r.args.logf("%s must be smaller than %v.\n", label, N(r.max))
	}
	return nil
}
