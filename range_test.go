package cmdargs

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	table := map[string]struct {
		argv     []string
		skip     int
		min, max float64
		value    int
		log      string
	}{
		"value inside range should produce no diagnostics": {
			argv:  []string{"prog", "--val", "7"},
			skip:  1,
			min:   2,
			max:   14,
			value: 7,
		},
		"bounds should be inclusive": {
			argv:  []string{"prog", "--val", "14"},
			skip:  1,
			min:   2,
			max:   14,
			value: 14,
		},
		"value above range should be assigned and reported": {
			argv:  []string{"prog", "--val", "20"},
			skip:  1,
			min:   2,
			max:   14,
			value: 20,
			log:   "Error: argument to --val must be smaller than 14.\n",
		},
		"value below range should be assigned and reported": {
			argv:  []string{"prog", "--val", "1"},
			skip:  1,
			min:   2,
			max:   14,
			value: 1,
			log:   "Error: argument to --val must be greater than 2.\n",
		},
		"degenerate range should have no upper bound": {
			argv:  []string{"prog", "--val", "1000"},
			skip:  1,
			min:   5,
			max:   5,
			value: 1000,
		},
		"degenerate range should keep the lower bound": {
			argv:  []string{"prog", "--val", "3"},
			skip:  1,
			min:   5,
			max:   5,
			value: 3,
			log:   "Error: argument to --val must be greater than 5.\n",
		},
		"first argument should be labeled as number": {
			argv:  []string{"prog", "20"},
			min:   2,
			max:   14,
			value: 20,
			log:   "Error: number must be smaller than 14.\n",
		},
		"inverted range should only check the lower bound": {
			argv:  []string{"prog", "5"},
			min:   10,
			max:   1,
			value: 5,
			log:   "Error: number must be greater than 10.\n",
		},
		"partial value should be validated after the warning": {
			argv:  []string{"prog", "-n", "30x"},
			skip:  1,
			min:   0,
			max:   10,
			value: 30,
			log:   "Warning: partially parsed string\nUnparsed bit: 'x'\nError: argument to -n must be smaller than 10.\n",
		},
		"unparsable value should still be validated": {
			argv:  []string{"prog", "-n", "abc"},
			skip:  1,
			min:   1,
			max:   10,
			value: 0,
			log:   "Error: could not parse abc.\nError: argument to -n must be greater than 1.\n",
		},
		"negative bounds should be supported": {
			argv:  []string{"prog", "-5"},
			min:   -3,
			max:   3,
			value: -5,
			log:   "Error: number must be greater than -3.\n",
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			var buf bytes.Buffer
			a := New(tcase.argv, WithLog(&buf))
			for i := 0; i < tcase.skip; i++ {
				require.NoError(t, a.Shift())
			}
			var value int
			require.NoError(t, Validate(a.Range(tcase.min, tcase.max), &value))
			assert.Equal(t, tcase.value, value)
			assert.Equal(t, tcase.log, buf.String())
			assert.Equal(t, 0, a.Size())
		})
	}
}

func TestValidateInvertedRange(t *testing.T) {
	var buf bytes.Buffer
	a := New([]string{"prog", "--val", "100"}, WithLog(&buf))
	require.NoError(t, a.Shift())
	var value float64
	require.NoError(t, Validate(a.Range(30, 10), &value))
	assert.Equal(t, 100.0, value)
	assert.Empty(t, buf.String())
}

func TestValidateTypes(t *testing.T) {
	var buf bytes.Buffer
	a := New([]string{"prog", "--port", "70000", "--ratio", "1.5", "--level", "3"}, WithLog(&buf))

	require.NoError(t, a.Shift())
	var p uint16
	require.NoError(t, Validate(a.Range(1, 65535), &p))
	assert.Equal(t, uint16(0), p)

	require.NoError(t, a.Shift())
	var ratio float32
	require.NoError(t, Validate(a.Range(0, 1), &ratio))
	assert.Equal(t, float32(1.5), ratio)

	require.NoError(t, a.Shift())
	var level int8
	require.NoError(t, Validate(a.AtLeast(1), &level))
	assert.Equal(t, int8(3), level)

	assert.Equal(
		t,
		"Error: could not parse 70000.\n"+
			"Error: argument to --port must be greater than 1.\n"+
			"Error: argument to --ratio must be smaller than 1.\n",
		buf.String(),
	)
}

func TestValidateExhausted(t *testing.T) {
	var buf bytes.Buffer
	a := New([]string{"prog", "--val"}, WithLog(&buf))
	require.NoError(t, a.Shift())
	var value int
	err := Validate(a.AtLeast(0), &value)
	assert.True(t, errors.Is(err, ErrOutOfRange), "unexpected error %v", err)
	assert.Empty(t, buf.String())
}

func TestRangeBounds(t *testing.T) {
	a := Empty()
	r := a.Range(2, 14)
	assert.Equal(t, 2.0, r.Min())
	assert.Equal(t, 14.0, r.Max())
	assert.True(t, r.Bounded())
	assert.False(t, a.AtLeast(2).Bounded())
	assert.False(t, a.Range(5, 1).Bounded())
}
