package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/1pkg/cmdargs"
	"github.com/1pkg/cmdargs/sinks"
)

func TestRun(t *testing.T) {
	table := map[string]struct {
		args []string
		out  string
		log  []string
		err  string
	}{
		"sum should add numbers up to the separator": {
			args: []string{"sum", "1", "2.5", "-0.5", ";", "sum", "10"},
			out:  "sum: 3\nsum: 10\n",
		},
		"sum should report malformed numbers and keep going": {
			args: []string{"sum", "1", "x", "2y"},
			out:  "sum: 3\n",
			log: []string{
				"Error: could not parse x.\n",
				"Warning: partially parsed string\nUnparsed bit: 'y'\n",
			},
		},
		"repeat should print the word count times": {
			args: []string{"repeat", "3", "go", ";", "port", "8080"},
			out:  "repeat: go go go\nport: 8080\n",
		},
		"repeat should report a count below the minimum": {
			args: []string{"repeat", "-2", "go"},
			out:  "repeat: \n",
			log:  []string{"Error: number must be greater than 1.\n"},
		},
		"port should report out of range values": {
			args: []string{"port", "0", ";", "port", "99999"},
			out:  "port: 0\nport: 0\n",
			log: []string{
				"Error: number must be greater than 1.\n",
				"Error: could not parse 99999.\n",
				"Error: number must be greater than 1.\n",
			},
		},
		"unknown command should be reported and skipped": {
			args: []string{"mul", "2", "3", ";", "sum", "2", "3"},
			out:  "sum: 5\n",
			log:  []string{"Error: unknown command mul.\n"},
		},
		"repeat without enough arguments should produce expected error": {
			args: []string{"repeat", "3"},
			err:  "command repeat can't be executed, sub command repeat can't be formed: sub arguments of size 2 can't be formed from 1 remaining: argument vector out of range",
		},
		"no command should produce expected error": {
			err: "no command provided to cmdargs",
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			var out bytes.Buffer
			var r sinks.Recorder
			a := cmdargs.New(append([]string{"cmdargs"}, tcase.args...), cmdargs.WithLog(&r))
			err := run(a, &out, zap.NewNop())
			if tcase.err != "" {
				require.Error(t, err)
				assert.Equal(t, tcase.err, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tcase.out, out.String())
			if len(tcase.log) == 0 {
				assert.Equal(t, 0, r.Len())
			} else {
				assert.Equal(t, tcase.log, r.Entries())
			}
		})
	}
}

func TestSink(t *testing.T) {
	var buf bytes.Buffer
	logger := zap.NewNop()
	assert.Equal(t, io.Writer(&buf), sink(options{}, logger, &buf))
	assert.NotEqual(t, io.Writer(&buf), sink(options{color: true}, logger, &buf))
	assert.NotEqual(t, io.Writer(&buf), sink(options{json: true, color: true}, logger, &buf))
}

func TestNewLogger(t *testing.T) {
	for _, opts := range []options{{}, {json: true}, {verbose: true}} {
		logger, err := newLogger(opts)
		require.NoError(t, err)
		assert.Equal(t, opts.verbose, logger.Core().Enabled(zap.DebugLevel) || logger.Core().Enabled(zap.InfoLevel))
		_ = logger.Sync()
	}
}
