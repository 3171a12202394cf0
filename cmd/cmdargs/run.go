package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/1pkg/cmdargs"
)

const separator = ";"

// run executes the chained commands until the arguments are exhausted.
// Malformed values are only reported, errors are returned for structural problems.
func run(a *cmdargs.Args, out io.Writer, logger *zap.Logger) error {
	if a.Size() == 0 {
		return fmt.Errorf("no command provided to %s", a.ProgramName())
	}
	for a.Size() > 0 {
		name, err := a.Peek()
		if err != nil {
			return err
		}
		var sub *cmdargs.Args
		switch name {
		case separator:
			_ = a.Shift()
			continue
		case "sum":
			sub, err = a.SubCmdUntil(cmdargs.Is(separator))
			if err == nil {
				sub.SetLog(a.Log())
				err = sum(sub, out)
			}
		case "repeat":
			sub, err = a.SubCmd(2)
			if err == nil {
				sub.SetLog(a.Log())
				err = repeat(sub, out)
			}
		case "port":
			sub, err = a.SubCmd(1)
			if err == nil {
				sub.SetLog(a.Log())
				err = port(sub, out)
			}
		default:
			fmt.Fprintf(a.Log(), "%s unknown command %s.\n", cmdargs.ErrorPrefix, name)
			skipped := a.SubArgsUntil(cmdargs.Is(separator))
			logger.Debug("command skipped", zap.String("command", name), zap.Strings("args", skipped.Rest()))
			continue
		}
		if err != nil {
			return fmt.Errorf("command %s can't be executed, %w", name, err)
		}
		logger.Debug("command executed", zap.String("command", name), zap.Int("remaining", a.Size()))
	}
	return nil
}

func sum(a *cmdargs.Args, out io.Writer) error {
	var total float64
	for a.Size() > 0 {
		var f float64
		if err := cmdargs.Extract(a, &f); err != nil {
			return err
		}
		total += f
	}
	_, err := fmt.Fprintf(out, "%s: %g\n", a.ProgramName(), total)
	return err
}

func repeat(a *cmdargs.Args, out io.Writer) error {
	var count int
	if err := cmdargs.Validate(a.AtLeast(1), &count); err != nil {
		return err
	}
	word, err := a.Next()
	if err != nil {
		return err
	}
	var words []string
	for i := 0; i < count; i++ {
		words = append(words, word)
	}
	_, err = fmt.Fprintf(out, "%s: %s\n", a.ProgramName(), strings.Join(words, " "))
	return err
}

func port(a *cmdargs.Args, out io.Writer) error {
	var p uint16
	if err := cmdargs.Validate(a.Range(1, 65535), &p); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s: %d\n", a.ProgramName(), p)
	return err
}
