package loganalyzer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ErrNoCommand is the error status of an Exec source given an empty command
// line.
var ErrNoCommand = errors.New("no command to execute")

// Echo returns a source containing the supplied string.
func Echo(s string) *Source {
	return NewSource().WithReader(strings.NewReader(s))
}

// Exec runs an external command and returns a source containing its combined
// output. The command line is split into words using POSIX shell rules, so
// quoting works as it would in sh. Variable references are expanded from the
// environment. If the command cannot be started, or exits with a non-zero
// status, the source's error status is set.
func Exec(cmdLine string) *Source {
	s := NewSource().WithName(cmdLine)
	args, err := shell.Fields(cmdLine, nil)
	if err != nil {
		return s.WithError(fmt.Errorf("parsing command %q: %w", cmdLine, err))
	}
	if len(args) == 0 {
		return s.WithError(ErrNoCommand)
	}
	cmd := exec.Command(args[0], args[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return s.WithError(fmt.Errorf("running %s: %w", args[0], err))
	}
	return s.WithReader(bytes.NewReader(output))
}

// File returns a *Source associated with the specified file. If there is an
// error opening the file, the source's error status will be set.
func File(path string) *Source {
	s := NewSource().WithName(path)
	f, err := os.Open(path)
	if err != nil {
		return s.WithError(err)
	}
	return s.WithReader(f)
}

// Stdin returns a source which reads from the program's standard input.
func Stdin() *Source {
	return NewSource().WithName("-").WithReader(os.Stdin)
}
