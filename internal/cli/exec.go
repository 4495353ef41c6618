package cli

// This file wraps os/exec behind small interfaces so external tools can be
// validated before they run and stubbed in tests.

import (
	"errors"
	"io"
	"os/exec"
	"strings"
)

// execCommand is a test seam for stubbing command creation in tests.
var execCommand = exec.Command

// Command represents a command that can be executed.
type Command interface {
	Run() error
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetStdin(r io.Reader)
}

// Executor creates commands for execution.
type Executor interface {
	Command(name string, args []string, validators ...ExecValidator) (Command, error)
}

type execCmd struct {
	cmd *exec.Cmd
}

func (c *execCmd) Run() error            { return c.cmd.Run() }
func (c *execCmd) SetStdout(w io.Writer) { c.cmd.Stdout = w }
func (c *execCmd) SetStderr(w io.Writer) { c.cmd.Stderr = w }
func (c *execCmd) SetStdin(r io.Reader)  { c.cmd.Stdin = r }

// osExecutor is the production implementation using os/exec.
type osExecutor struct{}

func (osExecutor) Command(name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: args}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}
	return &execCmd{cmd: execCommand(name, args...)}, nil
}

var execExecutor Executor = osExecutor{}

// ExecSpec is the command line a validator inspects.
type ExecSpec struct {
	Name string
	Args []string
}

// ExecValidator rejects a command before it is created.
type ExecValidator func(ExecSpec) error

// AllowlistBins only permits the named binaries.
func AllowlistBins(allowed ...string) ExecValidator {
	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}
	return func(spec ExecSpec) error {
		if _, ok := set[spec.Name]; !ok {
			return errors.New("exec: binary not allowed")
		}
		return nil
	}
}

// NoShellMeta rejects arguments containing shell metacharacters.
func NoShellMeta() ExecValidator {
	return func(spec ExecSpec) error {
		for _, arg := range spec.Args {
			if strings.ContainsAny(arg, "&|;<>()$`\\") {
				return errors.New("exec: shell metacharacters not allowed")
			}
		}
		return nil
	}
}

// NoControlChars rejects arguments containing line breaks or tabs.
func NoControlChars() ExecValidator {
	return func(spec ExecSpec) error {
		for _, arg := range spec.Args {
			if strings.ContainsAny(arg, "\r\n\t") {
				return errors.New("exec: control characters not allowed")
			}
		}
		return nil
	}
}
