package cli

import (
	"io"
)

// MockCommand records what a command was given and replays canned results.
type MockCommand struct {
	Spec       ExecSpec
	OutputData []byte
	StderrData string
	RunErr     error

	StdinData []byte
	stdout    io.Writer
	stderr    io.Writer
	stdin     io.Reader
}

func (c *MockCommand) Run() error {
	if c.stdin != nil {
		c.StdinData, _ = io.ReadAll(c.stdin)
	}
	if c.stderr != nil && c.StderrData != "" {
		_, _ = io.WriteString(c.stderr, c.StderrData)
	}
	if c.stdout != nil {
		_, _ = c.stdout.Write(c.OutputData)
	}
	return c.RunErr
}

func (c *MockCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *MockCommand) SetStderr(w io.Writer) { c.stderr = w }
func (c *MockCommand) SetStdin(r io.Reader)  { c.stdin = r }

// MockExecutor runs validators like osExecutor and hands out MockCommands.
type MockExecutor struct {
	CommandFunc func(spec ExecSpec) *MockCommand
	Commands    []*MockCommand
}

func (m *MockExecutor) Command(name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: args}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}
	cmd := &MockCommand{Spec: spec}
	if m.CommandFunc != nil {
		cmd = m.CommandFunc(spec)
		cmd.Spec = spec
	}
	m.Commands = append(m.Commands, cmd)
	return cmd, nil
}
