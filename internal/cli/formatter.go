package cli

import (
	"bytes"
	"fmt"
	"strings"
)

const clangFormatBin = "clang-format"

// ClangFormatClient pipes generated headers through clang-format.
type ClangFormatClient struct {
	exec       Executor
	validators []ExecValidator
}

// NewClangFormatClient creates a ClangFormatClient with default validators.
func NewClangFormatClient(exec Executor) *ClangFormatClient {
	return &ClangFormatClient{
		exec: exec,
		validators: []ExecValidator{
			AllowlistBins(clangFormatBin),
			NoShellMeta(),
			NoControlChars(),
		},
	}
}

// Format returns text as formatted by clang-format. assumeFilename lets
// clang-format pick up the .clang-format file governing the output path.
func (c *ClangFormatClient) Format(text, assumeFilename string) (string, error) {
	args := []string{"--assume-filename=" + assumeFilename}
	cmd, err := c.exec.Command(clangFormatBin, args, c.validators...)
	if err != nil {
		return "", wrapWithSentinelAndContext(ErrFormatterRejected, err,
			fmt.Sprintf("clang-format rejected: %v", err),
			map[string]any{"output": assumeFilename, "component": "formatter"})
	}

	var stdout, stderr bytes.Buffer
	cmd.SetStdin(strings.NewReader(text))
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", wrapWithSentinelAndContext(ErrFormatFailed, err,
			fmt.Sprintf("clang-format failed: %s", msg),
			map[string]any{"output": assumeFilename, "component": "formatter"})
	}
	return stdout.String(), nil
}

var clangFormatClient = NewClangFormatClient(execExecutor)
