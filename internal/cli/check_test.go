package cli

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"errcodegen/internal/codes"
	"errcodegen/pkg/errx"
)

func TestSummaryTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	m, err := codes.Parse("s.ini", []byte("[IO]\nB = 105\nA = 100\n[Empty]\n[One]\nX = 7\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Category", "Entries", "Codes"},
		{"IO", "2", "100..105"},
		{"Empty", "0", "empty"},
		{"One", "1", "7"},
	}, summaryTable(m))
}

func TestCheckSource(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	t.Run("valid source", func(t *testing.T) {
		input := writeInput(t, sampleINI)
		var buf bytes.Buffer
		require.NoError(t, checkSource(zap.NewNop(), &Printer{Writer: &buf}, input))

		out := buf.String()
		assert.Contains(t, out, input)
		assert.Contains(t, out, "DbError")
		assert.Contains(t, out, "1000..1002")
		assert.Contains(t, out, "1 categories, 3 entries")
	})

	t.Run("no entries warns", func(t *testing.T) {
		input := writeInput(t, "[Empty]\n")
		var out, errOut bytes.Buffer
		require.NoError(t, checkSource(zap.NewNop(), &Printer{Writer: &out, ErrWriter: &errOut}, input))
		assert.Contains(t, out.String(), "Empty")
		assert.Contains(t, errOut.String(), "no error codes declared")
	})

	t.Run("quiet prints nothing on success", func(t *testing.T) {
		input := writeInput(t, sampleINI)
		var out, errOut bytes.Buffer
		require.NoError(t, checkSource(zap.NewNop(), &Printer{Quiet: true, Writer: &out, ErrWriter: &errOut}, input))
		assert.Empty(t, out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("invalid source", func(t *testing.T) {
		input := writeInput(t, "[IO]\nBad = oops\n")
		var out, errOut bytes.Buffer
		err := checkSource(zap.NewNop(), &Printer{Writer: &out, ErrWriter: &errOut}, input)
		require.Error(t, err)
		assert.Empty(t, out.String())
		assert.Empty(t, errOut.String(), "the caller reports the error")
		assert.Equal(t, errx.CodeMalformed, errx.CodeOf(err))
	})
}

func TestNewModesCmd(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	cmd := NewModesCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"constants", "enum", "nested"} {
		assert.Contains(t, buf.String(), name)
	}
}
