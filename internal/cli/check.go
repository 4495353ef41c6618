package cli

// This file implements the read-only "check" and "modes" commands.

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errcodegen/internal/codes"
	"errcodegen/internal/render"
)

// NewCheckCmd returns the check subcommand, which loads a source and
// summarizes it without writing anything.
func NewCheckCmd(logger *zap.Logger) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an error code INI file",
		Long: `Load an error code INI file and print a summary of its categories.
Fails on the same errors generate would, without touching any output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkSource(logger, newPrinter(cmd.OutOrStdout()), input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input .ini file (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func checkSource(logger *zap.Logger, p *Printer, input string) error {
	model, err := codes.Load(input)
	if err != nil {
		return fail(logger, wrapLoadError(err), "Failed to load error codes")
	}

	p.Heading(input)
	p.Table(summaryTable(model))
	if model.EntryCount() == 0 {
		p.Warn("no error codes declared")
	}
	p.Success(fmt.Sprintf("%s: %d categories, %d entries", input, model.Len(), model.EntryCount()))
	return nil
}

func summaryTable(model *codes.Model) [][]string {
	data := [][]string{{"Category", "Entries", "Codes"}}
	for _, c := range model.Categories {
		codeRange := Yellow("empty")
		if lo, hi, ok := c.Range(); ok {
			codeRange = lo.String()
			if lo.Cmp(hi) != 0 {
				codeRange += ".." + hi.String()
			}
			codeRange = Green(codeRange)
		}
		data = append(data, []string{c.Name, strconv.Itoa(len(c.Entries)), codeRange})
	}
	return data
}

// NewModesCmd returns the modes subcommand listing the render modes.
func NewModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List render modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := newPrinter(cmd.OutOrStdout())
			data := [][]string{{"Mode", "Description"}}
			for _, m := range render.Modes() {
				data = append(data, []string{m.String(), m.Description()})
			}
			p.Table(data)
		},
	}
}
