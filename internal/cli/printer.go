package cli

// This file implements operator-facing output on top of pterm.
// Styling is turned off when stdout is not a terminal so generated text piped
// with --stdout stays clean.

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// ConfigureOutput disables pterm styling when noColor is set or stdout is not a TTY.
func ConfigureOutput(noColor bool) {
	if noColor || !isTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
		return
	}
	pterm.EnableStyling()
}

// Printer writes status lines and tables. A zero Printer writes status to
// stdout and warnings and errors to stderr. Quiet keeps only the errors.
type Printer struct {
	Quiet     bool
	Writer    io.Writer
	ErrWriter io.Writer
}

var defaultPrinter = &Printer{}

// SetQuiet silences everything but errors on the default printer and on
// printers created by newPrinter.
func SetQuiet(quiet bool) {
	defaultPrinter.Quiet = quiet
}

// newPrinter returns a printer on w that follows the global quiet setting.
func newPrinter(w io.Writer) *Printer {
	return &Printer{Quiet: defaultPrinter.Quiet, Writer: w}
}

func (p *Printer) out() io.Writer {
	if p.Writer != nil {
		return p.Writer
	}
	return os.Stdout
}

func (p *Printer) errOut() io.Writer {
	if p.ErrWriter != nil {
		return p.ErrWriter
	}
	return os.Stderr
}

// Success prints a success line.
func (p *Printer) Success(msg string) {
	if p.Quiet {
		return
	}
	pterm.Success.WithWriter(p.out()).Println(msg)
}

// Error prints an error line. Errors are printed even in quiet mode.
func (p *Printer) Error(msg string) {
	pterm.Error.WithWriter(p.errOut()).Println(msg)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	if p.Quiet {
		return
	}
	pterm.Warning.WithWriter(p.errOut()).Println(msg)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	pterm.Info.WithWriter(p.out()).Println(msg)
}

// Heading prints a bold title line.
func (p *Printer) Heading(title string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.out(), pterm.Bold.Sprint(title))
}

// Table renders data with the first row as header.
func (p *Printer) Table(data [][]string) {
	if p.Quiet || len(data) == 0 {
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(p.out()).Render(); err != nil {
		p.Error(fmt.Sprintf("render table: %v", err))
	}
}

// Success prints a success line on the default printer.
func Success(msg string) { defaultPrinter.Success(msg) }

// Error prints an error line on the default printer.
func Error(msg string) { defaultPrinter.Error(msg) }

// Warn prints a warning line on the default printer.
func Warn(msg string) { defaultPrinter.Warn(msg) }

// Info prints an informational line on the default printer.
func Info(msg string) { defaultPrinter.Info(msg) }

// Green colors text green.
func Green(s string) string { return pterm.Green(s) }

// Yellow colors text yellow.
func Yellow(s string) string { return pterm.Yellow(s) }
