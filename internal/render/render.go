package render

import (
	"regexp"
	"strings"

	"errcodegen/internal/codes"
)

// DefaultNamespace wraps the generated declarations unless Options says otherwise.
const DefaultNamespace = "db_errors"

var namespaceRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidNamespace reports whether ns is a plain or nested C++ namespace name.
func ValidNamespace(ns string) bool {
	return namespaceRe.MatchString(ns)
}

// Options controls the generated text.
type Options struct {
	Namespace  string
	Mode       Mode
	PragmaOnce bool
}

// DefaultOptions returns the options matching the historical generator output.
func DefaultOptions() Options {
	return Options{
		Namespace:  DefaultNamespace,
		Mode:       ModeConstants,
		PragmaOnce: true,
	}
}

// Render returns the header text for m. label is written verbatim into the
// leading provenance comment.
func Render(m *codes.Model, label string, opts Options) string {
	ns := opts.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	w := &writer{}
	w.line("// Auto-generated from " + label)
	if opts.PragmaOnce {
		w.line("#pragma once")
	}
	w.blank()
	if opts.Mode == ModeEnum {
		w.line("#include <cstdint>")
		w.blank()
	}
	w.line("namespace " + ns + " {")
	w.blank()

	if m != nil {
		for _, c := range m.Categories {
			switch opts.Mode {
			case ModeEnum:
				writeEnum(w, c)
			case ModeNested:
				writeNested(w, c)
			default:
				writeConstants(w, c)
			}
		}
	}

	w.line("}  // namespace " + ns)
	return w.String()
}

func writeConstants(w *writer, c codes.Category) {
	w.line("// " + c.Name + " error codes")
	for _, e := range c.Entries {
		w.line(constant(e.Name, e.Code.String()))
	}
	w.blank()
}

func writeEnum(w *writer, c codes.Category) {
	w.line("// " + c.Name + " error codes")
	for _, e := range c.Entries {
		w.line(constant(e.Name+"_int", e.Code.String()))
	}
	w.blank()

	w.line("enum class " + c.Name + " : int {")
	for _, e := range c.Entries {
		w.line("    " + e.Name + " = " + e.Name + "_int,")
	}
	w.line("};")
	w.blank()

	w.line("inline int to_int(" + c.Name + " e) { return static_cast<int>(e); }")
	w.blank()
}

// writeNested aligns trailing message comments one column past the longest
// commented declaration, the way clang-format aligns them.
func writeNested(w *writer, c codes.Category) {
	w.line("namespace " + c.Name + " {  // " + c.Name + " errors")
	w.blank()

	decls := make([]string, len(c.Entries))
	width := 0
	for i, e := range c.Entries {
		decls[i] = constant(e.Name, e.Code.String())
		if comment(e) != "" && len(decls[i]) > width {
			width = len(decls[i])
		}
	}
	for i, e := range c.Entries {
		text := comment(e)
		if text == "" {
			w.line(decls[i])
			continue
		}
		w.line(decls[i] + strings.Repeat(" ", width-len(decls[i])) + "  // " + text)
	}

	w.line("}  // namespace " + c.Name)
	w.blank()
}

func constant(name, value string) string {
	return "constexpr int " + name + " = " + value + ";"
}

// comment returns the message flattened to one trimmed line. Trailing
// backslashes are dropped: in a // comment they splice the next line into it.
func comment(e codes.Entry) string {
	if !e.HasMessage {
		return ""
	}
	return strings.TrimRight(strings.Join(strings.Fields(e.Message), " "), `\ `)
}

type writer struct {
	b strings.Builder
}

func (w *writer) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) blank() {
	w.b.WriteByte('\n')
}

func (w *writer) String() string {
	return w.b.String()
}
