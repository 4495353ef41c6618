package render

import (
	"fmt"
	"strings"
)

// Mode selects how categories are emitted.
type Mode int

const (
	// ModeConstants emits one flat constexpr int per entry.
	ModeConstants Mode = iota
	// ModeEnum emits constexpr ints, an enum class per category and a to_int helper.
	ModeEnum
	// ModeNested wraps each category in its own namespace and appends messages as comments.
	ModeNested
)

var modeNames = []string{
	ModeConstants: "constants",
	ModeEnum:      "enum",
	ModeNested:    "nested",
}

var modeDescriptions = []string{
	ModeConstants: "flat constexpr int per entry (default)",
	ModeEnum:      "constexpr ints plus enum class and to_int() per category",
	ModeNested:    "namespace per category, messages as trailing comments",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeConstants, ModeEnum, ModeNested}
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Description is a one-line summary used in help output.
func (m Mode) Description() string {
	if m < 0 || int(m) >= len(modeDescriptions) {
		return ""
	}
	return modeDescriptions[m]
}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q (use %s)", s, strings.Join(modeNames, "|"))
}
