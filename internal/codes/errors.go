package codes

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by ParseError through errors.Is.
var (
	ErrSourceAccess = errors.New("error code source not readable")
	ErrMalformed    = errors.New("malformed error code source")
)

// Kind classifies a ParseError.
type Kind int

const (
	// KindSourceAccess means the source could not be located or read.
	KindSourceAccess Kind = iota
	// KindMalformedStructure covers INI syntax errors and duplicate sections or keys.
	KindMalformedStructure
	// KindMalformedValue means a code field is not an integer.
	KindMalformedValue
)

func (k Kind) String() string {
	switch k {
	case KindSourceAccess:
		return "source access"
	case KindMalformedStructure:
		return "malformed structure"
	case KindMalformedValue:
		return "malformed value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError is returned by Load and Parse. Section and Key are set when the
// failure can be attributed to them.
type ParseError struct {
	Kind    Kind
	Source  string
	Section string
	Key     string
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Section != "" {
		b.WriteString(": [")
		b.WriteString(e.Section)
		b.WriteByte(']')
		if e.Key != "" {
			b.WriteByte(' ')
			b.WriteString(e.Key)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrSourceAccess for KindSourceAccess and ErrMalformed for the
// other kinds.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrSourceAccess:
		return e.Kind == KindSourceAccess
	case ErrMalformed:
		return e.Kind == KindMalformedStructure || e.Kind == KindMalformedValue
	}
	return false
}
