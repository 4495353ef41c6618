package errx

import (
	"errors"
	"reflect"
	"testing"
)

func TestError_New(t *testing.T) {
	err := New(CodeMalformed, DescMalformed, "bad value")

	if err.Code() != CodeMalformed {
		t.Errorf("Code() = %q, want %q", err.Code(), CodeMalformed)
	}
	if err.Description() != DescMalformed {
		t.Errorf("Description() = %q, want %q", err.Description(), DescMalformed)
	}
	if err.Message() != "bad value" {
		t.Errorf("Message() = %q, want %q", err.Message(), "bad value")
	}
}

func TestError_WrapMatchesBaseAndCause(t *testing.T) {
	base := errors.New("base")
	cause := errors.New("cause")
	err := Wrap(CodeSource, DescSource, "read failed", cause).WithBase(base)

	if !errors.Is(err, base) {
		t.Errorf("errors.Is(err, base) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v (should return cause, not base)", err.Unwrap(), cause)
	}
	if err.Base() != base {
		t.Errorf("Base() = %v, want %v", err.Base(), base)
	}
}

func TestError_WithContextDoesNotMutate(t *testing.T) {
	orig := New(CodeMalformed, DescMalformed, "bad")
	withKey := orig.WithContext("section", "IO")

	if orig.Context() != nil {
		t.Errorf("original Context() = %v, want nil", orig.Context())
	}
	if withKey.Context()["section"] != "IO" {
		t.Errorf("Context()[section] = %v, want IO", withKey.Context()["section"])
	}
}

func TestError_WithContextMapSkipsEmptyStrings(t *testing.T) {
	err := New(CodeMalformed, DescMalformed, "bad").WithContextMap(map[string]any{
		"section": "IO",
		"key":     "",
		"line":    3,
	})

	want := map[string]any{"section": "IO", "line": 3}
	if !reflect.DeepEqual(err.Context(), want) {
		t.Errorf("Context() = %v, want %v", err.Context(), want)
	}
}

func TestError_WithBaseWithoutCause(t *testing.T) {
	base := errors.New("base")
	err := New(CodeCLI, DescCLI, "test").WithBase(base)

	if !errors.Is(err, base) {
		t.Errorf("errors.Is(err, base) = false, want true")
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestError_ErrorFallbacks(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message", err: New(CodeCLI, DescCLI, "msg"), want: "msg"},
		{name: "description", err: New(CodeCLI, DescCLI, ""), want: DescCLI},
		{name: "code", err: New(CodeCLI, "", ""), want: CodeCLI},
		{name: "empty", err: New("", "", ""), want: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	if err.Error() != "" || err.Code() != "" || err.Context() != nil || err.WithContext("k", "v") != nil {
		t.Errorf("nil *Error accessors should return zero values")
	}
}
