package errx

import (
	"errors"
	"testing"
)

func TestCategories_Helpers(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name string
		err  *Error
		code string
	}{
		{name: "CLI", err: CLI("test"), code: CodeCLI},
		{name: "WrapCLI", err: WrapCLI("test", cause), code: CodeCLI},
		{name: "WrapSource", err: WrapSource("test", cause), code: CodeSource},
		{name: "Malformed", err: Malformed("test"), code: CodeMalformed},
		{name: "WrapMalformed", err: WrapMalformed("test", cause), code: CodeMalformed},
		{name: "WrapOutput", err: WrapOutput("test", cause), code: CodeOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", tt.err.Code(), tt.code)
			}
		})
	}
}

func TestCategories_CreateByCode(t *testing.T) {
	if err := CreateByCode(CodeRender, DescRender, "test", nil); err.Cause() != nil {
		t.Errorf("Cause() = %v, want nil", err.Cause())
	}
	cause := errors.New("cause")
	if err := CreateByCode(CodeRender, DescRender, "test", cause); err.Cause() != cause {
		t.Errorf("Cause() = %v, want %v", err.Cause(), cause)
	}
}

func TestCategories_FromSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("known sentinel", func(t *testing.T) {
		lookup := func(error) (string, string) { return CodeOutput, DescOutput }
		err := FromSentinel(sentinel, lookup, "test", nil)
		if err.Code() != CodeOutput {
			t.Errorf("Code() = %q, want %q", err.Code(), CodeOutput)
		}
		if !errors.Is(err, sentinel) {
			t.Errorf("errors.Is(err, sentinel) = false, want true")
		}
	})

	t.Run("unknown sentinel falls back to CLI", func(t *testing.T) {
		lookup := func(error) (string, string) { return "", "" }
		err := FromSentinel(sentinel, lookup, "test", nil)
		if err.Code() != CodeCLI {
			t.Errorf("Code() = %q, want %q", err.Code(), CodeCLI)
		}
	})
}
