package errx

// CreateByCode creates an Error using the provided code, description, and message.
// A non-nil cause is attached as the wrapped error.
func CreateByCode(code, description, message string, cause error) *Error {
	if cause != nil {
		return Wrap(code, description, message, cause)
	}
	return New(code, description, message)
}

// FromSentinel creates an Error whose category is resolved from a sentinel.
// Unknown sentinels fall back to the CLI category.
func FromSentinel(sentinel error, lookup func(error) (code, description string), message string, cause error) *Error {
	code, desc := lookup(sentinel)
	if code == "" {
		code = CodeCLI
		desc = DescCLI
	}
	return CreateByCode(code, desc, message, cause).WithBase(sentinel)
}

// CLI creates a CLI/argument validation error.
func CLI(message string) *Error {
	return New(CodeCLI, DescCLI, message)
}

// WrapCLI wraps a cause with a CLI/argument validation error.
func WrapCLI(message string, cause error) *Error {
	return Wrap(CodeCLI, DescCLI, message, cause)
}

// WrapSource wraps a cause with a source access error.
// Used when the error code config cannot be located or read.
func WrapSource(message string, cause error) *Error {
	return Wrap(CodeSource, DescSource, message, cause)
}

// Malformed creates a malformed config error.
func Malformed(message string) *Error {
	return New(CodeMalformed, DescMalformed, message)
}

// WrapMalformed wraps a cause with a malformed config error.
func WrapMalformed(message string, cause error) *Error {
	return Wrap(CodeMalformed, DescMalformed, message, cause)
}

// WrapOutput wraps a cause with an output error.
func WrapOutput(message string, cause error) *Error {
	return Wrap(CodeOutput, DescOutput, message, cause)
}
