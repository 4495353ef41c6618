package cli

// This file defines error handling utilities for the CLI, including:
//   - Sentinel errors for each error domain (CLI, Source, Malformed, Output, ...)
//   - Error wrapping functions that integrate with the errx error system
//   - Conversion of loader failures into coded errors
//   - Structured error logging and debug mode management

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"errcodegen/internal/codes"
	"errcodegen/pkg/errx"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError writes structured error logs.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

type errorSpec struct {
	code        string
	description string
}

// errorSpecs maps sentinel errors to their error codes and descriptions.
// Must be declared before the sentinels so it exists when they register.
var errorSpecs = make(map[error]errorSpec)

// newSentinelError creates a sentinel error and registers its code in one step.
func newSentinelError(msg string, code, description string) error {
	err := errors.New(msg)
	errorSpecs[err] = errorSpec{code: code, description: description}
	return err
}

func lookupSpec(sentinel error) (code, description string) {
	spec := specFor(sentinel)
	return spec.code, spec.description
}

func specFor(base error) errorSpec {
	spec, ok := errorSpecs[base]
	if ok {
		return spec
	}
	return errorSpec{code: errx.CodeCLI, description: errx.DescCLI}
}

// newWithSentinel creates a coded error whose category comes from the sentinel.
func newWithSentinel(base error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, nil)
	}
	return errx.FromSentinel(base, lookupSpec, msg, nil)
}

// wrapWithSentinel wraps cause in a coded error whose category comes from the sentinel.
func wrapWithSentinel(base, cause error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, cause)
	}
	return errx.FromSentinel(base, lookupSpec, msg, cause)
}

// wrapWithSentinelAndContext wraps an error and attaches structured context.
func wrapWithSentinelAndContext(base, cause error, msg string, context map[string]any) error {
	err := wrapWithSentinel(base, cause, msg)
	if errxErr, ok := err.(*errx.Error); ok && len(context) > 0 {
		return errxErr.WithContextMap(context)
	}
	return err
}

// Sentinel errors for CLI operations.
var (
	// CLI errors.
	ErrInputRequired    = newSentinelError("input file is required", errx.CodeCLI, errx.DescCLI)
	ErrInvalidMode      = newSentinelError("invalid render mode", errx.CodeCLI, errx.DescCLI)
	ErrConflictingFlags = newSentinelError("conflicting flags", errx.CodeCLI, errx.DescCLI)

	// Source errors.
	ErrReadSourceFailed  = newSentinelError("failed to read error code source", errx.CodeSource, errx.DescSource)
	ErrWatchSourceFailed = newSentinelError("failed to watch error code source", errx.CodeSource, errx.DescSource)

	// Malformed config errors.
	ErrMalformedConfig = newSentinelError("malformed error code source", errx.CodeMalformed, errx.DescMalformed)

	// Render errors.
	ErrInvalidNamespace = newSentinelError("invalid namespace", errx.CodeRender, errx.DescRender)

	// Output errors.
	ErrCreateOutputDirFailed = newSentinelError("failed to create output directory", errx.CodeOutput, errx.DescOutput)
	ErrWriteOutputFailed     = newSentinelError("failed to write output", errx.CodeOutput, errx.DescOutput)

	// Formatter errors.
	ErrFormatterRejected = newSentinelError("formatter command rejected", errx.CodeFormatter, errx.DescFormatter)
	ErrFormatFailed      = newSentinelError("clang-format failed", errx.CodeFormatter, errx.DescFormatter)

	// Settings errors.
	ErrReadSettingsFailed      = newSentinelError("failed to read settings", errx.CodeSettings, errx.DescSettings)
	ErrUnmarshalSettingsFailed = newSentinelError("failed to unmarshal settings", errx.CodeSettings, errx.DescSettings)
)

// wrapLoadError converts a loader failure into a coded error. The section and
// key of a *codes.ParseError travel along as context.
func wrapLoadError(err error) error {
	base := ErrMalformedConfig
	if errors.Is(err, codes.ErrSourceAccess) {
		base = ErrReadSourceFailed
	}
	context := map[string]any{"component": "loader"}
	var perr *codes.ParseError
	if errors.As(err, &perr) {
		context["source"] = perr.Source
		context["section"] = perr.Section
		context["key"] = perr.Key
		context["kind"] = perr.Kind.String()
	}
	return wrapWithSentinelAndContext(base, err, err.Error(), context)
}

// logStructuredError logs an error with structured fields.
// Only logs when debug mode is enabled (via --debug flag).
//
// Fields extracted from errx.Error:
//   - error.code: "72000"
//   - error.category: "Malformed config error"
//   - error.context.section: "IO"
//   - error.context.key: "ReadFailed"
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var errxErr *errx.Error
	if !errors.As(err, &errxErr) {
		logger.Error(msg, zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("error.code", errxErr.Code()),
		zap.String("error.category", errxErr.Description()),
		zap.String("error.message", errxErr.Message()),
		zap.Error(err),
	}
	for key, value := range errxErr.Context() {
		fields = append(fields, zap.Any("error.context."+key, value))
	}
	if cause := errxErr.Cause(); cause != nil {
		fields = append(fields, zap.NamedError("error.cause", cause))
	}
	logger.Error(msg, fields...)
}

// fail records err in the debug log and returns it. The operator sees the
// error once, from whoever finally handles it.
func fail(logger *zap.Logger, err error, summary string) error {
	logStructuredError(logger, err, summary)
	return err
}

// reportError prints err with its code on the default printer's error stream.
func reportError(err error) {
	if code := errx.CodeOf(err); code != "" {
		Error(fmt.Sprintf("[%s] %s", code, errx.UserString(err)))
		return
	}
	Error(err.Error())
}
