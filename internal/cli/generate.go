package cli

// This file implements the "generate" command: load the error code source,
// render the header and write it atomically.

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errcodegen/internal/codes"
	"errcodegen/internal/render"
)

// GenerateOptions is the fully resolved input of one generation run.
type GenerateOptions struct {
	Input       string
	Output      string
	Stdout      bool
	ClangFormat bool
	Render      render.Options
}

// GenerateManager runs the load, render and write pipeline with injected dependencies.
type GenerateManager struct {
	formatter *ClangFormatClient
	logger    *zap.Logger
	stdout    io.Writer
}

// NewGenerateManager creates a GenerateManager with the given dependencies.
func NewGenerateManager(formatter *ClangFormatClient, logger *zap.Logger) *GenerateManager {
	return &GenerateManager{
		formatter: formatter,
		logger:    logger,
		stdout:    os.Stdout,
	}
}

// DefaultGenerateManager returns a GenerateManager using default clients.
func DefaultGenerateManager(logger *zap.Logger) *GenerateManager {
	return NewGenerateManager(clangFormatClient, logger)
}

// NewGenerateCmd returns the generate subcommand.
func NewGenerateCmd(logger *zap.Logger) *cobra.Command {
	return NewGenerateCmdWithManager(DefaultGenerateManager(logger))
}

type generateFlags struct {
	input       string
	output      string
	namespace   string
	mode        string
	noPragma    bool
	stdout      bool
	clangFormat bool
	watch       bool
}

// NewGenerateCmdWithManager returns the generate subcommand using the provided manager.
func NewGenerateCmdWithManager(mgr *GenerateManager) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a C++ header from an error code INI file",
		Long: `Generate a C++ header declaring every error code in the INI source as a
compile-time constant inside a namespace.

Sections of the source are categories, keys are constant names and values
are "code[, message]". Every run regenerates the whole header.`,
		Example: `  errcodegen generate -i error_codes.ini
  errcodegen generate -i error_codes.ini -o include/db_errors.hpp --mode enum
  errcodegen generate -i error_codes.ini --stdout --mode nested`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := currentSettings()
			if err != nil {
				return fail(mgr.logger, err, "Failed to load settings")
			}
			opts, err := resolveGenerateOptions(settings, flags, cmd.Flags().Changed)
			if err != nil {
				return fail(mgr.logger, err, "Invalid arguments")
			}
			if flags.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return mgr.Watch(ctx, opts)
			}
			return mgr.Generate(opts)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input .ini file (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", DefaultOutput, "Output header file")
	cmd.Flags().StringVar(&flags.namespace, "namespace", render.DefaultNamespace, "Namespace wrapping the declarations")
	cmd.Flags().StringVar(&flags.mode, "mode", render.ModeConstants.String(), "Render mode: constants, enum or nested")
	cmd.Flags().BoolVar(&flags.noPragma, "no-pragma-once", false, "Omit the #pragma once line")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Print the header instead of writing it")
	cmd.Flags().BoolVar(&flags.clangFormat, "clang-format", false, "Pipe the header through clang-format before writing")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Regenerate whenever the input file changes")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// resolveGenerateOptions merges flags over settings. changed reports whether a
// flag was set on the command line.
func resolveGenerateOptions(s *Settings, f generateFlags, changed func(string) bool) (GenerateOptions, error) {
	if f.input == "" {
		return GenerateOptions{}, newWithSentinel(ErrInputRequired, "input file is required (use --input)")
	}
	if f.stdout && f.watch {
		return GenerateOptions{}, newWithSentinel(ErrConflictingFlags, "--stdout cannot be combined with --watch")
	}

	opts := GenerateOptions{
		Input:       f.input,
		Output:      DefaultOutput,
		Stdout:      f.stdout,
		ClangFormat: s.ClangFormat,
		Render:      render.DefaultOptions(),
	}
	if changed("clang-format") {
		opts.ClangFormat = f.clangFormat
	}

	pick := func(flagName, flagValue, setting string, target *string) {
		switch {
		case changed(flagName):
			*target = flagValue
		case setting != "":
			*target = setting
		}
	}
	pick("output", f.output, s.Output, &opts.Output)
	pick("namespace", f.namespace, s.Namespace, &opts.Render.Namespace)

	modeName := opts.Render.Mode.String()
	pick("mode", f.mode, s.Mode, &modeName)
	mode, err := render.ParseMode(modeName)
	if err != nil {
		return GenerateOptions{}, wrapWithSentinel(ErrInvalidMode, err, err.Error())
	}
	opts.Render.Mode = mode

	if !render.ValidNamespace(opts.Render.Namespace) {
		return GenerateOptions{}, wrapWithSentinelAndContext(ErrInvalidNamespace, nil,
			fmt.Sprintf("invalid namespace %q", opts.Render.Namespace),
			map[string]any{"namespace": opts.Render.Namespace})
	}

	switch {
	case changed("no-pragma-once"):
		opts.Render.PragmaOnce = !f.noPragma
	case s.PragmaOnce != nil:
		opts.Render.PragmaOnce = *s.PragmaOnce
	}
	return opts, nil
}

// Generate loads opts.Input, renders it and writes the result. Nothing is
// written unless loading, rendering and formatting all succeed.
func (m *GenerateManager) Generate(opts GenerateOptions) error {
	m.logger.Info("Loading error codes", zap.String("input", opts.Input))

	model, err := codes.Load(opts.Input)
	if err != nil {
		return fail(m.logger, wrapLoadError(err), "Failed to load error codes")
	}

	m.logger.Info("Rendering header",
		zap.Int("categories", model.Len()),
		zap.Int("entries", model.EntryCount()),
		zap.Stringer("mode", opts.Render.Mode),
	)
	if model.EntryCount() == 0 {
		Warn(fmt.Sprintf("%s declares no error codes", opts.Input))
	}
	text := render.Render(model, filepath.Base(opts.Input), opts.Render)

	if opts.ClangFormat {
		text, err = m.formatter.Format(text, opts.Output)
		if err != nil {
			return fail(m.logger, err, "Failed to format header")
		}
	}

	if opts.Stdout {
		if _, err := io.WriteString(m.stdout, text); err != nil {
			return fail(m.logger, wrapWithSentinel(ErrWriteOutputFailed, err,
				fmt.Sprintf("failed to write to stdout: %v", err)), "Failed to write header")
		}
		return nil
	}

	if err := writeOutput(m.logger, opts.Output, text); err != nil {
		return fail(m.logger, err, "Failed to write header")
	}

	m.logger.Info("Header generated", zap.String("output", opts.Output))
	Success(fmt.Sprintf("Generated: %s", opts.Output))
	return nil
}
