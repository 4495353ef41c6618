package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"errcodegen/internal/cli"
	"errcodegen/pkg/errx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
	noColor = false
	quiet   = false
	config  = ""
)

func main() {
	logger, err := newConsoleLogger(debugRequested(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		if code := errx.CodeOf(err); code != "" {
			fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", code, errx.UserString(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "errcodegen",
	Short: "Error code header generator",
	Long: `errcodegen turns a human-edited INI file of error codes into a C++ header
of compile-time constants, so one definition drives every consumer:

  [IO]
  ReadFailed = 100, disk read failed
  WriteFailed = 101`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetDebugMode(debug)
		cli.SetSettingsPath(config)
		cli.ConfigureOutput(noColor)
		cli.SetQuiet(quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode with structured error logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
	rootCmd.PersistentFlags().StringVar(&config, "config", "", "Settings file (default "+cli.DefaultSettingsFile+" if present)")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewGenerateCmd(logger))
	rootCmd.AddCommand(cli.NewCheckCmd(logger))
	rootCmd.AddCommand(cli.NewModesCmd())
}

// debugRequested scans raw arguments for --debug so the logger level is known
// before cobra parses flags.
func debugRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--debug" || arg == "--debug=true" {
			return true
		}
	}
	return false
}

// newConsoleLogger returns a human-friendly console logger on stderr.
// Debug enables every level; otherwise only errors (structured error logs
// are themselves gated on --debug) are shown.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	// stdout may carry the generated header (--stdout).
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
