package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandHelp(t *testing.T) {
	logger, err := newConsoleLogger(false)
	if err != nil {
		t.Fatalf("newConsoleLogger() error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() error: %v", err)
	}

	help := out.String()
	if !strings.Contains(help, "errcodegen turns a human-edited INI file") {
		t.Fatalf("help output missing expected text:\n%s", help)
	}
	for _, name := range []string{"debug", "no-color", "config", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
	for _, sub := range []string{"generate", "check", "modes"} {
		if !strings.Contains(help, sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}

func TestDebugRequested(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: nil, want: false},
		{args: []string{"generate", "--debug", "-i", "x.ini"}, want: true},
		{args: []string{"--debug=true"}, want: true},
		{args: []string{"generate", "--", "--debug"}, want: false},
	}
	for _, tt := range tests {
		if got := debugRequested(tt.args); got != tt.want {
			t.Errorf("debugRequested(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
