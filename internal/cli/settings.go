package cli

// This file loads generator settings from a YAML file and the environment.
// Precedence for every field: CLI flags > environment variables > settings file > defaults.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is read from the working directory when --config is not given.
const DefaultSettingsFile = ".errcodegen.yaml"

// DefaultOutput is the header path used when neither flags nor settings name one.
const DefaultOutput = "include/db_errors.hpp"

// Environment variables consulted by resolveSettings.
const (
	EnvNamespace = "ERRCODEGEN_NAMESPACE"
	EnvMode      = "ERRCODEGEN_MODE"
	EnvOutput    = "ERRCODEGEN_OUTPUT"
)

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// Settings mirrors the YAML settings file.
type Settings struct {
	Namespace   string `yaml:"namespace,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
	Output      string `yaml:"output,omitempty"`
	PragmaOnce  *bool  `yaml:"pragma_once,omitempty"`
	ClangFormat bool   `yaml:"clang_format,omitempty"`
}

var (
	settingsPath     string
	settingsExplicit bool
)

// SetSettingsPath selects the settings file. An empty path means the default
// file, which may be absent.
func SetSettingsPath(path string) {
	if path == "" {
		settingsPath, settingsExplicit = DefaultSettingsFile, false
		return
	}
	settingsPath, settingsExplicit = path, true
}

func init() {
	SetSettingsPath("")
}

// loadSettings reads the settings file. A missing default file yields empty
// settings; a missing explicit file is an error.
func loadSettings(path string, explicit bool) (*Settings, error) {
	// #nosec G304 -- path is the operator's settings file.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Settings{}, nil
		}
		return nil, wrapWithSentinelAndContext(ErrReadSettingsFailed, err,
			fmt.Sprintf("failed to read settings: %v", err),
			map[string]any{"settings": path})
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, wrapWithSentinelAndContext(ErrUnmarshalSettingsFailed, err,
			fmt.Sprintf("failed to unmarshal settings: %v", err),
			map[string]any{"settings": path})
	}
	return &s, nil
}

// applyEnv overlays environment variables on s.
func (s *Settings) applyEnv() {
	if v, ok := lookupEnv(EnvNamespace); ok && v != "" {
		s.Namespace = v
	}
	if v, ok := lookupEnv(EnvMode); ok && v != "" {
		s.Mode = v
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		s.Output = v
	}
}

// currentSettings loads the selected settings file and overlays the environment.
func currentSettings() (*Settings, error) {
	s, err := loadSettings(settingsPath, settingsExplicit)
	if err != nil {
		return nil, err
	}
	s.applyEnv()
	return s, nil
}
