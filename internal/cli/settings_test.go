package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errcodegen/pkg/errx"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing default file", func(t *testing.T) {
		s, err := loadSettings(filepath.Join(t.TempDir(), DefaultSettingsFile), false)
		require.NoError(t, err)
		assert.Equal(t, &Settings{}, s)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadSettings(filepath.Join(t.TempDir(), "nope.yaml"), true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadSettingsFailed)
		assert.Equal(t, errx.CodeSettings, errx.CodeOf(err))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		s, err := loadSettings(path, true)
		require.NoError(t, err)
		assert.Equal(t, &Settings{}, s)
	})

	t.Run("all fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.yaml")
		content := "namespace: app::errors\nmode: enum\noutput: gen/e.hpp\npragma_once: false\nclang_format: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		s, err := loadSettings(path, true)
		require.NoError(t, err)
		assert.Equal(t, "app::errors", s.Namespace)
		assert.Equal(t, "enum", s.Mode)
		assert.Equal(t, "gen/e.hpp", s.Output)
		require.NotNil(t, s.PragmaOnce)
		assert.False(t, *s.PragmaOnce)
		assert.True(t, s.ClangFormat)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.yaml")
		require.NoError(t, os.WriteFile(path, []byte("namespce: typo\n"), 0o600))

		_, err := loadSettings(path, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnmarshalSettingsFailed)
	})
}

func TestSettings_ApplyEnv(t *testing.T) {
	isolateEnv(t, map[string]string{
		EnvNamespace: "env_ns",
		EnvMode:      "",
		EnvOutput:    "env/out.hpp",
	})

	s := &Settings{Namespace: "file_ns", Mode: "enum", Output: "file.hpp"}
	s.applyEnv()

	assert.Equal(t, "env_ns", s.Namespace)
	assert.Equal(t, "enum", s.Mode, "empty env values are ignored")
	assert.Equal(t, "env/out.hpp", s.Output)
}

func TestSetSettingsPath(t *testing.T) {
	t.Cleanup(func() { SetSettingsPath("") })

	SetSettingsPath("custom.yaml")
	assert.Equal(t, "custom.yaml", settingsPath)
	assert.True(t, settingsExplicit)

	SetSettingsPath("")
	assert.Equal(t, DefaultSettingsFile, settingsPath)
	assert.False(t, settingsExplicit)
}
