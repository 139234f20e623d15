package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.Loading.Anchor = "top-right"
	cfg.Loading.Fade = 350 * time.Millisecond

	require.NoError(t, Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fade: 350ms")
	assert.Contains(t, string(data), "show_delay: 10ms")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_BadPath(t *testing.T) {
	err := Save(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "dir", "x.yaml"))
	assert.Error(t, err)
}

func TestSetValue_PreservesComments(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `# my settings
theme: dark # keep me dark
loading:
  text: Busy
`)

	require.NoError(t, SetValue(path, "loading.anchor", "bottom-left"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my settings")
	assert.Contains(t, string(data), "# keep me dark")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bottom-left", cfg.Loading.Anchor)
	assert.Equal(t, "Busy", cfg.Loading.Text)
}

func TestSetValue_ReplacesAndCreatesSections(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: dark\n")

	require.NoError(t, SetValue(path, "theme", "light"))
	require.NoError(t, SetValue(path, "toast.duration", "10s"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 10*time.Second, cfg.Toast.Duration)
}

func TestSetValue_EmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	require.NoError(t, SetValue(path, "theme", "light"))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestSetValue_RejectsInvalid(t *testing.T) {
	original := "theme: dark\n"
	path := writeConfig(t, t.TempDir(), original)

	err := SetValue(path, "loading.anchor", "middle")
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data), "file untouched on invalid value")
}

func TestSetValue_NotASection(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: dark\n")
	err := SetValue(path, "theme.color", "x")
	assert.Error(t, err)
}
