package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "Loading...", cfg.Loading.Text)
	assert.True(t, cfg.Loading.Mask)
	assert.True(t, cfg.Loading.Fullscreen)
	assert.Equal(t, "#1677ff", cfg.Loading.Color)
	assert.Equal(t, 9999, cfg.Loading.ZIndex)
	assert.Empty(t, cfg.Loading.Anchor)
	assert.Equal(t, 10*time.Millisecond, cfg.Loading.ShowDelay)
	assert.Equal(t, 200*time.Millisecond, cfg.Loading.Fade)
	assert.Equal(t, 3*time.Second, cfg.Toast.Duration)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
version: 1
theme: dark
loading:
  text: Fetching images
  mask: false
  color: "#ff5500"
  fullscreen: false
  anchor: bottom-right
  gap: 2
  fade: 150ms
toast:
  duration: 5s
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "Fetching images", cfg.Loading.Text)
	assert.False(t, cfg.Loading.Mask)
	assert.False(t, cfg.Loading.Fullscreen)
	assert.Equal(t, "#ff5500", cfg.Loading.Color)
	assert.Equal(t, "bottom-right", cfg.Loading.Anchor)
	assert.Equal(t, 2, cfg.Loading.Gap)
	assert.Equal(t, 150*time.Millisecond, cfg.Loading.Fade)
	assert.Equal(t, 5*time.Second, cfg.Toast.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults
	assert.Equal(t, 9999, cfg.Loading.ZIndex)
	assert.Equal(t, 10*time.Millisecond, cfg.Loading.ShowDelay)
	assert.Equal(t, loading.DefaultOffset, cfg.Loading.Offset)
	assert.Equal(t, 5, cfg.Toast.Limit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "loading:\n  text: from file\n")
	t.Setenv("IMGDECK_LOADING_TEXT", "from env")
	t.Setenv("IMGDECK_LOADING_MASK", "false")
	t.Setenv("IMGDECK_THEME", "light")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Loading.Text)
	assert.False(t, cfg.Loading.Mask)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "loading: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "loading:\n  fade: soon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid config format")
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := filepath.Join(home, "work", "project")
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(project, ".git"), 0755))

	t.Run("explicit", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "theme: dark\n")
		got, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, err := Find(filepath.Join(home, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Chdir(nested)
		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("global", func(t *testing.T) {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
		require.NoError(t, os.WriteFile(global, []byte("theme: light\n"), 0644))
		defer os.Remove(global)

		t.Chdir(nested)
		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, got)
	})

	t.Run("walks up to project root", func(t *testing.T) {
		want := writeConfig(t, project, "theme: dark\n")
		defer os.Remove(want)

		t.Chdir(nested)
		got, err := Find("")
		require.NoError(t, err)
		gotReal, _ := filepath.EvalSymlinks(got)
		wantReal, _ := filepath.EvalSymlinks(want)
		assert.Equal(t, wantReal, gotReal)
	})

	t.Run("stops at git root", func(t *testing.T) {
		above := writeConfig(t, filepath.Join(home, "work"), "theme: dark\n")
		defer os.Remove(above)

		t.Chdir(nested)
		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	t.Chdir(dir)
	t.Setenv("IMGDECK_LOADING_ANCHOR", "top-left")

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "top-left", cfg.Loading.Anchor, "env applies without a file")

	writeConfig(t, dir, "theme: dark\n")
	cfg, path, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_ExpandsLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, t.TempDir(), "log:\n  file: ~/imgdeck.log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "imgdeck.log"), cfg.Log.File)
}

func TestLoadingDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loading.Anchor = "bottom-center"
	cfg.Loading.Fullscreen = false
	cfg.Loading.Gap = 3
	cfg.Loading.Fade = time.Second

	lc, timings, layout, err := cfg.LoadingDefaults()
	require.NoError(t, err)

	assert.Equal(t, "Loading...", lc.Text)
	assert.Equal(t, loading.AnchorBottomCenter, lc.Anchor)
	assert.Equal(t, lipgloss.Color("#1677ff"), lc.Color)
	assert.False(t, lc.Fullscreen)
	assert.Nil(t, lc.Container)
	assert.Equal(t, time.Second, timings.Fade)
	assert.Equal(t, loading.DefaultShowDelay, timings.ShowDelay)
	assert.Equal(t, 3, layout.Gap)
	assert.Equal(t, loading.DefaultInset, layout.Inset)

	cfg.Loading.Anchor = "sideways"
	_, _, _, err = cfg.LoadingDefaults()
	assert.Error(t, err)
}
