package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output. Flag
// variables are reset afterwards since cobra binds them globally.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile, themeFlag, verbose, noColor = "", "", false, false
		initForce, initNonInteractive, initTheme, initAnchor = false, false, "", ""
		versionShort = false
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// isolate runs the test in an empty project directory so no real config
// files are found.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CI", "true")
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	t.Chdir(dir)
	return dir
}

func TestInit_NonInteractive(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "init", "--theme", "dark", "--anchor", "top-right")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "top-right", cfg.Loading.Anchor)
	assert.Equal(t, config.DefaultConfig().Loading.Text, cfg.Loading.Text)
}

func TestInit_ExistingFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "init")
	require.NoError(t, err)

	_, err = execute(t, "init", "--theme", "light")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", "--theme", "light", "--force")
	require.NoError(t, err)
}

func TestInit_RejectsInvalidValues(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "init", "--theme", "sepia")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.NoFileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestMergeInitOptions(t *testing.T) {
	t.Setenv("IMGDECK_THEME", "light")
	t.Setenv("IMGDECK_LOADING_ANCHOR", "bottom-left")
	t.Setenv("CI", "")
	t.Setenv("IMGDECK_NON_INTERACTIVE", "true")

	t.Run("env fills unset fields", func(t *testing.T) {
		merged := mergeInitOptions(InitOptions{})
		assert.Equal(t, "light", merged.Theme)
		assert.Equal(t, "bottom-left", merged.Anchor)
		assert.True(t, merged.NonInteractive)
	})

	t.Run("flags override env", func(t *testing.T) {
		merged := mergeInitOptions(InitOptions{Theme: "dark", Anchor: "top-center"})
		assert.Equal(t, "dark", merged.Theme)
		assert.Equal(t, "top-center", merged.Anchor)
	})
}

func TestConfigSet(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "init")
	require.NoError(t, err)
	path := filepath.Join(dir, config.ConfigFileName)

	out, err := execute(t, "config", "set", "loading.text", "Working")
	require.NoError(t, err)
	assert.Contains(t, out, "loading.text = Working")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Working", cfg.Loading.Text)

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "loading.anchor", "middle")
	require.Error(t, err)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "invalid values leave the file alone")
}

func TestConfigPath(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "config", "path")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	_, err = execute(t, "init")
	require.NoError(t, err)
	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, config.ConfigFileName))
}

func TestConfigShow(t *testing.T) {
	isolate(t)
	t.Setenv("IMGDECK_LOADING_TEXT", "From env")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "no config file found")
	assert.Contains(t, out, "text: From env")
	assert.Contains(t, out, "fade: 200ms")
}

func TestRoot_InvalidThemeFlag(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--theme", "sepia")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	orig := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = orig })

	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUI))
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "bash", want: "# bash completion for imgdeck"},
		{shell: "zsh", want: "#compdef imgdeck"},
		{shell: "fish", want: "complete -c imgdeck"},
		{shell: "powershell", want: "imgdeck"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := execute(t, "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestOpenLog(t *testing.T) {
	t.Run("no file and quiet", func(t *testing.T) {
		log, closeLog, err := openLog(config.LogConfig{Level: "info"}, false)
		require.NoError(t, err)
		defer closeLog()
		assert.NotNil(t, log)
	})

	t.Run("configured file filters by level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "imgdeck.log")
		log, closeLog, err := openLog(config.LogConfig{Level: "warn", File: path}, false)
		require.NoError(t, err)
		log.Info("hidden")
		log.Warn("shown %d", 1)
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), "[imgdeck] shown 1")
	})

	t.Run("verbose falls back to the state dir", func(t *testing.T) {
		state := t.TempDir()
		t.Setenv("XDG_STATE_HOME", state)

		log, closeLog, err := openLog(config.LogConfig{Level: "error"}, true)
		require.NoError(t, err)
		log.Debug("debug line")
		closeLog()

		data, err := os.ReadFile(filepath.Join(state, "imgdeck", "imgdeck.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "debug line")
	})

	t.Run("bad level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "imgdeck.log")
		_, _, err := openLog(config.LogConfig{Level: "loud", File: path}, false)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
