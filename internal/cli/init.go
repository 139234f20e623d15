package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/rileyhilliard/imgdeck/internal/theme"
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write the config into (default ".")
	Theme          string // Pre-selected theme
	Anchor         string // Pre-selected overlay anchor
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// initDefaults reads init presets from the environment.
func initDefaults() InitOptions {
	nonInteractive := os.Getenv("IMGDECK_NON_INTERACTIVE") == "true" || os.Getenv("CI") != ""
	return InitOptions{
		Theme:          os.Getenv("IMGDECK_THEME"),
		Anchor:         os.Getenv("IMGDECK_LOADING_ANCHOR"),
		NonInteractive: nonInteractive || !isInteractive(),
	}
}

// mergeInitOptions fills unset fields of opts from the environment.
// Flags win over environment values.
func mergeInitOptions(opts InitOptions) InitOptions {
	env := initDefaults()
	if opts.Theme == "" {
		opts.Theme = env.Theme
	}
	if opts.Anchor == "" {
		opts.Anchor = env.Anchor
	}
	if env.NonInteractive {
		opts.NonInteractive = true
	}
	return opts
}

// Init creates a new .imgdeck.yaml configuration file.
func Init(out io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	cfg.Loading.Anchor = opts.Anchor

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  imgdeck                          - Open the gallery")
	fmt.Fprintln(out, "  imgdeck config set <key> <value> - Change a setting")
	return nil
}

// promptConfig asks for the common settings and writes them into cfg.
func promptConfig(cfg *config.Config) error {
	themeOptions := make([]huh.Option[string], 0, len(theme.Modes))
	for _, mode := range theme.Modes {
		themeOptions = append(themeOptions, huh.NewOption(string(mode), string(mode)))
	}
	anchorOptions := []huh.Option[string]{huh.NewOption("cover the pane", "")}
	for _, anchor := range loading.Anchors {
		anchorOptions = append(anchorOptions, huh.NewOption(string(anchor), string(anchor)))
	}
	toastDuration := cfg.Toast.Duration.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("auto follows the terminal background").
				Options(themeOptions...).
				Value(&cfg.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Loading text").
				Description("Shown under the spinner when no text is given").
				Value(&cfg.Loading.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("loading text is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Dim the area behind overlays?").
				Value(&cfg.Loading.Mask),
			huh.NewSelect[string]().
				Title("Pane overlay position").
				Description("Anchored overlays stack in a corner instead of covering the pane").
				Options(anchorOptions...).
				Value(&cfg.Loading.Anchor),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Toast duration").
				Description("How long notifications stay up (0 keeps them)").
				Value(&toastDuration).
				Validate(func(s string) error {
					_, err := time.ParseDuration(strings.TrimSpace(s))
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	d, err := time.ParseDuration(strings.TrimSpace(toastDuration))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid duration", toastDuration),
			"Try something like 3s or 500ms")
	}
	cfg.Toast.Duration = d
	return nil
}
