package cli

import (
	"fmt"

	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Command-specific flags
var (
	initForce          bool
	initNonInteractive bool
	initTheme          string
	initAnchor         string
)

// initCmd creates a new .imgdeck.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .imgdeck.yaml configuration",
	Long: `Create an .imgdeck.yaml file in the current directory.

Asks for the theme, the default loading text, and where pane overlays
are placed. Everything else starts from the defaults.

Environment:
  IMGDECK_NON_INTERACTIVE=true or CI  skip the prompts

Examples:
  imgdeck init
  imgdeck init --theme dark --anchor bottom-right --non-interactive
  imgdeck init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), mergeInitOptions(InitOptions{
			Theme:          initTheme,
			Anchor:         initAnchor,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		}))
	},
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the configuration",
}

// configSetCmd updates a single key in place
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set one key in the config file, keeping comments and layout.

Keys use dots for sections.

Examples:
  imgdeck config set theme dark
  imgdeck config set loading.anchor top-right
  imgdeck config set toast.duration 5s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", ui.SymbolSuccess, args[0], args[1], path)
		return nil
	},
}

// configShowCmd prints the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and IMGDECK_* environment
overrides are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if path == "" {
			fmt.Fprintln(out, "# no config file found, showing defaults")
		} else {
			fmt.Fprintf(out, "# %s\n", path)
		}
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(cfg)
	},
}

// configPathCmd prints which config file would be used
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// configPath returns the config file the shell would load. It is an error
// when there is none.
func configPath() (string, error) {
	path, err := config.Find(cfgFile)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'imgdeck init' to create one")
	}
	return path, nil
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for imgdeck.

Examples:
  # Bash
  imgdeck completion bash > /etc/bash_completion.d/imgdeck

  # Zsh
  imgdeck completion zsh > "${fpath[1]}/_imgdeck"

  # Fish
  imgdeck completion fish > ~/.config/fish/completions/imgdeck.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrUI,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use defaults")
	initCmd.Flags().StringVar(&initTheme, "theme", "", "theme: light, dark, or auto")
	initCmd.Flags().StringVar(&initAnchor, "anchor", "", "pane overlay anchor, e.g. bottom-right")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
