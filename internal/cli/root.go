package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/imgdeck/internal/app"
	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/logger"
	"github.com/rileyhilliard/imgdeck/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags
var (
	cfgFile   string
	themeFlag string
	verbose   bool
	noColor   bool
)

// isInteractive reports whether stdin and stdout are both terminals.
// Replaced in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// rootCmd runs the gallery shell
var rootCmd = &cobra.Command{
	Use:   "imgdeck",
	Short: "Terminal gallery shell with loading overlays and toasts",
	Long: `imgdeck is a terminal client shell for an image library.

It shows a header, an album sidebar, and a thumbnail grid. Long-running
work is signalled with loading overlays: fullscreen, covering a single
pane, or stacked in a corner. Results appear as toasts.

Keyboard shortcuts:
  f           Refresh the library (fullscreen overlay)
  l           Load thumbnails (gallery overlay)
  b           Sync albums (sidebar overlay)
  u           Start an upload (stacked corner overlay)
  x / Esc     Cancel everything in progress
  d           Toggle light/dark theme
  ?           Show all shortcuts
  q / Ctrl+C  Quit

Examples:
  imgdeck
  imgdeck --theme light
  imgdeck --config ~/photos/.imgdeck.yaml --verbose`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCommand(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.ConfigFileName+" searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "override the theme: light, dark, or auto")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprint(os.Stderr, errors.Render(err))
		os.Exit(1)
	}
}

// shellCommand loads config, opens the log, and runs the shell until quit.
func shellCommand(ctx context.Context) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if !isInteractive() {
		return errors.New(errors.ErrUI,
			"imgdeck needs an interactive terminal",
			"Run it directly in a terminal rather than through a pipe or redirect")
	}

	log, closeLog, err := openLog(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetDefault(log)

	if path == "" {
		log.Info("no config file found, using defaults")
	} else {
		log.Info("loaded config from %s", path)
	}

	m, err := app.NewModel(app.Options{Config: cfg, Logger: log})
	if err != nil {
		return err
	}
	return app.Run(ctx, m)
}

// loadConfig finds and validates the config, applying flag overrides.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
