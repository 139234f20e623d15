// Package cli implements the imgdeck command-line interface.
//
// # Command Structure
//
// The root command "imgdeck" opens the gallery shell. Subcommands manage
// the config file:
//
//	imgdeck                        - Open the gallery shell
//	imgdeck init                   - Create .imgdeck.yaml
//	imgdeck config set <key> <v>   - Change one key in place
//	imgdeck config show            - Print the effective config
//	imgdeck config path            - Print the config file in use
//	imgdeck version                - Print build information
//	imgdeck completion <shell>     - Generate completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. --theme on the root command
// overrides the configured theme for one session.
//
// # Logging
//
// The shell owns the terminal, so logs only go to a file: log.file from
// the config, or the XDG state directory when --verbose is given.
package cli
