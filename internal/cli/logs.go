package cli

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/imgdeck/internal/config"
	"github.com/rileyhilliard/imgdeck/internal/errors"
	"github.com/rileyhilliard/imgdeck/internal/logger"
)

// defaultLogFile is used by --verbose when no log.file is configured.
const defaultLogFile = "${XDG_STATE_HOME}/imgdeck/imgdeck.log"

// openLog opens the configured log file. The TUI owns the terminal, so
// nothing is logged without a file. verbose forces debug level and falls
// back to defaultLogFile.
func openLog(cfg config.LogConfig, verbose bool) (logger.Logger, func(), error) {
	path, level := cfg.File, cfg.Level
	if verbose {
		level = "debug"
		if path == "" {
			path = config.ExpandPath(defaultLogFile)
		}
	}
	if path == "" {
		return logger.Noop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create log directory for "+path,
			"Check permissions or set log.file to another location")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+path,
			"Check permissions or set log.file to another location")
	}

	log, err := logger.New(f, "[imgdeck]", level)
	if err != nil {
		f.Close()
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level: "+level,
			"Use one of debug, info, warn, error")
	}
	return log, func() { f.Close() }, nil
}
