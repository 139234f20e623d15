// Command imgdeck is a terminal gallery shell with loading overlays.
package main

import (
	"runtime/debug"

	"github.com/rileyhilliard/imgdeck/internal/cli"
)

// Set via ldflags by release builds:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if version == "dev" {
		readBuildInfo()
	}
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}

// readBuildInfo fills the version from module data when installed with
// go install, which does not apply ldflags.
func readBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 7 {
				commit = s.Value[:7]
			} else {
				commit = s.Value
			}
		case "vcs.time":
			date = s.Value
		}
	}
}
