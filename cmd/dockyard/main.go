package main

import (
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(cli.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	})
	cmd.Execute()
}
