package main

import (
	"os"

	"github.com/llehouerou/paneflare/internal/cli"
)

// Set during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
