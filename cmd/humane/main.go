// Package main is the entry point for the humane CLI application.
package main

import (
	"github.com/wexinc/humane/cmd/humane/cmd"
)

// Version information - will be set by build flags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
