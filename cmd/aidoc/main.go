// Command aidoc is the terminal client for the AI document platform.
package main

import (
	"os"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/cli"
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	app := &application{}
	cli.SetVersion(version)
	cli.SetBootstrap(app.bootstrap)
	cli.SetCleanup(app.close)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
