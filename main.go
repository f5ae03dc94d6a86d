package main

import (
	"context"
	"os"

	"github.com/s0up4200/reloop/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version, buildTime)
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
