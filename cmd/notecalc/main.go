package main

import (
	"github.com/notecalc/notecalc/cmd/notecalc/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.Version = version
	cmd.BuildTime = buildTime
	cmd.Execute()
}
