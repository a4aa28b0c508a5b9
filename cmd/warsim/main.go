package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a single game"`
	Simulate SimulateCmd      `cmd:"" help:"Run a batch of games and report statistics"`
	Batch    BatchCmd         `cmd:"" help:"Run every scenario in an HCL scenario file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warsim"),
		kong.Description("Simulator for the card game War with configurable war depth and an honor rule"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
