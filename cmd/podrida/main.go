package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"Path to HCL configuration file (default podrida.hcl, or $PODRIDA_CONFIG)"`
	LogLevel string `short:"l" help:"Log level (debug|info|warn|error), overrides config"`
	NoColor  bool   `help:"Disable colors"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Keep score of a game at the table"`
	Schedule ScheduleCmd      `cmd:"" help:"Print the round schedule for a table"`
	Replay   ReplayCmd        `cmd:"" help:"Score recorded games from transcript files"`
	Draw     DrawCmd          `cmd:"" help:"Draw the first dealer at random"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("podrida"),
		kong.Description("Scorekeeper for podrida (Oh Hell) card games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
