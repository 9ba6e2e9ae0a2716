package main

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns the flags shared by the TUI and its subcommands.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:    "dataset",
			Aliases: []string{"d"},
			Usage:   "YAML dataset to browse instead of the built-in sample",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.BoolFlag{
			Name:  "no-mouse",
			Usage: "Disable mouse support",
		},
	}
}
