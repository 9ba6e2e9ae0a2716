// Package main is the entry point for the imageviewer application.
package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/Kamisorara/ImageViewer/internal/app"
	"github.com/Kamisorara/ImageViewer/internal/log"
)

var version = "dev"

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "imageviewer",
		Usage:   "Browse a mock file tree in a two-tab terminal shell",
		Version: version,
		Flags:   globalFlags(),
		Action:  runTUI,
		Commands: []*urfavecli.Command{
			treeCommand(),
		},
	}
}

// runTUI is the default action that launches the TUI when no subcommand is given.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()
	return app.Run(ctx, cfg)
}
