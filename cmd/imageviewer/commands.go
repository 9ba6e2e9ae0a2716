package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/Kamisorara/ImageViewer/internal/app"
	"github.com/Kamisorara/ImageViewer/internal/config"
	"github.com/Kamisorara/ImageViewer/internal/log"
)

func treeCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "tree",
		Usage: "Print the dataset as a tree and report problems",
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with an error when the dataset has problems",
			},
		},
		Action: runTree,
	}
}

func runTree(_ context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	mapping, _, err := app.LoadDataset(cfg.Dataset)
	if err != nil {
		return err
	}
	return app.PrintTree(cmd.Root().Writer, mapping, cmd.Bool("strict"))
}

// loadCLIConfig loads the configuration and applies flag overrides. The
// debug log flag wins over the config file; without either, buffered debug
// output is discarded.
func loadCLIConfig(cmd *urfavecli.Command) (*config.AppConfig, error) {
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		setDebugLog(debugLog)
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if debugLog == "" {
		if cfg.DebugLog != "" {
			setDebugLog(cfg.DebugLog)
		} else {
			_ = log.SetFile("")
		}
	}

	if dataset := cmd.String("dataset"); dataset != "" {
		cfg.Dataset = dataset
	}
	if cmd.Bool("no-mouse") {
		cfg.Mouse = false
	}
	return cfg, nil
}

func setDebugLog(path string) {
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
