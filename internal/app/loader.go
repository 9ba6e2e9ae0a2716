package app

import (
	"fmt"
	"path/filepath"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/config"
	"github.com/Kamisorara/ImageViewer/internal/log"
	"github.com/Kamisorara/ImageViewer/internal/tree"
	"github.com/Kamisorara/ImageViewer/internal/ui"
)

// LoadDataset returns the mapping to browse: the built-in sample when path
// is empty, the YAML dataset at path otherwise. The second result is the
// absolute dataset path, empty for the sample.
func LoadDataset(path string) (tree.Mapping, string, error) {
	if path == "" {
		return tree.Sample(), "", nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, "", err
	}
	mapping, err := tree.LoadFile(abs)
	if err != nil {
		return nil, "", fmt.Errorf("load dataset %s: %w", abs, err)
	}
	return mapping, abs, nil
}

// LoadInitialState prepares the UI state from the configuration.
func LoadInitialState(cfg *config.AppConfig) (ui.State, error) {
	mapping, datasetPath, err := LoadDataset(cfg.Dataset)
	if err != nil {
		return ui.State{}, err
	}

	problems := tree.Validate(mapping)
	for _, p := range problems {
		log.Printf("dataset: %s", p)
	}

	state := ui.State{
		Mapping:        mapping,
		Authenticator:  auth.New(cfg.Credentials(), cfg.Login.Delay),
		Spring:         cfg.Spring(),
		IndicatorWidth: cfg.Indicator.Width,
		Mouse:          cfg.Mouse,
	}
	if datasetPath != "" && cfg.WatchDataset {
		state.DatasetPath = datasetPath
	}
	if datasetPath != "" && len(problems) > 0 {
		state.Notice = fmt.Sprintf("数据集存在 %d 个问题，详见调试日志", len(problems))
	}
	return state, nil
}
