package ui

import (
	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/motion"
	"github.com/Kamisorara/ImageViewer/internal/tree"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Mapping        tree.Mapping
	Authenticator  *auth.Authenticator
	Spring         motion.Spring
	IndicatorWidth int
	Mouse          bool
	// DatasetPath is watched for changes when set.
	DatasetPath string
	// Notice is shown in the status line until replaced.
	Notice string
}
