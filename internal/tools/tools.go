// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools builds child-process commands for the closed set of external
// molecular-modeling programs dock-prep orchestrates. Each program is one
// variant implementing the Tool interface; adding a program means adding a
// variant and registering it in ForName.
package tools

import (
	"fmt"
	"time"

	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

const (
	// defaultTimeout bounds most tool invocations.
	defaultTimeout = 300 * time.Second

	// pdb2pqrTimeout is longer because protonation-state assignment on large
	// structures routinely takes tens of minutes.
	pdb2pqrTimeout = 1800 * time.Second
)

// Tool is one external program: it knows how to turn a conversion request
// into a Command and how its exit status should be interpreted.
type Tool interface {
	// Name returns the tool identity.
	Name() types.Tool

	// DefaultTimeout is the wall-clock budget applied when the caller does
	// not override it.
	DefaultTimeout() time.Duration

	// Build produces the command for converting inputPath to outputPath.
	// Paths must already be absolute. pH is only read by tools that titrate.
	Build(inputPath, outputPath string, pH float64, cfg toolcfg.Config) (*Command, error)

	// TolerateExitError reports whether a non-zero exit should be downgraded
	// to success given whether the output file was produced.
	TolerateExitError(outputExists bool) bool
}

// ForName resolves a tool name to its variant, failing with
// ErrUnsupportedTool for anything outside the closed set.
func ForName(name types.Tool) (Tool, error) {
	switch name {
	case types.ToolMGLTools:
		return &mglTools{}, nil
	case types.ToolOpenBabel:
		return &openBabel{}, nil
	case types.ToolMolProbity:
		return &molProbity{}, nil
	case types.ToolPDB2PQR:
		return &pdb2pqr{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedTool, name)
	}
}

// Names lists the supported tools in display order.
func Names() []types.Tool {
	return []types.Tool{
		types.ToolMGLTools,
		types.ToolOpenBabel,
		types.ToolMolProbity,
		types.ToolPDB2PQR,
	}
}
