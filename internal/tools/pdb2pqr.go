// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"strconv"
	"time"

	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// pdb2pqr assigns protonation states at the requested pH using the AMBER
// force field and PROPKA titration. The pdb2pqr30 binary is expected on PATH.
type pdb2pqr struct{}

func (p *pdb2pqr) Name() types.Tool              { return types.ToolPDB2PQR }
func (p *pdb2pqr) DefaultTimeout() time.Duration { return pdb2pqrTimeout }
func (p *pdb2pqr) TolerateExitError(bool) bool   { return false }

func (p *pdb2pqr) Build(inputPath, outputPath string, pH float64, _ toolcfg.Config) (*Command, error) {
	return &Command{
		Path: "pdb2pqr30",
		Args: []string{
			"--ff", "AMBER",
			"--keep-chain",
			"--titration-state-method", "propka",
			"--with-ph", strconv.FormatFloat(pH, 'g', -1, 64),
			inputPath,
			outputPath,
		},
	}, nil
}
