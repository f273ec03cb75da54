// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"path/filepath"
	"time"

	"github.com/pdiddy/dock-prep/internal/fsutil"
	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// keyMolProbityBin is the directory holding the reduce and probe binaries.
const keyMolProbityBin = "MOLPROBITY_BIN"

// molProbity runs reduce -FLIP to add hydrogens and flip Asn/Gln/His side
// chains. reduce writes the corrected structure to stdout, so the command
// redirects stdout to the output path; that is its normal mode of operation,
// not an error path.
type molProbity struct{}

func (m *molProbity) Name() types.Tool              { return types.ToolMolProbity }
func (m *molProbity) DefaultTimeout() time.Duration { return defaultTimeout }

// TolerateExitError: reduce exits non-zero whenever it flipped or adjusted
// anything, which is exactly the work it was asked to do. The exit code is
// therefore only trusted when no output was produced.
func (m *molProbity) TolerateExitError(outputExists bool) bool { return outputExists }

func (m *molProbity) Build(inputPath, outputPath string, _ float64, cfg toolcfg.Config) (*Command, error) {
	bin, err := cfg.Get(keyMolProbityBin, m.Name())
	if err != nil {
		return nil, err
	}

	reduce := filepath.Join(bin, "reduce")
	probe := filepath.Join(bin, "probe")
	if err := fsutil.CheckFile(reduce); err != nil {
		return nil, err
	}
	if err := fsutil.CheckFile(probe); err != nil {
		return nil, err
	}

	return &Command{
		Path:       reduce,
		Args:       []string{"-FLIP", inputPath},
		StdoutPath: outputPath,
	}, nil
}
