// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"path/filepath"
	"time"

	"github.com/pdiddy/dock-prep/internal/fsutil"
	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// Config keys required by MGLTools.
const (
	keyMGLBin      = "MGL_BIN"      // directory containing pythonsh
	keyMGLPackages = "MGL_PACKAGES" // MGLToolsPckgs root (holds AutoDockTools)
	keyMGLEnvName  = "MGL_ENV_NAME" // conda environment to run under
)

// mglTools invokes prepare_receptor4.py through the MGLTools pythonsh
// interpreter under a named conda environment.
//
// prepare_receptor4.py resolves its -r and -o arguments relative to the
// process working directory, so the command carries bare filenames and sets
// Command.Dir to the input's directory instead of mutating the parent's
// working directory.
type mglTools struct{}

func (m *mglTools) Name() types.Tool              { return types.ToolMGLTools }
func (m *mglTools) DefaultTimeout() time.Duration { return defaultTimeout }

// TolerateExitError: prepare_receptor4.py exit codes are reliable, so a
// non-zero exit is always an error.
func (m *mglTools) TolerateExitError(bool) bool { return false }

func (m *mglTools) Build(inputPath, outputPath string, _ float64, cfg toolcfg.Config) (*Command, error) {
	bin, err := cfg.Get(keyMGLBin, m.Name())
	if err != nil {
		return nil, err
	}
	packages, err := cfg.Get(keyMGLPackages, m.Name())
	if err != nil {
		return nil, err
	}
	envName, err := cfg.Get(keyMGLEnvName, m.Name())
	if err != nil {
		return nil, err
	}

	pythonsh := filepath.Join(bin, "pythonsh")
	script := filepath.Join(packages, "AutoDockTools", "Utilities24", "prepare_receptor4.py")
	if err := fsutil.CheckFile(pythonsh); err != nil {
		return nil, err
	}
	if err := fsutil.CheckFile(script); err != nil {
		return nil, err
	}

	args := []string{
		"run", "-n", envName, "--no-capture-output",
		pythonsh, script,
		"-r", filepath.Base(inputPath),
		"-o", filepath.Base(outputPath),
		// checkhydrogens: add hydrogens only when the structure has none.
		"-A", "checkhydrogens",
	}
	if fsutil.Ext(inputPath) == "pqr" {
		// A PQR input already carries charges: -C preserves them instead of
		// recomputing Gasteiger charges, and -U nphs_lps limits cleanup to
		// merging non-polar hydrogens and lone pairs. The default cleanup
		// (nphs_lps_waters_nonstdres) would also strip waters and
		// non-standard residues.
		args = append(args, "-C", "-U", "nphs_lps")
	}

	return &Command{
		Path: "conda",
		Args: args,
		Env:  []string{"PYTHONPATH=" + packages},
		Dir:  filepath.Dir(inputPath),
	}, nil
}
