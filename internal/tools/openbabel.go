// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"
	"time"

	"github.com/pdiddy/dock-prep/internal/fsutil"
	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// formatCodes maps file extensions to obabel format identifiers. Extensions
// outside this table are rejected before any process is spawned.
var formatCodes = map[string]string{
	"pdb":   "pdb",
	"pqr":   "pqr",
	"mol":   "mol",
	"mol2":  "mol2",
	"sdf":   "sdf",
	"xyz":   "xyz",
	"pdbqt": "pdbqt",
	"cif":   "mmcif",
}

// openBabel converts between structure formats with the obabel CLI. The
// binary is expected on PATH; it needs no configuration keys.
type openBabel struct{}

func (o *openBabel) Name() types.Tool              { return types.ToolOpenBabel }
func (o *openBabel) DefaultTimeout() time.Duration { return defaultTimeout }
func (o *openBabel) TolerateExitError(bool) bool   { return false }

func (o *openBabel) Build(inputPath, outputPath string, _ float64, _ toolcfg.Config) (*Command, error) {
	inFormat, err := FormatCode(inputPath)
	if err != nil {
		return nil, err
	}
	outFormat, err := FormatCode(outputPath)
	if err != nil {
		return nil, err
	}

	return &Command{
		Path: "obabel",
		Args: []string{"-i" + inFormat, inputPath, "-o" + outFormat, "-O", outputPath},
	}, nil
}

// FormatCode returns the obabel format identifier for path's extension,
// failing with ErrUnrecognizedFormat when the extension has no mapping.
func FormatCode(path string) (string, error) {
	ext := fsutil.Ext(path)
	code, ok := formatCodes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (from %s)", types.ErrUnrecognizedFormat, ext, path)
	}
	return code, nil
}
