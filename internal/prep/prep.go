// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prep orchestrates a single conversion: validate the input, build
// the tool command, run it, and report a boolean verdict. Each call is
// independent; re-running with the same output path overwrites.
package prep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/dock-prep/internal/fsutil"
	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/internal/tools"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// Runner executes a built command. *execute.Executor is the production
// implementation.
type Runner interface {
	Run(ctx context.Context, tool tools.Tool, cmd *tools.Command, outputPath string, timeout time.Duration) (*types.Result, error)
}

// Journal records finished invocations. Recording is best-effort and never
// affects the verdict.
type Journal interface {
	Record(ctx context.Context, rec types.RunRecord) error
}

// Preparer runs conversion requests against a tool-paths configuration.
type Preparer struct {
	cfg     toolcfg.Config
	runner  Runner
	journal Journal
	out     io.Writer
}

// New creates a Preparer writing status lines to w.
func New(cfg toolcfg.Config, r Runner, w io.Writer) *Preparer {
	return &Preparer{cfg: cfg, runner: r, out: w}
}

// WithJournal attaches a run journal.
func (p *Preparer) WithJournal(j Journal) *Preparer {
	p.journal = j
	return p
}

// Run performs one conversion and reports whether the output file was
// produced. Validation failures surface before any process is spawned. A
// PQR input destined for MGLTools is first converted to PDB through
// OpenBabel, since prepare_receptor4.py cannot parse PQR directly; the
// temporary intermediate is removed after the call whatever the outcome.
func (p *Preparer) Run(ctx context.Context, req types.Request) (bool, error) {
	absInput, err := filepath.Abs(req.InputPath)
	if err != nil {
		return false, fmt.Errorf("resolving input path: %w", err)
	}
	absOutput, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return false, fmt.Errorf("resolving output path: %w", err)
	}
	if req.PH == 0 {
		req.PH = types.DefaultPH
	}

	if err := fsutil.CheckFile(absInput); err != nil {
		return false, fmt.Errorf("input: %w", err)
	}
	tool, err := tools.ForName(req.Tool)
	if err != nil {
		return false, err
	}

	// PQR structures carry charge columns prepare_receptor4.py chokes on;
	// route them through OpenBabel first and feed the PDB intermediate in.
	if req.Tool == types.ToolMGLTools && fsutil.Ext(absInput) == "pqr" {
		tempPath := absInput[:len(absInput)-len(filepath.Ext(absInput))] + "_temp.pdb"
		// A failed conversion can still leave a partial intermediate behind,
		// so removal is registered before the attempt, not after.
		defer func() {
			if _, statErr := os.Stat(tempPath); statErr != nil {
				return
			}
			if rmErr := os.Remove(tempPath); rmErr != nil {
				fmt.Fprintf(p.out, "warning: failed to remove temporary file %s: %v\n", tempPath, rmErr)
			} else if req.Verbose {
				fmt.Fprintf(p.out, "removed temporary file %s\n", tempPath)
			}
		}()
		if convErr := p.preconvert(ctx, absInput, tempPath, req.PH); convErr != nil {
			fmt.Fprintf(p.out, "warning: PQR to PDB conversion failed: %v\n", convErr)
			fmt.Fprintln(p.out, "attempting to proceed with the original PQR file")
		} else {
			absInput = tempPath
		}
	}

	cmd, err := tool.Build(absInput, absOutput, req.PH, p.cfg)
	if err != nil {
		return false, fmt.Errorf("%w for %s: %w", types.ErrCommandConstructionFailed, req.Tool, err)
	}
	if cmd == nil {
		return false, fmt.Errorf("%w for %s", types.ErrCommandConstructionFailed, req.Tool)
	}
	if req.Verbose {
		fmt.Fprintf(p.out, "command: %s\n", cmd)
	}

	started := time.Now()
	res, execErr := p.runner.Run(ctx, tool, cmd, absOutput, req.Timeout)
	p.record(ctx, req, absOutput, started, res, execErr)

	if execErr != nil {
		return false, execErr
	}
	return true, nil
}

// preconvert turns a PQR input into the PDB intermediate at tempPath via
// OpenBabel.
func (p *Preparer) preconvert(ctx context.Context, absInput, tempPath string, pH float64) error {
	fmt.Fprintln(p.out, "detected PQR input for MGLTools; converting to PDB first")

	conv, err := tools.ForName(types.ToolOpenBabel)
	if err != nil {
		return err
	}
	cmd, err := conv.Build(absInput, tempPath, pH, p.cfg)
	if err != nil {
		return err
	}
	if _, err := p.runner.Run(ctx, conv, cmd, tempPath, 0); err != nil {
		return err
	}
	return nil
}

func (p *Preparer) record(ctx context.Context, req types.Request, absOutput string, started time.Time, res *types.Result, execErr error) {
	if p.journal == nil {
		return
	}

	rec := types.RunRecord{
		Tool:       req.Tool,
		InputPath:  req.InputPath,
		OutputPath: absOutput,
		Status:     runStatus(res, execErr),
		ExitCode:   -1,
		StartedAt:  started,
	}
	if res != nil {
		rec.ExitCode = res.ExitCode
		rec.Duration = res.Duration
		rec.OutputSize = res.OutputSize
	}

	if err := p.journal.Record(ctx, rec); err != nil {
		fmt.Fprintf(p.out, "warning: could not record run in journal: %v\n", err)
	}
}

func runStatus(res *types.Result, execErr error) types.RunStatus {
	switch {
	case execErr == nil && res != nil && res.Lenient:
		return types.RunLenient
	case execErr == nil:
		return types.RunSucceeded
	case errors.Is(execErr, types.ErrProcessTimeout):
		return types.RunTimedOut
	default:
		return types.RunFailed
	}
}
