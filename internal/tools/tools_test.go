// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

func TestForName(t *testing.T) {
	for _, name := range Names() {
		tool, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%s): unexpected error %v", name, err)
		}
		if tool.Name() != name {
			t.Errorf("ForName(%s).Name() = %s", name, tool.Name())
		}
	}

	_, err := ForName(types.Tool("AutoDock"))
	if err == nil {
		t.Fatal("expected error for unknown tool, got nil")
	}
	if !errors.Is(err, types.ErrUnsupportedTool) {
		t.Errorf("error kind = %v, want ErrUnsupportedTool", err)
	}
}

func TestDefaultTimeouts(t *testing.T) {
	tests := []struct {
		tool types.Tool
		want time.Duration
	}{
		{types.ToolMGLTools, 300 * time.Second},
		{types.ToolOpenBabel, 300 * time.Second},
		{types.ToolMolProbity, 300 * time.Second},
		{types.ToolPDB2PQR, 1800 * time.Second},
	}
	for _, tt := range tests {
		tool, err := ForName(tt.tool)
		if err != nil {
			t.Fatal(err)
		}
		if got := tool.DefaultTimeout(); got != tt.want {
			t.Errorf("%s default timeout = %v, want %v", tt.tool, got, tt.want)
		}
	}
}

func TestOpenBabelBuild(t *testing.T) {
	tool := &openBabel{}

	cmd, err := tool.Build("/work/in.pdb", "/work/out.pdb", types.DefaultPH, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantArgs := []string{"-ipdb", "/work/in.pdb", "-opdb", "-O", "/work/out.pdb"}
	if cmd.Path != "obabel" || !reflect.DeepEqual(cmd.Args, wantArgs) {
		t.Errorf("got %s %v, want obabel %v", cmd.Path, cmd.Args, wantArgs)
	}

	// cif maps to the mmcif reader.
	cmd, err = tool.Build("/work/in.cif", "/work/out.mol2", types.DefaultPH, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Args[0] != "-immcif" || cmd.Args[2] != "-omol2" {
		t.Errorf("cif/mol2 format codes wrong: %v", cmd.Args)
	}

	// Unrecognized extensions are an input-validation error, not a silent
	// pass-through.
	_, err = tool.Build("/work/in.docx", "/work/out.pdb", types.DefaultPH, nil)
	if !errors.Is(err, types.ErrUnrecognizedFormat) {
		t.Errorf("error kind = %v, want ErrUnrecognizedFormat", err)
	}
	_, err = tool.Build("/work/in.pdb", "/work/out.smi", types.DefaultPH, nil)
	if !errors.Is(err, types.ErrUnrecognizedFormat) {
		t.Errorf("error kind = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestPDB2PQRBuild(t *testing.T) {
	tool := &pdb2pqr{}

	cmd, err := tool.Build("/work/a.pdb", "/work/a.pqr", 6.5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"--ff", "AMBER",
		"--keep-chain",
		"--titration-state-method", "propka",
		"--with-ph", "6.5",
		"/work/a.pdb", "/work/a.pqr",
	}
	if cmd.Path != "pdb2pqr30" || !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("got %s %v, want pdb2pqr30 %v", cmd.Path, cmd.Args, want)
	}

	// Whole pH values render without a trailing .0, matching the CLI docs.
	cmd, _ = tool.Build("/work/a.pdb", "/work/a.pqr", 7, nil)
	if got := cmd.Args[6]; got != "7" {
		t.Errorf("pH 7 rendered as %q, want \"7\"", got)
	}
}

// mglFixture lays out a fake MGLTools install and returns its config.
func mglFixture(t *testing.T) toolcfg.Config {
	t.Helper()
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	packages := filepath.Join(root, "MGLToolsPckgs")
	scriptDir := filepath.Join(packages, "AutoDockTools", "Utilities24")
	for _, dir := range []string{bin, scriptDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{
		filepath.Join(bin, "pythonsh"),
		filepath.Join(scriptDir, "prepare_receptor4.py"),
	} {
		if err := os.WriteFile(f, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return toolcfg.Config{
		"mgl_bin":      bin,
		"mgl_packages": packages,
		"mgl_env_name": "mgltools",
	}
}

func TestMGLToolsBuild(t *testing.T) {
	cfg := mglFixture(t)
	tool := &mglTools{}

	t.Run("pdb input uses default hydrogen cleanup", func(t *testing.T) {
		cmd, err := tool.Build("/data/receptors/rec.pdb", "/data/receptors/rec.pdbqt", types.DefaultPH, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Path != "conda" {
			t.Errorf("path = %q, want conda", cmd.Path)
		}
		if cmd.Dir != "/data/receptors" {
			t.Errorf("dir = %q, want the input's directory", cmd.Dir)
		}
		joined := strings.Join(cmd.Args, " ")
		// Bare filenames: the script resolves paths against Command.Dir.
		if !strings.Contains(joined, "-r rec.pdb -o rec.pdbqt") {
			t.Errorf("expected bare filenames in args, got %q", joined)
		}
		if !strings.Contains(joined, "-A checkhydrogens") {
			t.Errorf("expected checkhydrogens flag, got %q", joined)
		}
		if strings.Contains(joined, "-C") || strings.Contains(joined, "nphs_lps") {
			t.Errorf("charge-preserving flags must not appear for pdb input: %q", joined)
		}
		if len(cmd.Env) != 1 || !strings.HasPrefix(cmd.Env[0], "PYTHONPATH=") {
			t.Errorf("expected PYTHONPATH in child env, got %v", cmd.Env)
		}
	})

	t.Run("pqr input preserves charges", func(t *testing.T) {
		cmd, err := tool.Build("/data/receptors/rec.pqr", "/data/receptors/rec.pdbqt", types.DefaultPH, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		joined := strings.Join(cmd.Args, " ")
		if !strings.Contains(joined, "-C -U nphs_lps") {
			t.Errorf("expected charge-preserving flag set for pqr input, got %q", joined)
		}
	})

	t.Run("missing config key", func(t *testing.T) {
		incomplete := toolcfg.Config{"mgl_bin": cfg["mgl_bin"]}
		_, err := tool.Build("/data/rec.pdb", "/data/rec.pdbqt", types.DefaultPH, incomplete)
		if !errors.Is(err, types.ErrMissingConfigKey) {
			t.Errorf("error kind = %v, want ErrMissingConfigKey", err)
		}
	})

	t.Run("missing pythonsh", func(t *testing.T) {
		broken := toolcfg.Config{
			"mgl_bin":      t.TempDir(),
			"mgl_packages": cfg["mgl_packages"],
			"mgl_env_name": "mgltools",
		}
		_, err := tool.Build("/data/rec.pdb", "/data/rec.pdbqt", types.DefaultPH, broken)
		if !errors.Is(err, types.ErrInputFileNotFound) {
			t.Errorf("error kind = %v, want ErrInputFileNotFound", err)
		}
	})
}

func TestMolProbityBuild(t *testing.T) {
	bin := t.TempDir()
	for _, f := range []string{"reduce", "probe"} {
		if err := os.WriteFile(filepath.Join(bin, f), []byte{}, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	cfg := toolcfg.Config{"molprobity_bin": bin}
	tool := &molProbity{}

	cmd, err := tool.Build("/work/in.pdb", "/work/flipped.pdb", types.DefaultPH, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Path != filepath.Join(bin, "reduce") {
		t.Errorf("path = %q, want the configured reduce binary", cmd.Path)
	}
	if !reflect.DeepEqual(cmd.Args, []string{"-FLIP", "/work/in.pdb"}) {
		t.Errorf("args = %v", cmd.Args)
	}
	if cmd.StdoutPath != "/work/flipped.pdb" {
		t.Errorf("stdout redirect = %q, want the output path", cmd.StdoutPath)
	}

	// Leniency is gated on the output file.
	if !tool.TolerateExitError(true) {
		t.Error("non-zero exit with output present should be tolerated")
	}
	if tool.TolerateExitError(false) {
		t.Error("non-zero exit without output must not be tolerated")
	}

	// probe must exist too, even though the command only runs reduce.
	if err := os.Remove(filepath.Join(bin, "probe")); err != nil {
		t.Fatal(err)
	}
	_, err = tool.Build("/work/in.pdb", "/work/flipped.pdb", types.DefaultPH, cfg)
	if !errors.Is(err, types.ErrInputFileNotFound) {
		t.Errorf("error kind = %v, want ErrInputFileNotFound", err)
	}
}

// Identical inputs must always yield an identical command.
func TestBuildDeterminism(t *testing.T) {
	cfg := mglFixture(t)
	for _, name := range Names() {
		tool, err := ForName(name)
		if err != nil {
			t.Fatal(err)
		}
		in, out := "/data/receptors/rec.pdb", "/data/receptors/rec.pdbqt"
		if name == types.ToolMolProbity {
			continue // exercised in TestMolProbityBuild with its own fixture
		}
		first, err := tool.Build(in, out, 6.5, cfg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		second, err := tool.Build(in, out, 6.5, cfg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: command construction is not deterministic:\n%v\n%v", name, first, second)
		}
	}
}

func TestCommandString(t *testing.T) {
	cmd := &Command{
		Path:       "/opt/molprobity/bin/reduce",
		Args:       []string{"-FLIP", "/work/my structures/in.pdb"},
		StdoutPath: "/work/out.pdb",
	}
	got := cmd.String()
	want := "/opt/molprobity/bin/reduce -FLIP '/work/my structures/in.pdb' > /work/out.pdb"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
