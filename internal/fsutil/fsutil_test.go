// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/dock-prep/pkg/types"
)

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "receptor.pdb")
	if err := os.WriteFile(present, []byte("ATOM\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckFile(present); err != nil {
		t.Fatalf("existing file: unexpected error %v", err)
	}

	err := CheckFile(filepath.Join(dir, "missing.pdb"))
	if err == nil {
		t.Fatal("missing file: expected error, got nil")
	}
	if !errors.Is(err, types.ErrInputFileNotFound) {
		t.Errorf("error kind = %v, want ErrInputFileNotFound", err)
	}
	// The diagnostic should list what actually is in the directory.
	if got := err.Error(); !containsAll(got, "missing.pdb", "receptor.pdb") {
		t.Errorf("diagnostic should name the missing file and list the directory, got:\n%s", got)
	}
}

func TestCheckFileEmptyDir(t *testing.T) {
	err := CheckFile(filepath.Join(t.TempDir(), "nothing.pqr"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, types.ErrInputFileNotFound) {
		t.Errorf("error kind = %v, want ErrInputFileNotFound", err)
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdbqt")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FileSize(path); got != 5 {
		t.Errorf("FileSize = %d, want 5", got)
	}
	if got := FileSize(filepath.Join(dir, "absent")); got != 0 {
		t.Errorf("FileSize of absent file = %d, want 0", got)
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"receptor.PDB", "pdb"},
		{"/abs/path/protein.pqr", "pqr"},
		{"ligand.mol2", "mol2"},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := Ext(tt.path); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
