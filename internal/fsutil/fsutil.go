// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil provides the filesystem checks shared by input validation
// and tool-binary resolution.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/dock-prep/pkg/types"
)

// CheckFile confirms that path exists. On absence it returns
// ErrInputFileNotFound wrapped with a listing of the containing directory,
// which is usually enough to spot a misconfigured install prefix.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	listing := dirListing(dir)
	if listing == "" {
		return fmt.Errorf("%w: %s (directory %s is missing or empty)", types.ErrInputFileNotFound, path, dir)
	}
	return fmt.Errorf("%w: %s\ncontents of %s:\n%s", types.ErrInputFileNotFound, path, dir, listing)
}

// FileSize returns the size of path in bytes, or 0 when it does not exist.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Ext returns the lower-cased file extension without the leading dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func dirListing(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "  - %s\n", e.Name())
	}
	return strings.TrimRight(b.String(), "\n")
}
