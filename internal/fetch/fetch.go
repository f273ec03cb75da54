// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads receptor structures from the RCSB PDB so a
// preparation run can start from a bare four-character identifier.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dock-prep/internal/httputil"
	"github.com/pdiddy/dock-prep/pkg/types"
)

const (
	rawDir      = "raw"
	metadataDir = "metadata"
)

// downloadBase is the RCSB file download endpoint. Tests point it at a local
// server.
var downloadBase = "https://files.rcsb.org/download"

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
	Structures []*types.Structure
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ValidID reports whether id is a well-formed PDB identifier: four
// characters, leading nonzero digit, alphanumeric.
func ValidID(id string) bool {
	if len(id) != 4 {
		return false
	}
	if id[0] < '1' || id[0] > '9' {
		return false
	}
	for _, c := range strings.ToLower(id)[1:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// FetchStructure downloads one PDB entry into cfg.StructuresDir/raw and
// writes a YAML metadata sidecar. An existing file is not re-downloaded;
// the skipped return value reports that case.
func FetchStructure(ctx context.Context, client *http.Client, id string, cfg types.FetchConfig, w io.Writer) (st *types.Structure, skipped bool, err error) {
	if !ValidID(id) {
		return nil, false, fmt.Errorf("invalid PDB identifier %q: want four characters with a leading nonzero digit", id)
	}
	id = strings.ToLower(id)

	pdbPath := filepath.Join(cfg.StructuresDir, rawDir, id+".pdb")
	metaPath := filepath.Join(cfg.StructuresDir, metadataDir, id+".yaml")
	url := fmt.Sprintf("%s/%s.pdb", downloadBase, strings.ToUpper(id))

	if _, err := os.Stat(pdbPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", id)
		s, readErr := readMetadata(metaPath)
		if readErr != nil {
			s = &types.Structure{ID: id, Path: pdbPath}
		}
		return s, true, nil
	}

	for _, dir := range []string{
		filepath.Join(cfg.StructuresDir, rawDir),
		filepath.Join(cfg.StructuresDir, metadataDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	fmt.Fprintf(w, "downloading: %s\n", id)
	size, err := downloadFile(ctx, client, url, pdbPath, cfg)
	if err != nil {
		return nil, false, fmt.Errorf("downloading %s: %w", id, err)
	}

	s := &types.Structure{
		ID:        id,
		SourceURL: url,
		Path:      pdbPath,
		Size:      size,
		FetchedAt: time.Now().UTC(),
	}
	if err := writeMetadata(s, metaPath); err != nil {
		return nil, false, fmt.Errorf("writing metadata for %s: %w", id, err)
	}
	return s, false, nil
}

// FetchBatch processes multiple identifiers, printing per-item status and
// returning a summary. It continues after individual failures and applies a
// delay between consecutive downloads.
func FetchBatch(ctx context.Context, client *http.Client, ids []string, cfg types.FetchConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, id := range ids {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		s, wasSkipped, err := FetchStructure(ctx, client, id, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
		result.Structures = append(result.Structures, s)
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// downloadFile fetches url to destPath via a temporary file so a partial
// download never lands at the final path. 429 responses are retried with
// backoff.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return 0, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	size, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming temp file: %w", err)
	}
	return size, nil
}

func writeMetadata(s *types.Structure, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func readMetadata(path string) (*types.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s types.Structure
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
