// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FetchConfig holds settings for downloading structures from the RCSB PDB.
type FetchConfig struct {
	// StructuresDir is the base directory for structures (contains raw/).
	StructuresDir string `json:"structures_dir" yaml:"structures_dir"`

	// UserAgent is the User-Agent header sent with download requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// DownloadDelay is the delay between consecutive downloads.
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// Structure records where a downloaded structure came from.
type Structure struct {
	// ID is the four-character PDB identifier, lower-cased (e.g. "1hsg").
	ID string `json:"id" yaml:"id"`

	// SourceURL is the URL the file was downloaded from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Path is the local filesystem path of the PDB file.
	Path string `json:"path" yaml:"path"`

	// Size is the downloaded file's size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// FetchedAt is when the download completed.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
