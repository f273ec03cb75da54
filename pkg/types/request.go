// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultPH is the pH used for protonation-state assignment when the caller
// does not supply one.
const DefaultPH = 7.4

// Request describes one conversion: which tool to run and on what. All data
// is scoped to a single invocation; nothing persists between calls.
type Request struct {
	// Tool selects the external program.
	Tool Tool `json:"tool" yaml:"tool"`

	// InputPath is the structure file to convert. Relative paths are
	// absolutized before validation.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where the converted file must appear. Re-running with the
	// same output path overwrites.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// PH is the titration pH. Only PDB2PQR reads it.
	PH float64 `json:"ph" yaml:"ph"`

	// Timeout overrides the tool's default wall-clock budget when positive.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Verbose enables per-step status output.
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Result captures what happened to one child process. The authoritative
// success signal is the output file's presence, not the raw exit status.
type Result struct {
	// ExitCode is the child's exit status, or -1 when it never ran to
	// completion.
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// Stdout and Stderr hold the captured process output for diagnostics.
	Stdout string `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty" yaml:"stderr,omitempty"`

	// Duration is the child's wall-clock run time.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// OutputSize is the size in bytes of the produced output file.
	OutputSize int64 `json:"output_size" yaml:"output_size"`

	// Lenient reports that a non-zero exit was downgraded to success because
	// the tool tolerates it and the output file exists.
	Lenient bool `json:"lenient,omitempty" yaml:"lenient,omitempty"`
}
