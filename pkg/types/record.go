// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus classifies a journaled invocation.
type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunLenient   RunStatus = "lenient"
	RunFailed    RunStatus = "failed"
	RunTimedOut  RunStatus = "timed_out"
)

// RunRecord is one row of the invocation journal.
type RunRecord struct {
	// ID is assigned by the journal store on insert.
	ID int64 `json:"id" yaml:"id"`

	// Tool is the external program that was invoked.
	Tool Tool `json:"tool" yaml:"tool"`

	// InputPath and OutputPath are the absolute paths of the conversion.
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Status is the final verdict for the invocation.
	Status RunStatus `json:"status" yaml:"status"`

	// ExitCode is the child's exit status, -1 when it never completed.
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// Duration is the child's wall-clock run time.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// OutputSize is the produced file's size in bytes, 0 when absent.
	OutputSize int64 `json:"output_size" yaml:"output_size"`

	// StartedAt is when the child was spawned.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}
