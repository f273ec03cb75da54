// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds surfaced by the preparation pipeline. Callers match them with
// errors.Is; every wrapping site adds path/tool context via fmt.Errorf.
var (
	// ErrConfigNotFound: the tool-paths configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigMalformed: the configuration file exists but cannot be parsed.
	ErrConfigMalformed = errors.New("configuration file malformed")

	// ErrMissingConfigKey: a key required by the selected tool is absent.
	ErrMissingConfigKey = errors.New("missing configuration key")

	// ErrInputFileNotFound: an input or tool-binary path does not exist.
	ErrInputFileNotFound = errors.New("file not found")

	// ErrUnsupportedTool: the tool name is outside the closed set.
	ErrUnsupportedTool = errors.New("unsupported tool")

	// ErrUnrecognizedFormat: a file extension has no converter format code.
	ErrUnrecognizedFormat = errors.New("unrecognized file format")

	// ErrCommandConstructionFailed: no command could be built for the request.
	ErrCommandConstructionFailed = errors.New("command construction failed")

	// ErrProcessExecutionFailed: the child exited non-zero with no leniency.
	ErrProcessExecutionFailed = errors.New("process execution failed")

	// ErrProcessTimeout: the child exceeded its wall-clock budget. Always fatal.
	ErrProcessTimeout = errors.New("process timed out")

	// ErrOutputFileNotProduced: the child exited cleanly but the expected
	// output file is absent.
	ErrOutputFileNotProduced = errors.New("output file not produced")
)
