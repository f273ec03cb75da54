// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import "strings"

// Command is a fully resolved child-process invocation. It is an argument
// vector, not a shell string: nothing here is re-parsed by a shell, so paths
// with spaces need no quoting and nothing can be injected.
type Command struct {
	// Path is the program to run, either a bare name resolved on PATH
	// (obabel, conda, pdb2pqr30) or an absolute binary path from config.
	Path string

	// Args are the program arguments, exec-style (no argv[0]).
	Args []string

	// Env holds extra KEY=VALUE pairs appended to the inherited environment.
	Env []string

	// Dir, when set, is the child's working directory. The parent's working
	// directory is never touched.
	Dir string

	// StdoutPath, when set, redirects the child's standard output to this
	// file. Used by tools whose normal mode of operation is writing results
	// to stdout.
	StdoutPath string
}

// String renders the command for logs. Arguments with spaces are quoted and
// stdout redirection is shown shell-style; the rendering is informational
// only and is never executed.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args)+2)
	parts = append(parts, c.Path)
	for _, a := range c.Args {
		if strings.ContainsAny(a, " \t") {
			a = "'" + a + "'"
		}
		parts = append(parts, a)
	}
	if c.StdoutPath != "" {
		parts = append(parts, ">", c.StdoutPath)
	}
	return strings.Join(parts, " ")
}
