// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Tool identifies one of the external programs dock-prep can invoke.
// The set is closed; anything else is rejected before a process is spawned.
type Tool string

const (
	// ToolMGLTools runs prepare_receptor4.py to produce a docking-ready
	// PDBQT receptor.
	ToolMGLTools Tool = "MGLTools"

	// ToolOpenBabel converts between structure file formats.
	ToolOpenBabel Tool = "OpenBabel"

	// ToolMolProbity runs reduce -FLIP to place and flip hydrogens.
	ToolMolProbity Tool = "MolProbity"

	// ToolPDB2PQR assigns protonation states at a given pH.
	ToolPDB2PQR Tool = "PDB2PQR"
)

// String returns the tool name as used on the command line and in config.
func (t Tool) String() string { return string(t) }
