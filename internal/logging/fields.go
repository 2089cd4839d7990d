// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Configuration fields.
	FieldWidth       = "width"
	FieldWidthSource = "width_source"
	FieldMeasure     = "measure"
	FieldFlavor      = "flavor"
	FieldFormat      = "format"

	// Document statistics.
	FieldNodes        = "nodes"
	FieldUniqueNodes  = "unique_nodes"
	FieldDepth        = "depth"
	FieldAlternatives = "alternatives"
	FieldFallbacks    = "fallbacks"
	FieldLines        = "lines"
	FieldOverflows    = "overflows"
	FieldElapsed      = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
