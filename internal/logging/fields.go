package logging

// Keys used in structured log records.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Compile settings and diagnostics.
	FieldMinify       = "minify"
	FieldAltEnforcing = "alt_enforcing"
	FieldEscapeHTML   = "escape_html"
	FieldSourceKind   = "source_kind"
	FieldJobs         = "jobs"
	FieldKind         = "kind"
	FieldPosition     = "position"

	// Run statistics, named like the JSON report.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesCompiled   = "files_compiled"
	FieldFilesWritten    = "files_written"
	FieldFilesUnchanged  = "files_unchanged"
	FieldFilesErrored    = "files_errored"
	FieldDuration        = "duration"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
