package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Parse fields.
	FieldBytes    = "bytes"
	FieldTokens   = "tokens"
	FieldNodes    = "nodes"
	FieldDepth    = "depth"
	FieldStatus   = "status"
	FieldDuration = "duration"
	FieldJobs     = "jobs"

	// Block engine trace fields.
	FieldKind        = "kind"
	FieldStart       = "start"
	FieldPosition    = "position"
	FieldConstraints = "constraints"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesOK         = "files_ok"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
