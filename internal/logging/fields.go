package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldConfig = "config"

	// Document fields.
	FieldLines    = "lines"
	FieldChars    = "chars"
	FieldStart    = "start"
	FieldCount    = "count"
	FieldLanguage = "language"
	FieldFlavor   = "flavor"

	// Watch fields.
	FieldEvent = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
