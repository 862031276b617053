package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/codelang"
	"github.com/yaklabco/gomdedit/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the dotted path to the invalid field (e.g., "history.limit").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	config.LogLevelDebug: true,
	config.LogLevelInfo:  true,
	config.LogLevelWarn:  true,
	config.LogLevelError: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	fail := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.History.Limit < 1 {
		fail("history.limit", cfg.History.Limit, "must be at least 1")
	}
	if cfg.Highlight.CheckpointInterval < 1 {
		fail("highlight.checkpoint_interval", cfg.Highlight.CheckpointInterval, "must be at least 1")
	}
	if !cfg.Preview.Flavor.IsValid() {
		fail("preview.flavor", cfg.Preview.Flavor,
			"invalid flavor %q; must be one of: commonmark, gfm", cfg.Preview.Flavor)
	}
	if !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		fail("log_level", cfg.LogLevel,
			"invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		fail("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
	}
	if cfg.Color != "" && !cfg.Color.IsValid() {
		fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	validateAliases(cfg, result)

	return result
}

// validateAliases warns about aliases whose target no built-in language
// answers to. Such fences fall back to plain code styling.
func validateAliases(cfg *config.Config, result *ValidationResult) {
	if len(cfg.Highlight.LanguageAliases) == 0 {
		return
	}

	builtin := codelang.NewRegistry()
	for tag, target := range cfg.Highlight.LanguageAliases {
		if _, ok := builtin.Resolve(target); ok {
			continue
		}
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "highlight.language_aliases." + tag,
			Value:   target,
			Message: fmt.Sprintf("unknown language %q; %q fences will use plain code styling", target, tag),
		})
	}
}
