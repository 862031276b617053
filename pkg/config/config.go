// Package config defines core configuration types for gomdedit.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

import (
	"github.com/yaklabco/gomdedit/pkg/highlight"
	"github.com/yaklabco/gomdedit/pkg/history"
)

// Flavor specifies the Markdown flavor used by the HTML preview.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// OutputFormat specifies how the CLI prints highlighted lines.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Log levels accepted by LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// HistoryConfig bounds the undo/redo stacks.
type HistoryConfig struct {
	// Limit is the maximum number of snapshots kept on each stack.
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// HighlightConfig tunes the highlighting engine.
type HighlightConfig struct {
	// CheckpointInterval is the number of lines between cached fence states.
	CheckpointInterval int `mapstructure:"checkpoint_interval" yaml:"checkpoint_interval"`

	// DetectUntaggedFences guesses the language of fences without a tag.
	DetectUntaggedFences bool `mapstructure:"detect_untagged_fences" yaml:"detect_untagged_fences"`

	// LanguageAliases maps extra fence tags to registered language names.
	LanguageAliases map[string]string `mapstructure:"language_aliases" yaml:"language_aliases,omitempty"`
}

// PreviewConfig controls HTML rendering.
type PreviewConfig struct {
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`
}

// Config is the root configuration structure for gomdedit.
type Config struct {
	History   HistoryConfig   `mapstructure:"history" yaml:"history"`
	Highlight HighlightConfig `mapstructure:"highlight" yaml:"highlight"`
	Preview   PreviewConfig   `mapstructure:"preview" yaml:"preview"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format of the highlight command.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Color controls colored output.
	Color ColorMode `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Limit: history.DefaultLimit,
		},
		Highlight: HighlightConfig{
			CheckpointInterval: highlight.DefaultCheckpointInterval,
		},
		Preview: PreviewConfig{
			Flavor: FlavorCommonMark,
		},
		LogLevel: LogLevelInfo,
		Format:   FormatText,
		Color:    ColorAuto,
	}
}
