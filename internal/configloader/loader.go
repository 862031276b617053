// Package configloader resolves the effective gomdedit configuration from
// defaults, the user config, the project config, an explicit file, the
// environment and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOMDEDIT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdedit.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdedit/config.yaml)
//  6. Defaults
//
// Files are decoded over the running configuration, so a key present in a
// file always wins over lower layers, including an explicit false.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir, lookupEnv)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		warnings, err := applyFile(cfg, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		result.Warnings = append(result.Warnings, warnings...)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg, lookupEnv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.CLIConfig)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// applyFile decodes the YAML file at path over cfg and returns warnings for
// keys gomdedit does not know.
func applyFile(cfg *config.Config, path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ValidationError{
			FilePath: path,
			Line:     root.Line,
			Message:  "configuration must be a mapping",
		}
	}

	var warnings []string
	for _, key := range unknownKeys(root, "") {
		warnings = append(warnings, (&ValidationError{
			FilePath: path,
			Line:     key.Line,
			Field:    key.Value,
			Message:  "unknown key; it will be ignored",
		}).Error())
	}

	if err := root.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return warnings, nil
}

// unknownKeys returns the key nodes of mapping whose dotted path is not a
// configuration setting. Each returned node's Value holds the full path.
func unknownKeys(mapping *yaml.Node, prefix string) []*yaml.Node {
	var unknown []*yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		path := key.Value
		if prefix != "" {
			path = prefix + "." + path
		}

		if !config.IsKnownKey(path) {
			unknown = append(unknown, &yaml.Node{Value: path, Line: key.Line})
			continue
		}
		// Alias maps hold user-chosen keys.
		if value.Kind == yaml.MappingNode && !slices.Contains(freeFormKeys, path) {
			unknown = append(unknown, unknownKeys(value, path)...)
		}
	}
	return unknown
}

//nolint:gochecknoglobals // Read-only lookup table.
var freeFormKeys = []string{"highlight.language_aliases"}
