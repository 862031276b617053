package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// env builds a LookupEnv over a fixed map.
func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// isolated returns options that only see files under dir.
func isolated(dir string, vars map[string]string) LoadOptions {
	if vars == nil {
		vars = map[string]string{}
	}
	if _, ok := vars["XDG_CONFIG_HOME"]; !ok {
		vars["XDG_CONFIG_HOME"] = filepath.Join(dir, "xdg")
	}
	return LoadOptions{WorkingDir: dir, LookupEnv: env(vars)}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(dir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.History.Limit != 100 {
		t.Errorf("history.limit = %d, want 100", result.Config.History.Limit)
	}
	if result.Config.Preview.Flavor != config.FlavorCommonMark {
		t.Errorf("flavor = %q, want %q", result.Config.Preview.Flavor, config.FlavorCommonMark)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want none", result.LoadedFrom)
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	userPath := writeConfig(t, dir, "xdg/gomdedit/config.yaml", `
history:
  limit: 10
highlight:
  detect_untagged_fences: true
  language_aliases:
    tf: toml
log_level: warn
`)
	projectPath := writeConfig(t, dir, ".gomdedit.yml", `
history:
  limit: 20
highlight:
  detect_untagged_fences: false
  language_aliases:
    pyi: python
preview:
  flavor: gfm
`)

	opts := isolated(dir, map[string]string{
		"GOMDEDIT_CHECKPOINT_INTERVAL": "8",
		"GOMDEDIT_LOG_LEVEL":           "error",
	})
	opts.CLIConfig = &config.Config{LogLevel: "debug", Format: config.FormatJSON}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := result.Config

	if got := strings.Join(result.LoadedFrom, ","); got != userPath+","+projectPath {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
	if cfg.History.Limit != 20 {
		t.Errorf("history.limit = %d, want project value 20", cfg.History.Limit)
	}
	if cfg.Highlight.DetectUntaggedFences {
		t.Error("project false should override user true")
	}
	if cfg.Highlight.LanguageAliases["tf"] != "toml" || cfg.Highlight.LanguageAliases["pyi"] != "python" {
		t.Errorf("aliases = %v, want both layers merged", cfg.Highlight.LanguageAliases)
	}
	if cfg.Highlight.CheckpointInterval != 8 {
		t.Errorf("checkpoint_interval = %d, want env value 8", cfg.Highlight.CheckpointInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want CLI value", cfg.LogLevel)
	}
	if cfg.Format != config.FormatJSON {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if cfg.Preview.Flavor != config.FlavorGFM {
		t.Errorf("flavor = %q, want gfm", cfg.Preview.Flavor)
	}
}

func TestLoad_ExplicitSkipsProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".gomdedit.yml", "history:\n  limit: 20\n")
	explicit := writeConfig(t, dir, "custom/settings.yml", "preview:\n  flavor: gfm\n")

	opts := isolated(dir, nil)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.History.Limit != 100 {
		t.Errorf("history.limit = %d, project config should be skipped", result.Config.History.Limit)
	}
	if result.Config.Preview.Flavor != config.FlavorGFM {
		t.Errorf("flavor = %q, want gfm", result.Config.Preview.Flavor)
	}
	if result.Paths.Explicit != explicit {
		t.Errorf("Paths.Explicit = %q", result.Paths.Explicit)
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, root, ".gomdedit.yaml", "log_level: debug\n")
	nested := filepath.Join(root, "docs", "guide")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("FindProjectConfig() = %q, want %q", got, want)
	}
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, outer, ".gomdedit.yml", "log_level: debug\n")
	repo := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != "" {
		t.Errorf("FindProjectConfig() = %q, want search to stop at the repository root", got)
	}
}

func TestLoad_UnknownKeysWarn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".gomdedit.yml", `history:
  limit: 5
  size: 9
flavor: gfm
highlight:
  language_aliases:
    anything: go
`)

	result, err := Load(context.Background(), isolated(dir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.History.Limit != 5 {
		t.Errorf("history.limit = %d, want 5", result.Config.History.Limit)
	}

	joined := strings.Join(result.Warnings, "\n")
	if !strings.Contains(joined, ".gomdedit.yml:3: history.size") {
		t.Errorf("missing warning for history.size in %q", joined)
	}
	if !strings.Contains(joined, ".gomdedit.yml:4: flavor") {
		t.Errorf("missing warning for flavor in %q", joined)
	}
	if strings.Contains(joined, "anything") {
		t.Errorf("alias keys must not be reported: %q", joined)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		vars    map[string]string
		field   string
	}{
		{name: "invalid flavor", content: "preview:\n  flavor: markdown\n", field: "preview.flavor"},
		{name: "zero history limit", content: "history:\n  limit: 0\n", field: "history.limit"},
		{name: "bad log level", content: "log_level: loud\n", field: "log_level"},
		{
			name:    "bad env integer",
			content: "",
			vars:    map[string]string{"GOMDEDIT_HISTORY_LIMIT": "lots"},
		},
		{name: "malformed yaml", content: "history: [\n"},
		{name: "not a mapping", content: "- a\n- b\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, ".gomdedit.yml", testCase.content)

			_, err := Load(context.Background(), isolated(dir, testCase.vars))
			if err == nil {
				t.Fatal("expected error")
			}

			if testCase.field == "" {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if verr.Field != testCase.field {
				t.Errorf("Field = %q, want %q", verr.Field, testCase.field)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	err := LoadFromEnv(cfg, env(map[string]string{
		"GOMDEDIT_HISTORY_LIMIT":          "7",
		"GOMDEDIT_DETECT_UNTAGGED_FENCES": "true",
		"GOMDEDIT_LANGUAGE_ALIASES":       " tf=toml , pyi = python,",
		"GOMDEDIT_FLAVOR":                 "gfm",
		"GOMDEDIT_LOG_LEVEL":              "",
	}))
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.History.Limit != 7 || !cfg.Highlight.DetectUntaggedFences || cfg.Preview.Flavor != config.FlavorGFM {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Highlight.LanguageAliases["tf"] != "toml" || cfg.Highlight.LanguageAliases["pyi"] != "python" {
		t.Errorf("aliases = %v", cfg.Highlight.LanguageAliases)
	}
	if cfg.LogLevel != config.LogLevelInfo {
		t.Errorf("empty variable should be ignored, log_level = %q", cfg.LogLevel)
	}

	for _, bad := range []map[string]string{
		{"GOMDEDIT_DETECT_UNTAGGED_FENCES": "maybe"},
		{"GOMDEDIT_LANGUAGE_ALIASES": "tf"},
		{"GOMDEDIT_CHECKPOINT_INTERVAL": "1.5"},
	} {
		if err := LoadFromEnv(config.NewConfig(), env(bad)); err == nil {
			t.Errorf("LoadFromEnv(%v) should fail", bad)
		}
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envBindings) {
		t.Fatalf("got %d variables, want %d", len(vars), len(envBindings))
	}
	for name := range vars {
		if !strings.HasPrefix(name, envVarPrefix) {
			t.Errorf("%s lacks the %s prefix", name, envVarPrefix)
		}
	}
}

func TestValidate_AliasWarnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Highlight.LanguageAliases = map[string]string{"tf": "toml", "x": "klingon"}

	result := Validate(cfg)
	if !result.Valid() {
		t.Fatalf("unexpected errors: %v", result.AllMessages())
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Field != "highlight.language_aliases.x" {
		t.Errorf("warnings = %v", result.AllMessages())
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Highlight.LanguageAliases = map[string]string{"a": "go"}

	merged := merge(base, &config.Config{
		Highlight: config.HighlightConfig{LanguageAliases: map[string]string{"b": "rust"}},
		Color:     config.ColorNever,
	})

	if merged.Color != config.ColorNever || merged.History.Limit != 100 {
		t.Errorf("merged = %+v", merged)
	}
	if len(merged.Highlight.LanguageAliases) != 2 {
		t.Errorf("aliases = %v", merged.Highlight.LanguageAliases)
	}
	if len(base.Highlight.LanguageAliases) != 1 {
		t.Error("merge must not modify base")
	}
}
