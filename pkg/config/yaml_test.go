package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, 100, cfg.History.Limit)
	assert.Equal(t, 64, cfg.Highlight.CheckpointInterval)
	assert.False(t, cfg.Highlight.DetectUntaggedFences)
	assert.Equal(t, config.FlavorCommonMark, cfg.Preview.Flavor)
	assert.Equal(t, config.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies alias map", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Highlight.LanguageAliases = map[string]string{"tf": "toml"}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Highlight.LanguageAliases["tf"] = "json"
		clone.History.Limit = 5
		assert.Equal(t, "toml", original.Highlight.LanguageAliases["tf"])
		assert.Equal(t, 100, original.History.Limit)
	})

	t.Run("keeps CLI-only fields", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Format = config.FormatJSON
		original.Color = config.ColorNever

		clone := original.Clone()
		assert.Equal(t, config.FormatJSON, clone.Format)
		assert.Equal(t, config.ColorNever, clone.Color)
	})
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("round trip keeps persisted fields", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.History.Limit = 7
		original.Highlight.DetectUntaggedFences = true
		original.Highlight.LanguageAliases = map[string]string{"mylang": "python"}
		original.Preview.Flavor = config.FlavorGFM
		original.Format = config.FormatJSON

		data, err := original.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "checkpoint_interval: 64")
		assert.NotContains(t, string(data), "format")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original.History, parsed.History)
		assert.Equal(t, original.Highlight, parsed.Highlight)
		assert.Equal(t, original.Preview, parsed.Preview)
		assert.Equal(t, original.LogLevel, parsed.LogLevel)
		assert.Empty(t, parsed.Format)
	})

	t.Run("header", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAMLWithHeader("# hello")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# hello\n\nhistory:"))
	})

	t.Run("no header", func(t *testing.T) {
		t.Parallel()
		plain, err := config.NewConfig().ToYAML()
		require.NoError(t, err)
		withEmpty, err := config.NewConfig().ToYAMLWithHeader("")
		require.NoError(t, err)
		assert.Equal(t, plain, withEmpty)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name:  "partial file leaves zero values",
			input: "history:\n  limit: 10\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 10, cfg.History.Limit)
				assert.Zero(t, cfg.Highlight.CheckpointInterval)
				assert.Empty(t, cfg.Preview.Flavor)
			},
		},
		{
			name:  "aliases",
			input: "highlight:\n  language_aliases:\n    tf: toml\n",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, map[string]string{"tf": "toml"}, cfg.Highlight.LanguageAliases)
			},
		},
		{
			name:    "malformed",
			input:   "history: [",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.FromYAML([]byte(testCase.input))
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			testCase.check(t, cfg)
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate(nil)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# gomdedit configuration"))
	assert.Contains(t, text, "Maximum snapshots kept")
	assert.Contains(t, text, "commonmark or gfm")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	defaults := config.NewConfig()
	assert.Equal(t, defaults.History, parsed.History)
	assert.Equal(t, defaults.Highlight, parsed.Highlight)
	assert.Equal(t, defaults.Preview, parsed.Preview)
	assert.Equal(t, defaults.LogLevel, parsed.LogLevel)
}

func TestEnumsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("markdown").IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestIsKnownKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"history", "history.limit", "highlight.language_aliases", "preview.flavor", "log_level"} {
		assert.True(t, config.IsKnownKey(key), key)
	}
	for _, key := range []string{"", "flavor", "history.size", "highlight.language_aliases.tf"} {
		assert.False(t, config.IsKnownKey(key), key)
	}
}
