package configloader

import (
	"maps"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// merge lays override on top of base. Zero values in override leave base
// untouched, so it suits sparse sources such as CLI flags, where a false
// boolean means "not given". Alias maps are merged key by key.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	result := base.Clone()
	if override == nil {
		return result
	}

	if override.History.Limit != 0 {
		result.History.Limit = override.History.Limit
	}
	if override.Highlight.CheckpointInterval != 0 {
		result.Highlight.CheckpointInterval = override.Highlight.CheckpointInterval
	}
	if override.Highlight.DetectUntaggedFences {
		result.Highlight.DetectUntaggedFences = true
	}
	if len(override.Highlight.LanguageAliases) > 0 {
		if result.Highlight.LanguageAliases == nil {
			result.Highlight.LanguageAliases = make(map[string]string, len(override.Highlight.LanguageAliases))
		}
		maps.Copy(result.Highlight.LanguageAliases, override.Highlight.LanguageAliases)
	}
	if override.Preview.Flavor != "" {
		result.Preview.Flavor = override.Preview.Flavor
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return result
}
