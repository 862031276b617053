package configloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// envVarPrefix is the prefix for all gomdedit environment variables.
const envVarPrefix = "GOMDEDIT_"

// envBinding maps one environment variable onto the configuration.
type envBinding struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = []envBinding{
	{
		suffix:      "HISTORY_LIMIT",
		description: "Maximum undo/redo snapshots per stack",
		apply: func(cfg *config.Config, value string) error {
			return setInt(&cfg.History.Limit, value)
		},
	},
	{
		suffix:      "CHECKPOINT_INTERVAL",
		description: "Lines between cached fence states",
		apply: func(cfg *config.Config, value string) error {
			return setInt(&cfg.Highlight.CheckpointInterval, value)
		},
	},
	{
		suffix:      "DETECT_UNTAGGED_FENCES",
		description: "Guess languages of untagged fences: true or false",
		apply: func(cfg *config.Config, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%q (expected true/false/1/0)", value)
			}
			cfg.Highlight.DetectUntaggedFences = b
			return nil
		},
	},
	{
		suffix:      "LANGUAGE_ALIASES",
		description: "Comma-separated tag=language pairs, e.g. tf=toml,pyi=python",
		apply: func(cfg *config.Config, value string) error {
			aliases, err := parseAliases(value)
			if err != nil {
				return err
			}
			if cfg.Highlight.LanguageAliases == nil {
				cfg.Highlight.LanguageAliases = make(map[string]string, len(aliases))
			}
			for tag, lang := range aliases {
				cfg.Highlight.LanguageAliases[tag] = lang
			}
			return nil
		},
	},
	{
		suffix:      "FLAVOR",
		description: "Markdown flavor for previews: commonmark or gfm",
		apply: func(cfg *config.Config, value string) error {
			cfg.Preview.Flavor = config.Flavor(value)
			return nil
		},
	},
	{
		suffix:      "LOG_LEVEL",
		description: "Log level: debug, info, warn or error",
		apply: func(cfg *config.Config, value string) error {
			cfg.LogLevel = value
			return nil
		},
	},
}

// LoadFromEnv applies GOMDEDIT_* overrides read through lookupEnv.
func LoadFromEnv(cfg *config.Config, lookupEnv func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, binding := range envBindings {
		name := envVarPrefix + binding.suffix
		value, ok := lookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if err := binding.apply(cfg, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}
	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envBindings))
	for _, binding := range envBindings {
		vars[envVarPrefix+binding.suffix] = binding.description
	}
	return vars
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q is not an integer", value)
	}
	*dst = n
	return nil
}

func parseAliases(value string) (map[string]string, error) {
	aliases := make(map[string]string)
	for pair := range strings.SplitSeq(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		tag, lang, ok := strings.Cut(pair, "=")
		tag, lang = strings.TrimSpace(tag), strings.TrimSpace(lang)
		if !ok || tag == "" || lang == "" {
			return nil, fmt.Errorf("alias %q is not tag=language", pair)
		}
		aliases[tag] = lang
	}
	return aliases, nil
}
