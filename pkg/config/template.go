package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// keyDocs documents every configuration key by dotted path.
var keyDocs = map[string]string{
	"history":                          "Undo/redo history",
	"history.limit":                    "Maximum snapshots kept on each of the undo and redo stacks",
	"highlight":                        "Syntax highlighting",
	"highlight.checkpoint_interval":    "Lines between cached fence states",
	"highlight.detect_untagged_fences": "Guess the language of code fences that carry no tag",
	"highlight.language_aliases":       "Extra fence tags, e.g. {tf: toml}",
	"preview":                          "HTML preview",
	"preview.flavor":                   "Markdown flavor: commonmark or gfm",
	"log_level":                        "Log level: debug, info, warn or error",
}

// GenerateTemplate renders cfg as a commented configuration file. A nil cfg
// renders the defaults.
func GenerateTemplate(cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	var body yaml.Node
	if err := body.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	annotate(&body, "")

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: DefaultTemplateHeader(),
		Content:     []*yaml.Node{&body},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func annotate(node *yaml.Node, prefix string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		path := key.Value
		if prefix != "" {
			path = prefix + "." + path
		}
		if comment, ok := keyDocs[path]; ok {
			key.HeadComment = comment
		}
		annotate(value, path)
	}
}

// IsKnownKey reports whether path, a dotted key such as "history.limit",
// names a configuration setting.
func IsKnownKey(path string) bool {
	_, ok := keyDocs[path]
	return ok
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gomdedit configuration
# See: https://github.com/yaklabco/gomdedit`
}
