package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/codelang"
	"github.com/yaklabco/gomdedit/pkg/config"
)

// languageInfo represents a language in JSON output.
type languageInfo struct {
	Name       string   `json:"name"`
	Aliases    []string `json:"aliases"`
	Structural bool     `json:"structural"`
}

// languagesOutput is the JSON document printed by the languages command.
type languagesOutput struct {
	Languages []languageInfo    `json:"languages"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

func newLanguagesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages recognized in code fences",
		Long: `List every language the highlighter recognizes in fenced code blocks,
with the fence tags accepted for each. Aliases from the configuration file
are listed after the built-in table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &config.Config{Format: config.OutputFormat(format)})
			if err != nil {
				return err
			}
			return writeLanguages(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatText), "output format: text, json")

	return cmd
}

func writeLanguages(out io.Writer, cfg *config.Config) error {
	registry := codelang.NewRegistry()
	langs := registry.Languages()
	overrides := cfg.Highlight.LanguageAliases

	if cfg.Format == config.FormatJSON {
		infos := make([]languageInfo, 0, len(langs))
		for _, lang := range langs {
			aliases := lang.Aliases
			if aliases == nil {
				aliases = []string{}
			}
			infos = append(infos, languageInfo{Name: lang.Name, Aliases: aliases, Structural: lang.Structural})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(languagesOutput{Languages: infos, Overrides: overrides}); err != nil {
			return fmt.Errorf("encoding languages: %w", err)
		}
		return nil
	}

	styles := newStyles(cfg, out)
	table := pretty.NewTableFormatter(styles, terminalWidth(out)).FormatLanguages(langs)
	if _, err := io.WriteString(out, table); err != nil {
		return fmt.Errorf("write languages: %w", err)
	}

	if len(overrides) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out, "\n"+styles.Header.Render("Configured aliases")); err != nil {
		return fmt.Errorf("write languages: %w", err)
	}
	for _, tag := range slices.Sorted(maps.Keys(overrides)) {
		if _, err := fmt.Fprintf(out, "  %s -> %s\n", styles.Bold.Render(tag), overrides[tag]); err != nil {
			return fmt.Errorf("write languages: %w", err)
		}
	}
	return nil
}
