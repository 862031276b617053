// Package cli provides the Cobra command structure for gomdedit.
package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

const rootLongDescription = `gomdedit is the command-line front end of a Markdown editing engine.

It highlights Markdown documents line by line, including fenced code blocks
in dozens of languages, renders HTML previews with CommonMark or GitHub
Flavored Markdown, and can watch a file to re-render it on every save.`

// environmentHelp lists the configuration environment variables.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var builder strings.Builder
	builder.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&builder, "\n  %-*s  %s", width, name, vars[name])
	}
	return builder.String()
}

// NewRootCommand creates the root gomdedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdedit",
		Short: "Markdown editing engine with syntax highlighting and HTML preview",
		Long:  rootLongDescription + "\n\n" + environmentHelp(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := config.LogLevelInfo
			if debug {
				level = config.LogLevelDebug
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(config.ColorMode(color), os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
