package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
)

// loadConfig resolves the effective configuration for cmd, with cliCfg taking
// precedence over every other source. Warnings go to stderr, and the logger
// level follows the configured log_level unless --debug was given.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("get color flag: %w", err)
	}
	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	cliCfg.Color = config.ColorMode(colorMode)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		logger.SetLevel(logging.ParseLevel(result.Config.LogLevel))
	}
	if len(result.Warnings) > 0 {
		stderr := cmd.ErrOrStderr()
		styles := newStyles(result.Config, stderr)
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(stderr, styles.FormatWarning(warning))
		}
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	return result.Config, nil
}

// newStyles returns output styles for w honoring the configured color mode.
func newStyles(cfg *config.Config, w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, w))
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func commandLogger(cmd *cobra.Command) *log.Logger {
	return logging.FromContext(cmd.Context())
}
