package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/highlight"
	"github.com/yaklabco/gomdedit/pkg/session"
)

type highlightFlags struct {
	start    int
	count    int
	format   string
	width    int
	watch    bool
	noGutter bool
	detect   bool
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a Markdown file with syntax highlighting",
		Long:  highlightLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.start, "start", 1, "first line to print (1-based)")
	cmd.Flags().IntVar(&flags.count, "count", 0, "number of lines to print (0 = to the end)")
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json")
	cmd.Flags().IntVar(&flags.width, "width", 0, "truncate lines to this many columns (default: terminal width)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render whenever the file changes")
	cmd.Flags().BoolVar(&flags.noGutter, "no-gutter", false, "hide line numbers")
	cmd.Flags().BoolVar(&flags.detect, "detect-fences", false, "guess the language of untagged code fences")

	return cmd
}

const highlightLongDescription = `Print a Markdown file with syntax highlighting.

Headings, emphasis, links, lists, tables and fenced code blocks are styled
for the terminal. Use "-" as FILE to read standard input. JSON output lists
every line with its styled spans.

Examples:
  gomdedit highlight README.md                  # Whole file
  gomdedit highlight README.md --start 40 --count 20
  gomdedit highlight README.md --format json    # Spans as JSON
  gomdedit highlight README.md --watch          # Re-render on save
  cat notes.md | gomdedit highlight -`

// highlightOutput is the JSON document printed per render.
type highlightOutput struct {
	Path  string           `json:"path"`
	Lines []highlight.Line `json:"lines"`
}

type highlightView struct {
	out       io.Writer
	path      string
	format    config.OutputFormat
	start     int
	count     int
	watching  bool
	styles    *pretty.Styles
	formatter *pretty.LineFormatter
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	path := args[0]

	switch {
	case flags.start < 1:
		return fmt.Errorf("%w: --start must be at least 1", ErrInvalidFlag)
	case flags.count < 0:
		return fmt.Errorf("%w: --count must not be negative", ErrInvalidFlag)
	case flags.width < 0:
		return fmt.Errorf("%w: --width must not be negative", ErrInvalidFlag)
	case flags.watch && path == stdinPath:
		return fmt.Errorf("%w: --watch needs a file, not standard input", ErrInvalidFlag)
	}

	cliCfg := &config.Config{Format: config.OutputFormat(flags.format)}
	cliCfg.Highlight.DetectUntaggedFences = flags.detect
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := commandLogger(cmd)

	text, info, err := readDocument(ctx, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	sess := session.New(session.WithConfig(cfg), session.WithLogger(logger))
	sess.SetContent(text)

	out := cmd.OutOrStdout()
	width := flags.width
	if !cmd.Flags().Changed("width") {
		width = terminalWidth(out)
	}
	styles := newStyles(cfg, out)
	view := &highlightView{
		out:      out,
		path:     path,
		format:   cfg.Format,
		start:    flags.start - 1,
		count:    flags.count,
		watching: flags.watch,
		styles:   styles,
		formatter: pretty.NewLineFormatter(styles,
			pretty.WithWidth(width),
			pretty.WithGutter(!flags.noGutter),
		),
	}

	if err := view.render(sess); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchDocument(ctx, path, info, logger, func(text string) error {
		sess.SetContent(text)
		return view.render(sess)
	})
}

func (v *highlightView) render(sess *session.Session) error {
	count := v.count
	if count == 0 {
		count = sess.LineCount()
	}
	lines := sess.HighlightedLines(v.start, count)

	if v.format == config.FormatJSON {
		enc := json.NewEncoder(v.out)
		if !v.watching {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(highlightOutput{Path: v.path, Lines: lines}); err != nil {
			return fmt.Errorf("encode lines: %w", err)
		}
		return nil
	}

	if v.watching {
		header := fmt.Sprintf("==> %s <==", v.path)
		if _, err := fmt.Fprintln(v.out, v.styles.Header.Render(header)); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := io.WriteString(v.out, v.formatter.Format(lines)); err != nil {
		return fmt.Errorf("write lines: %w", err)
	}
	return nil
}
