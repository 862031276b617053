package cli

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/session"
)

type previewFlags struct {
	output        string
	flavor        string
	standalone    bool
	outline       bool
	outlineFormat string
	watch         bool
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render a Markdown file to HTML",
		Long: `Render a Markdown file to HTML using CommonMark or GitHub Flavored Markdown.

The HTML is printed to standard output unless --output names a file, which
is written atomically and only when its content changes. With --outline the
document's headings are listed instead.

Examples:
  gomdedit preview README.md                     # HTML to stdout
  gomdedit preview README.md --flavor gfm -o out.html
  gomdedit preview README.md -o out.html --watch # Rebuild on save
  gomdedit preview README.md --outline           # Heading outline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file")
	cmd.Flags().StringVar(&flags.flavor, "flavor", string(config.FlavorCommonMark), "Markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap the HTML in a complete document")
	cmd.Flags().BoolVar(&flags.outline, "outline", false, "list headings instead of rendering HTML")
	cmd.Flags().StringVar(&flags.outlineFormat, "outline-format", string(config.FormatText), "outline format: text, json")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render whenever the file changes")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	path := args[0]

	switch {
	case flags.watch && path == stdinPath:
		return fmt.Errorf("%w: --watch needs a file, not standard input", ErrInvalidFlag)
	case flags.outline && (flags.output != "" || flags.standalone):
		return fmt.Errorf("%w: --outline cannot be combined with --output or --standalone", ErrInvalidFlag)
	}

	cliCfg := &config.Config{Format: config.OutputFormat(flags.outlineFormat)}
	if cmd.Flags().Changed("flavor") {
		cliCfg.Preview.Flavor = config.Flavor(flags.flavor)
	}
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

	render := func() error {
		if flags.outline {
			return writeOutline(cmd.OutOrStdout(), cfg, sess)
		}

		body, err := sess.RenderHTML()
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}
		if flags.standalone {
			body = standaloneHTML(documentTitle(sess, path), body)
		}

		if flags.output == "" {
			_, err := io.WriteString(cmd.OutOrStdout(), body)
			return err
		}
		written, err := fsutil.WriteIfChanged(ctx, flags.output, []byte(body), 0)
		if err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		if written {
			logger.Info("wrote preview", logging.FieldOutput, flags.output, logging.FieldFlavor, cfg.Preview.Flavor)
		} else {
			logger.Debug("preview unchanged", logging.FieldOutput, flags.output)
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchDocument(ctx, path, info, logger, func(text string) error {
		sess.SetContent(text)
		return render()
	})
}

func writeOutline(out io.Writer, cfg *config.Config, sess *session.Session) error {
	headings := sess.Outline()
	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(headings); err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(out, newStyles(cfg, out).FormatOutline(headings))
	return err
}

// documentTitle is the first heading's text, or the file name.
func documentTitle(sess *session.Session, path string) string {
	if headings := sess.Outline(); len(headings) > 0 {
		return headings[0].Text
	}
	return path
}

func standaloneHTML(title, body string) string {
	var builder strings.Builder
	builder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	builder.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	builder.WriteString("</head>\n<body>\n")
	builder.WriteString(body)
	builder.WriteString("</body>\n</html>\n")
	return builder.String()
}
