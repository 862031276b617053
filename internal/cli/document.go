package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/internal/watcher"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

// stdinPath is the file argument that reads the document from standard input.
const stdinPath = "-"

// readDocument loads the document named by path. The returned FileInfo is nil
// for standard input.
func readDocument(ctx context.Context, in io.Reader, path string) (string, *fsutil.FileInfo, error) {
	if path != stdinPath {
		return fsutil.ReadText(ctx, path)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", nil, fmt.Errorf("read standard input: %w", err)
	}
	text, err := fsutil.DecodeText(data)
	if err != nil {
		return "", nil, fmt.Errorf("%w: standard input", err)
	}
	return text, nil, nil
}

// watchDocument calls onChange with the new content each time the file at
// path really changes, until ctx is done. File events arrive on the watcher's
// goroutine; reloads and onChange run on the caller's goroutine only.
func watchDocument(
	ctx context.Context,
	path string,
	info *fsutil.FileInfo,
	logger *log.Logger,
	onChange func(text string) error,
) error {
	cfg := watcher.DefaultConfig(path)
	cfg.Logger = logger
	w, err := watcher.New(cfg)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Info("watching for changes", logging.FieldPath, path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			changed, err := info.Changed(ctx)
			if err != nil {
				logger.Warn("check file", logging.FieldPath, path, logging.FieldError, err)
				continue
			}
			if !changed {
				logger.Debug("file unchanged", logging.FieldPath, path)
				continue
			}

			text, next, err := fsutil.ReadText(ctx, path)
			if err != nil {
				// The file may be mid-replace; the next event retries.
				logger.Warn("reload failed", logging.FieldPath, path, logging.FieldError, err)
				continue
			}
			info = next
			if err := onChange(text); err != nil {
				return err
			}
		}
	}
}
