// Package highlight produces styled spans for a window of document lines.
//
// Whether a line is Markdown or code depends on every fence before it. The
// Highlighter caches the fence State at the start of every K-th line as it
// goes, so a request near the end of a long document replays at most K lines
// instead of the whole prefix. Callers report edits with Invalidate and whole
// document swaps with Reset; results always equal a full replay from line 0.
//
// A Highlighter is not safe for concurrent use.
package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/pkg/codelang"
	"github.com/yaklabco/gomdedit/pkg/langdetect"
	"github.com/yaklabco/gomdedit/pkg/markdown"
	"github.com/yaklabco/gomdedit/pkg/style"
)

const (
	// DefaultCheckpointInterval is the number of lines between cached states.
	DefaultCheckpointInterval = 64

	// detectLookahead bounds how many body lines of an untagged fence are
	// read for language detection.
	detectLookahead = 200
)

// Line is one highlighted line. Num is 1-based.
type Line struct {
	Num   int          `json:"num"`
	Spans []style.Span `json:"spans"`
}

// Highlighter turns document lines into spans.
type Highlighter struct {
	registry    *codelang.Registry
	logger      *log.Logger
	interval    int
	detect      bool
	checkpoints []State
	tokenizers  map[string]codelang.Tokenizer
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithRegistry sets the language registry used for fenced code.
func WithRegistry(reg *codelang.Registry) Option {
	return func(h *Highlighter) {
		if reg != nil {
			h.registry = reg
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(h *Highlighter) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithCheckpointInterval sets the distance between cached states. Values
// below 1 select DefaultCheckpointInterval.
func WithCheckpointInterval(n int) Option {
	return func(h *Highlighter) {
		if n > 0 {
			h.interval = n
		}
	}
}

// WithFenceDetection enables guessing the language of fences that carry no
// tag from the first lines of their body.
func WithFenceDetection(enabled bool) Option {
	return func(h *Highlighter) { h.detect = enabled }
}

// New returns a Highlighter with an empty checkpoint table.
func New(opts ...Option) *Highlighter {
	h := &Highlighter{
		interval:   DefaultCheckpointInterval,
		logger:     log.New(io.Discard),
		tokenizers: make(map[string]codelang.Tokenizer),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.registry == nil {
		h.registry = codelang.NewRegistry()
	}
	h.Reset()
	return h
}

// Reset drops every cached state.
func (h *Highlighter) Reset() {
	h.checkpoints = []State{{}}
}

// Invalidate drops cached states that an edit of line may have changed.
func (h *Highlighter) Invalidate(line int) {
	if h.detect {
		// A detected language depends on lines after its opening fence.
		line -= detectLookahead
	}
	keep := max(line, 0)/h.interval + 1
	if keep < len(h.checkpoints) {
		h.checkpoints = h.checkpoints[:keep]
	}
}

// Checkpoints reports how many states are cached.
func (h *Highlighter) Checkpoints() int { return len(h.checkpoints) }

// StateAt returns the fence state at the start of line, clamped to
// [0, src.LineCount()].
func (h *Highlighter) StateAt(src Source, line int) State {
	line = max(0, min(line, src.LineCount()))

	k := min(line/h.interval, len(h.checkpoints)-1)
	st := h.checkpoints[k]
	for i := k * h.interval; i < line; i++ {
		st = h.advance(src, i, st)
	}
	return st
}

// Lines highlights count lines starting at start. The window is clamped to
// the document; an empty window yields no lines.
func (h *Highlighter) Lines(src Source, start, count int) []Line {
	total := src.LineCount()
	start = max(0, min(start, total))
	end := start + max(count, 0)
	if end > total || end < start {
		end = total
	}
	if start == end {
		return []Line{}
	}

	st := h.StateAt(src, start)
	out := make([]Line, 0, end-start)
	for i := start; i < end; i++ {
		content := src.LineContent(i)
		out = append(out, Line{Num: i + 1, Spans: h.HighlightLine(content, st)})
		st = h.advance(src, i, st)
	}
	return out
}

// HighlightLine styles one line given the state at its start.
func (h *Highlighter) HighlightLine(line string, st State) []style.Span {
	switch {
	case markdown.IsFence(line):
		return []style.Span{{Text: line, Style: style.CodeFence}}
	case st.InCodeBlock:
		return h.tokenizer(st.Language).TokenizeLine(line)
	default:
		return markdown.Highlight(line)
	}
}

// advance returns the state after line i and records it when it lands on a
// checkpoint boundary that extends the table.
func (h *Highlighter) advance(src Source, i int, st State) State {
	next := st.Next(src.LineContent(i))
	if h.detect && next.InCodeBlock && !st.InCodeBlock && next.Language == "" {
		next.Language = h.detectLanguage(src, i+1)
	}
	if n := i + 1; n%h.interval == 0 && n/h.interval == len(h.checkpoints) {
		h.checkpoints = append(h.checkpoints, next)
	}
	return next
}

// detectLanguage guesses the language of the fence body starting at line.
func (h *Highlighter) detectLanguage(src Source, line int) string {
	var body strings.Builder
	for i := line; i < src.LineCount() && i < line+detectLookahead; i++ {
		content := src.LineContent(i)
		if markdown.IsFence(content) {
			break
		}
		body.WriteString(content)
		body.WriteByte('\n')
	}
	lang := langdetect.Detect([]byte(body.String()))
	if lang == langdetect.Unknown {
		return ""
	}
	return lang
}

func (h *Highlighter) tokenizer(lang string) codelang.Tokenizer {
	if tok, ok := h.tokenizers[lang]; ok {
		return tok
	}
	tok, ok := h.registry.Lookup(lang)
	if !ok {
		tok = codelang.Plain
		if lang != "" {
			h.logger.Debug("unknown fence language, using plain code style", "language", lang)
		}
	}
	// Cached per tag, so each unknown tag is reported once.
	h.tokenizers[lang] = tok
	return tok
}
