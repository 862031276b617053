// Package preview renders Markdown documents to HTML with goldmark.
package preview

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// Renderer converts Markdown to HTML for one flavor.
type Renderer struct {
	flavor config.Flavor
	md     goldmark.Markdown
}

// Heading is one entry of a document outline. Line is 1-based.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// New creates a renderer for the given flavor.
// Invalid flavors default to CommonMark.
func New(flavor config.Flavor) *Renderer {
	f := flavorOrDefault(flavor)
	return &Renderer{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Render is a shorthand for New(flavor).Render(src).
func Render(src []byte, flavor config.Flavor) (string, error) {
	return New(flavor).Render(src)
}

// Flavor returns the configured Markdown flavor.
func (r *Renderer) Flavor() config.Flavor {
	return r.flavor
}

// Render converts src to an HTML fragment. Raw HTML in src is omitted.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Outline lists the headings of src in document order.
func (r *Renderer) Outline(src []byte) []Heading {
	doc := r.md.Parser().Parse(text.NewReader(src))

	headings := []Heading{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  plainText(h, src),
			Line:  startLine(h, src),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// plainText concatenates the text leaves below n.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch leaf := c.(type) {
		case *ast.Text:
			buf.Write(leaf.Segment.Value(src))
			if leaf.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(leaf.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// startLine returns the 1-based line of a block's first content segment, or
// 0 for blocks without content.
func startLine(n ast.Node, src []byte) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	return bytes.Count(src[:start], []byte{'\n'}) + 1
}

func flavorOrDefault(flavor config.Flavor) config.Flavor {
	if flavor.IsValid() {
		return flavor
	}
	return config.FlavorCommonMark
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor config.Flavor) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case config.FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case config.FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
