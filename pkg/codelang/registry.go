package codelang

import (
	"slices"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/langdetect"
)

// Language is one entry of a Registry.
type Language struct {
	Name       string
	Aliases    []string
	Structural bool
	Tokenizer  Tokenizer
}

// Registry resolves fence tags to tokenizers.
type Registry struct {
	languages map[string]Language
	aliases   map[string]string
	overrides map[string]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithAliases adds user alias overrides mapping a fence tag to a language
// name or alias. Overrides are consulted before anything else.
func WithAliases(aliases map[string]string) Option {
	return func(r *Registry) {
		for tag, target := range aliases {
			r.overrides[normalizeTag(tag)] = normalizeTag(target)
		}
	}
}

// NewRegistry returns a registry holding every built-in language.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		languages: make(map[string]Language),
		aliases:   make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, d := range Descriptors() {
		r.Register(Language{Name: d.Name, Aliases: d.Aliases, Tokenizer: d.Tokenizer()})
	}
	for _, lang := range structuralLanguages() {
		r.Register(lang)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func structuralLanguages() []Language {
	return []Language{
		{Name: "json", Structural: true, Aliases: []string{"jsonc", "json5", "geojson"}, Tokenizer: TokenizerFunc(tokenizeJSON)},
		{Name: "html", Structural: true, Aliases: []string{"htm", "xhtml", "vue"}, Tokenizer: TokenizerFunc(tokenizeMarkup)},
		{Name: "xml", Structural: true, Aliases: []string{"svg", "xsl", "xslt", "plist", "rss"}, Tokenizer: TokenizerFunc(tokenizeMarkup)},
		{Name: "css", Structural: true, Tokenizer: TokenizerFunc(tokenizeCSS)},
		{Name: "yaml", Structural: true, Aliases: []string{"yml"}, Tokenizer: TokenizerFunc(tokenizeYAML)},
		{Name: "toml", Structural: true, Tokenizer: TokenizerFunc(tokenizeTOML)},
	}
}

// Register adds or replaces a language. Names and aliases are lowercased.
func (r *Registry) Register(lang Language) {
	lang.Name = normalizeTag(lang.Name)
	if lang.Tokenizer == nil {
		lang.Tokenizer = Plain
	}
	r.languages[lang.Name] = lang
	for _, alias := range lang.Aliases {
		r.aliases[normalizeTag(alias)] = lang.Name
	}
}

// Resolve maps a fence tag to a registered language name. Resolution order:
// configured overrides, exact names, built-in aliases, then the linguist
// alias table.
func (r *Registry) Resolve(tag string) (string, bool) {
	tag = normalizeTag(tag)
	if tag == "" {
		return "", false
	}
	if target, ok := r.overrides[tag]; ok {
		tag = target
	}
	if name, ok := r.resolveLocal(tag); ok {
		return name, true
	}
	if canonical, ok := langdetect.Canonical(tag); ok {
		return r.resolveLocal(canonical)
	}
	return "", false
}

func (r *Registry) resolveLocal(tag string) (string, bool) {
	if _, ok := r.languages[tag]; ok {
		return tag, true
	}
	if name, ok := r.aliases[tag]; ok {
		return name, true
	}
	return "", false
}

// Lookup returns the tokenizer for tag.
func (r *Registry) Lookup(tag string) (Tokenizer, bool) {
	name, ok := r.Resolve(tag)
	if !ok {
		return nil, false
	}
	return r.languages[name].Tokenizer, true
}

// TokenizerFor returns the tokenizer for tag, or Plain when tag is unknown.
func (r *Registry) TokenizerFor(tag string) Tokenizer {
	if tok, ok := r.Lookup(tag); ok {
		return tok
	}
	return Plain
}

// Languages lists the registered languages sorted by name.
func (r *Registry) Languages() []Language {
	out := make([]Language, 0, len(r.languages))
	for _, lang := range r.languages {
		out = append(out, lang)
	}
	slices.SortFunc(out, func(a, b Language) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
