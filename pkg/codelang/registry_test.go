package codelang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/gomdedit/pkg/codelang"
	"github.com/yaklabco/gomdedit/pkg/style"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := codelang.NewRegistry(codelang.WithAliases(map[string]string{
		"MyLang": "python",
		"js":     "typescript",
	}))

	tests := []struct {
		tag      string
		expected string
		ok       bool
	}{
		{"go", "go", true},
		{"Python", "python", true},
		{" yml ", "yaml", true},
		{"c++", "cpp", true},
		{"golang", "go", true},
		{"mylang", "python", true},
		{"js", "typescript", true},
		{"jsx", "javascript", true},
		{"shell-script", "bash", true},
		{"", "", false},
		{"no-such-language", "", false},
	}

	for _, testCase := range tests {
		got, ok := reg.Resolve(testCase.tag)
		assert.Equal(t, testCase.ok, ok, "Resolve(%q)", testCase.tag)
		assert.Equal(t, testCase.expected, got, "Resolve(%q)", testCase.tag)
	}
}

func TestRegistry_UnknownFallsBackToPlain(t *testing.T) {
	t.Parallel()

	reg := codelang.NewRegistry()
	_, ok := reg.Lookup("brainfudge")
	assert.False(t, ok)

	line := `x = "y" // 42`
	assert.Equal(t,
		[]style.Span{{Text: line, Style: style.CodeBlock}},
		reg.TokenizerFor("brainfudge").TokenizeLine(line),
	)
}

func TestRegistry_Languages(t *testing.T) {
	t.Parallel()

	langs := codelang.NewRegistry().Languages()
	require.Len(t, langs, 20)
	assert.Equal(t, "bash", langs[0].Name)
	assert.Equal(t, "yaml", langs[len(langs)-1].Name)

	structural := 0
	for _, lang := range langs {
		if lang.Structural {
			structural++
		}
	}
	assert.Equal(t, 6, structural)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := codelang.NewRegistry()
	reg.Register(codelang.Language{
		Name:    "Upper",
		Aliases: []string{"UP"},
		Tokenizer: codelang.TokenizerFunc(func(line string) []style.Span {
			return []style.Span{{Text: line, Style: style.CodeKeyword}}
		}),
	})

	tok, ok := reg.Lookup("up")
	require.True(t, ok)
	assert.Equal(t, []style.Span{{Text: "x", Style: style.CodeKeyword}}, tok.TokenizeLine("x"))
}

func TestTokenizers_ReproduceLine(t *testing.T) {
	t.Parallel()

	alphabet := []rune(`ab1_$ "'\#/-*<>!&;:.,=(){}[]|@%~?` + "\tü")
	reg := codelang.NewRegistry()
	langs := reg.Languages()

	rapid.Check(t, func(t *rapid.T) {
		lang := rapid.SampledFrom(langs).Draw(t, "lang")
		line := rapid.StringOf(rapid.SampledFrom(alphabet)).Draw(t, "line")

		spans := lang.Tokenizer.TokenizeLine(line)
		if len(spans) == 0 {
			t.Fatalf("%s: no spans for %q", lang.Name, line)
		}
		if got := style.Join(spans); got != line {
			t.Fatalf("%s: spans join to %q, want %q", lang.Name, got, line)
		}
		for _, sp := range spans {
			if !sp.Style.IsCode() {
				t.Fatalf("%s: non-code style %q", lang.Name, sp.Style)
			}
		}
	})
}

func BenchmarkGeneric_Go(b *testing.B) {
	tok := codelang.NewRegistry().TokenizerFor("go")
	line := `	if err := run(ctx, "arg", 0x1F); err != nil { return fmt.Errorf("run: %w", err) }`
	b.ResetTimer()
	for range b.N {
		tok.TokenizeLine(line)
	}
}
