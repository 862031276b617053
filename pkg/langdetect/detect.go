// Package langdetect guesses and canonicalizes code-block languages with
// go-enry. Results are lowercase fence tags ("go", "bash", "cpp").
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned by Detect when no language can be determined.
const Unknown = "text"

// classifierCandidates limits the enry classifier to languages a fenced
// block is likely to hold.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust", "Java",
	"Kotlin", "PHP", "C", "C++", "SQL", "JSON", "YAML", "TOML", "HTML", "XML",
	"CSS", "Dockerfile",
}

// patternDetectors run in order before the classifier; the first non-empty
// answer wins.
var patternDetectors = []func(content, trimmed []byte) string{
	detectGo,
	detectPython,
	detectHTML,
	detectTOML,
	detectJSON,
	detectDockerfile,
	detectSQL,
	detectRust,
	detectJavaScript,
	detectYAML,
}

// Detect returns the most likely fence tag for a code block body, or Unknown.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, detect := range patternDetectors {
		if lang := detect(content, trimmed); lang != "" {
			return lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}
	return Unknown
}

// Canonical maps an alias known to linguist ("golang", "shell-script") to
// the lowercase fence tag of its language.
func Canonical(alias string) (string, bool) {
	lang, ok := enry.GetLanguageByAlias(strings.ToLower(strings.TrimSpace(alias)))
	if !ok || lang == "" {
		return "", false
	}
	return normalize(lang), true
}

func detectGo(_, trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	return ""
}

func detectPython(content, _ []byte) string {
	s := string(content)
	switch {
	case strings.Contains(s, "def ") && strings.Contains(s, "):"):
		return "python"
	case strings.Contains(s, "__name__"), strings.Contains(s, "__main__"):
		return "python"
	case strings.Contains(s, "import ") && !strings.Contains(s, "import ("):
		if strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ") {
			return "python"
		}
	}
	return ""
}

func detectHTML(_, trimmed []byte) string {
	lower := bytes.ToLower(trimmed)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if bytes.Contains(lower, []byte(marker)) {
			return "html"
		}
	}
	return ""
}

// detectJSON accepts an object, or an array whose first element starts like
// a JSON value. "[server]" is a TOML table header, not an array.
func detectJSON(_, trimmed []byte) string {
	if !bytes.Contains(trimmed, []byte(`"`)) {
		return ""
	}
	if bytes.HasPrefix(trimmed, []byte("{")) {
		return "json"
	}
	if rest, ok := bytes.CutPrefix(trimmed, []byte("[")); ok {
		rest = bytes.TrimSpace(rest)
		if len(rest) > 0 && (bytes.IndexByte([]byte(`{["]-`), rest[0]) >= 0 || isDigit(rest[0])) {
			return "json"
		}
	}
	return ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func detectDockerfile(content, trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY "))) {
		return "dockerfile"
	}
	return ""
}

func detectSQL(content, _ []byte) string {
	upper := strings.ToUpper(strings.TrimSpace(string(content)))
	for _, stmt := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, stmt) {
			return "sql"
		}
	}
	return ""
}

func detectRust(content, _ []byte) string {
	s := string(content)
	if strings.Contains(s, "fn main()") || strings.Contains(s, "println!") || strings.Contains(s, "let mut ") {
		return "rust"
	}
	return ""
}

// detectTOML looks for a [table] header followed by key = value lines.
func detectTOML(content, trimmed []byte) string {
	if !bytes.HasPrefix(trimmed, []byte("[")) || bytes.HasPrefix(trimmed, []byte(`["`)) {
		return ""
	}
	assignments := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if key, _, ok := bytes.Cut(line, []byte(" = ")); ok && len(key) > 0 && !bytes.ContainsAny(key, "({") {
			assignments++
		}
	}
	if assignments > 0 {
		return "toml"
	}
	return ""
}

func detectJavaScript(content, _ []byte) string {
	s := string(content)
	for _, marker := range []string{"=>", "const ", "let ", "console.log"} {
		if strings.Contains(s, marker) {
			return "javascript"
		}
	}
	return ""
}

// detectYAML counts "key: value" pairs and top-level list items.
func detectYAML(content, _ []byte) string {
	count := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") && !bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	if count >= 2 {
		return "yaml"
	}
	return ""
}

// normalize converts a linguist language name to a fence tag.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	}
	return strings.ToLower(lang)
}
