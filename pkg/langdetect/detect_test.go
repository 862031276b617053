package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang sh", "#!/bin/sh\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}", "go"},
		{"python", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"javascript", "const x = () => { return 42; };\nconsole.log(x());", "javascript"},
		{"json", `{"key": "value", "number": 123}`, "json"},
		{"yaml", "key: value\nother: 123\nlist:\n  - item1\n  - item2", "yaml"},
		{"toml", "[server]\nhost = \"localhost\"\nport = 8080", "toml"},
		{"toml array of tables", "[[servers]]\nname = \"alpha\"\n\n[[servers]]\nname = \"beta\"", "toml"},
		{"json array of objects", "[\n  {\"id\": 1},\n  {\"id\": 2}\n]", "json"},
		{"json array of strings", `["a", "b"]`, "json"},
		{"json array of numbers", `[1, 2, "three"]`, "json"},
		{"rust", "fn main() {\n    println!(\"Hello, world!\");\n}", "rust"},
		{"sql", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"html", "<!DOCTYPE html>\n<html>\n<head><title>T</title></head>\n<body></body>\n</html>", "html"},
		{"dockerfile", "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build", "dockerfile"},
		{"plain text", "just some text without any code patterns", langdetect.Unknown},
		{"empty", "", langdetect.Unknown},
		{"whitespace only", "  \n\t\n", langdetect.Unknown},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, langdetect.Detect([]byte(testCase.content)))
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bash", langdetect.Detect([]byte("#!/bin/bash\ndef foo():\n    pass")))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alias    string
		expected string
		ok       bool
	}{
		{"golang", "go", true},
		{"Go", "go", true},
		{"javascript", "javascript", true},
		{"shell", "bash", true},
		{"cpp", "cpp", true},
		{"definitely-not-a-language", "", false},
		{"", "", false},
	}

	for _, testCase := range tests {
		got, ok := langdetect.Canonical(testCase.alias)
		assert.Equal(t, testCase.ok, ok, testCase.alias)
		assert.Equal(t, testCase.expected, got, testCase.alias)
	}
}
