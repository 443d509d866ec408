package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidWord(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"don't", true},
		{"well-known", true},
		{"word2vec", true},
		{"café", true},
		{"", false},
		{"12345", false},
		{"two words", false},
		{"email@example.com", false},
		{"tab\there", false},
	}
	for _, tc := range testCases {
		if got := IsValidWord(tc.input); got != tc.want {
			t.Errorf("IsValidWord(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range testCases {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("日本語"); got != 3 {
		t.Errorf("RuneLen = %d, want 3", got)
	}
}

func TestSeenSet(t *testing.T) {
	s := NewSeenSet()
	if !s.First("a") {
		t.Error("first sighting of a should be reported")
	}
	if s.First("a") {
		t.Error("second sighting of a should not be reported")
	}
	if !s.First("b") {
		t.Error("first sighting of b should be reported")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestExtractHelpers(t *testing.T) {
	data := map[string]any{
		"n":    int64(4),
		"flag": true,
		"name": "x",
		"sub":  map[string]any{"k": int64(1)},
	}
	if v, ok := ExtractInt64(data, "n"); !ok || v != 4 {
		t.Errorf("ExtractInt64 = %d, %v", v, ok)
	}
	if _, ok := ExtractInt64(data, "name"); ok {
		t.Error("ExtractInt64 should reject a string")
	}
	if v, ok := ExtractBool(data, "flag"); !ok || !v {
		t.Errorf("ExtractBool = %v, %v", v, ok)
	}
	if v, ok := ExtractString(data, "name"); !ok || v != "x" {
		t.Errorf("ExtractString = %q, %v", v, ok)
	}
	if _, ok := ExtractSection(data, "sub"); !ok {
		t.Error("ExtractSection should find sub")
	}
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	pr := &PathResolver{executableDir: dir, configDir: filepath.Join(dir, "cfg")}

	got, err := pr.FindFile(path)
	if err != nil || got != path {
		t.Errorf("absolute FindFile = %q, %v", got, err)
	}
	got, err = pr.FindFile("words.txt")
	if err != nil || got != path {
		t.Errorf("relative FindFile = %q, %v", got, err)
	}
	if _, err := pr.FindFile("missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
