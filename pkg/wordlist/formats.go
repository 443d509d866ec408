package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var supportedExtensions = []string{".txt", ".lst", ".words"}

// sniffSize is how much of the file ValidateFile reads to check encoding.
const sniffSize = 1024

// ValidateFile checks that path is a non-empty UTF-8 text file with a
// supported extension.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat word list %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("word list %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("word list %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, e := range supportedExtensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("word list %s has invalid extension %q (expected one of %v)", path, ext, supportedExtensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, err := file.Read(buf)
	if err != nil {
		return fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	head := buf[:n]
	if n == sniffSize {
		// drop a rune cut at the sniff boundary
		for i := len(head) - 1; i >= 0 && i >= len(head)-utf8.UTFMax; i-- {
			if utf8.RuneStart(head[i]) {
				if !utf8.FullRune(head[i:]) {
					head = head[:i]
				}
				break
			}
		}
	}
	if !utf8.Valid(head) {
		return fmt.Errorf("word list %s is not valid UTF-8", path)
	}
	return nil
}
