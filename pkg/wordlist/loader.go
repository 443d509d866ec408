// Package wordlist seeds a dictionary from plain-text word lists.
//
// Each non-blank line holds a word, optionally followed by whitespace and an
// integer frequency. Lines starting with '#' are comments.
//
//	# english top words
//	the	23135851162
//	of	13151942776
//	zyzzyva
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/charmbracelet/log"
)

// Inserter is the part of the dictionary the loader needs.
type Inserter interface {
	Insert(word string)
}

// LoadOptions controls which entries make it into the dictionary.
type LoadOptions struct {
	// MaxWords caps inserted words. 0 means no cap.
	MaxWords int
	// MinFrequency drops entries with a lower frequency. Entries without a
	// frequency column always pass.
	MinFrequency int
	// Filter drops entries utils.IsValidWord rejects.
	Filter bool
}

// LoadStats summarises a load.
type LoadStats struct {
	Lines      int
	Inserted   int
	Duplicates int
	Filtered   int
	Malformed  int
}

// Load reads entries from r and inserts them into dst. Duplicate words are
// inserted once so a non-strict dictionary keeps exact counts.
func Load(r io.Reader, dst Inserter, opts LoadOptions) (LoadStats, error) {
	var stats LoadStats
	seen := utils.NewSeenSet()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := fields[0]
		if len(fields) > 1 {
			freq, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Debugf("line %d: bad frequency %q", stats.Lines, fields[1])
				stats.Malformed++
				continue
			}
			if freq < opts.MinFrequency {
				stats.Filtered++
				continue
			}
		}
		if opts.Filter && !utils.IsValidWord(word) {
			stats.Filtered++
			continue
		}
		if !seen.First(word) {
			stats.Duplicates++
			continue
		}

		dst.Insert(word)
		stats.Inserted++
		if opts.MaxWords > 0 && stats.Inserted >= opts.MaxWords {
			log.Debugf("Reached max words (%d), stopping at line %d", opts.MaxWords, stats.Lines)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading word list: %w", err)
	}
	return stats, nil
}

// LoadFile validates path and loads it with Load.
func LoadFile(path string, dst Inserter, opts LoadOptions) (LoadStats, error) {
	if err := ValidateFile(path); err != nil {
		return LoadStats{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	stats, err := Load(file, dst, opts)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %s: lines=%d inserted=%d duplicates=%d filtered=%d malformed=%d",
		path, stats.Lines, stats.Inserted, stats.Duplicates, stats.Filtered, stats.Malformed)
	return stats, nil
}
