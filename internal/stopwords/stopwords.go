// Package stopwords loads and queries the term exclusion list applied
// during tokenization.
//
// The list is a plain text file with one term per line. A missing list is a
// degraded mode, not a failure: callers log a warning and continue with the
// empty set, which keeps every token.
package stopwords

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed starter_stopwords.txt
var starter []byte

// Set holds stopword terms with set semantics.
type Set map[string]struct{}

// Empty returns a set that excludes nothing.
func Empty() Set {
	return Set{}
}

// Load reads a line-oriented stopword file: one term per line, surrounding
// whitespace trimmed, blank lines skipped, duplicates collapsed. The caller
// decides whether a load failure is fatal; this package never fabricates an
// empty set on error.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords: %w", err)
	}
	defer file.Close()

	set := Set{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			continue
		}
		set[term] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stopwords: %w", err)
	}
	return set, nil
}

// Contains reports whether term is excluded. A nil set excludes nothing.
func (s Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s[term]
	return ok
}

// Len returns the number of terms in the set.
func (s Set) Len() int {
	return len(s)
}

// Starter returns the embedded starter list used to seed a fresh stopword
// file. It covers common Chinese and English function words.
func Starter() []byte {
	out := make([]byte, len(starter))
	copy(out, starter)
	return out
}

// StarterCount returns the number of terms in the embedded starter list.
func StarterCount() int {
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(starter))
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count
}

// WriteStarter seeds path with the starter list unless a file already
// exists there. It reports whether a file was written.
func WriteStarter(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, Starter(), 0o644); err != nil {
		return false, fmt.Errorf("write starter stopwords: %w", err)
	}
	return true, nil
}
