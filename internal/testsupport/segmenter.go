package testsupport

import (
	"strings"
	"unicode"
)

// Segmenter is a deterministic fixture segmenter: longest match against an
// explicit word list for CJK runs, whole-run passthrough for Latin and
// numeric runs, and single-rune emission for everything else. Tests use it
// so token-level assertions do not depend on the embedded production
// dictionary.
type Segmenter struct {
	words  map[string]struct{}
	maxLen int
}

// NewSegmenter builds a fixture segmenter over the given dictionary words.
func NewSegmenter(words ...string) *Segmenter {
	s := &Segmenter{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		trimmed := strings.TrimSpace(word)
		if trimmed == "" {
			continue
		}
		s.words[trimmed] = struct{}{}
		if runes := []rune(trimmed); len(runes) > s.maxLen {
			s.maxLen = len(runes)
		}
	}
	return s
}

// Segment implements the tokenizer's Segmenter seam.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(text)
	var segments []string
	for i := 0; i < len(runes); {
		r := runes[i]

		if isLatinOrDigit(r) {
			j := i
			for j < len(runes) && isLatinOrDigit(runes[j]) {
				j++
			}
			segments = append(segments, string(runes[i:j]))
			i = j
			continue
		}

		matched := false
		limit := s.maxLen
		if rest := len(runes) - i; limit > rest {
			limit = rest
		}
		for length := limit; length >= 1; length-- {
			candidate := string(runes[i : i+length])
			if _, ok := s.words[candidate]; ok {
				segments = append(segments, candidate)
				i += length
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		segments = append(segments, string(r))
		i++
	}
	return segments
}

func isLatinOrDigit(r rune) bool {
	return r < 0x2E80 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
