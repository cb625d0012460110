package tokenizer

import (
	"strings"
	"unicode"

	"docsim/internal/stopwords"
)

// Tokenizer applies the filtering rules on top of a Segmenter.
type Tokenizer struct {
	seg Segmenter
}

// New returns a Tokenizer over the provided segmenter.
func New(seg Segmenter) *Tokenizer {
	return &Tokenizer{seg: seg}
}

// Tokenize segments text and drops segments that trim to nothing, carry no
// letter or digit, or are members of stop. It never fails: any input string
// yields a (possibly nil) token slice. Token order and duplicates are
// preserved and case is never folded.
func (t *Tokenizer) Tokenize(text string, stop stopwords.Set) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	segments := t.seg.Segment(text)
	tokens := make([]string, 0, len(segments))
	for _, segment := range segments {
		term := strings.TrimSpace(segment)
		if term == "" {
			continue
		}
		if !hasLexicalRune(term) {
			continue
		}
		if stop.Contains(term) {
			continue
		}
		tokens = append(tokens, term)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// hasLexicalRune reports whether term carries at least one letter or digit.
// CJK ideographs are letters under Unicode, so pure-punctuation segments
// are the only casualties.
func hasLexicalRune(term string) bool {
	for _, r := range term {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
