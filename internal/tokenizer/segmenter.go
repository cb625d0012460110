package tokenizer

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Segmenter splits raw text into candidate tokens. Implementations must be
// deterministic: the same input yields the same segments on every call.
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterOptions configures the dictionary segmenter.
type SegmenterOptions struct {
	// HMM enables hidden-Markov segmentation for runs absent from the
	// dictionary. Without it unknown CJK runs split into single characters.
	HMM bool
	// UserDict is an optional extra dictionary file merged into the
	// embedded one.
	UserDict string
}

// DictionarySegmenter segments text with the embedded Chinese dictionary.
// It is safe for concurrent use once constructed.
type DictionarySegmenter struct {
	seg gse.Segmenter
	hmm bool
}

// NewDictionarySegmenter loads the embedded dictionary plus any configured
// user dictionary. Construction is the expensive step; reuse the returned
// segmenter across documents.
func NewDictionarySegmenter(opts SegmenterOptions) (*DictionarySegmenter, error) {
	d := &DictionarySegmenter{hmm: opts.HMM}
	d.seg.SkipLog = true
	if err := d.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load embedded dictionary: %w", err)
	}
	if opts.UserDict != "" {
		if err := d.seg.LoadDict(opts.UserDict); err != nil {
			return nil, fmt.Errorf("load user dictionary %s: %w", opts.UserDict, err)
		}
	}
	return d, nil
}

// Segment implements Segmenter.
func (d *DictionarySegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return d.seg.Cut(text, d.hmm)
}
