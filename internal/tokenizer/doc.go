// Package tokenizer turns document text into the token sequences the
// vectorizer consumes.
//
// Segmentation is dictionary-driven so contiguous CJK prose splits into
// words rather than characters; Latin and numeric runs pass through as
// whole tokens. Filtering then drops whitespace, punctuation-only segments,
// and stopwords. Tokens keep their original case and order, and duplicates
// survive because the vectorizer counts them.
//
// The Segmenter seam exists so tests can substitute a fixed dictionary and
// stay independent of the embedded production one.
package tokenizer
