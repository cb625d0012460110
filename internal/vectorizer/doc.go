// Package vectorizer builds the paired TF-IDF weight vectors a comparison
// scores.
//
// The vocabulary is the union of both documents' terms in first-appearance
// order (original document first), bounded by the configured maximum; when
// the union overflows, the most frequent terms across both documents win,
// with ties resolved by first appearance. Weights are raw term counts scaled
// by a smoothed inverse document frequency over the two-document corpus,
// then L2-normalized so the downstream dot product is directly the cosine.
//
// Construction is total and deterministic: no input can fail it, and no map
// iteration order leaks into term indices, selection, or weight arithmetic.
package vectorizer
