package vectorizer

import "sort"

// Vocabulary maps terms to stable indices for one comparison. Indices are
// assigned in first-appearance order and are only meaningful alongside the
// vectors built with them.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Len returns the number of indexed terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Term returns the term at index i.
func (v Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Terms returns a copy of the indexed terms in index order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the index for term and whether the term is in the vocabulary.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// WeightVector is a sparse mapping from vocabulary index to non-negative
// weight. The zero value is the empty vector.
type WeightVector struct {
	weights map[int]float64
	norm    float64
}

// Weight returns the weight at index i, zero when absent.
func (w WeightVector) Weight(i int) float64 {
	return w.weights[i]
}

// Norm returns the Euclidean magnitude recorded at build time: 1 for any
// non-empty document, 0 for an empty one.
func (w WeightVector) Norm() float64 {
	return w.norm
}

// Len returns the number of non-zero entries.
func (w WeightVector) Len() int {
	return len(w.weights)
}

// Indices returns the populated indices in ascending order.
func (w WeightVector) Indices() []int {
	out := make([]int, 0, len(w.weights))
	for i := range w.weights {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
