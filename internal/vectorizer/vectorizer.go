package vectorizer

import (
	"errors"
	"math"
	"sort"
)

// The corpus is always exactly the two documents under comparison.
const documentCount = 2

// Builder constructs vocabulary and weight vectors for document pairs.
type Builder struct {
	maxFeatures int
}

// NewBuilder returns a Builder whose vocabularies never exceed maxFeatures
// terms.
func NewBuilder(maxFeatures int) (*Builder, error) {
	if maxFeatures <= 0 {
		return nil, errors.New("max features must be positive")
	}
	return &Builder{maxFeatures: maxFeatures}, nil
}

type termStat struct {
	term           string
	first          int
	originalCount  int
	candidateCount int
}

// Build indexes the union of both token sequences and returns the shared
// vocabulary with one L2-normalized weight vector per document. It is total:
// empty inputs yield an empty vocabulary and zero-magnitude vectors.
func (b *Builder) Build(original, candidate []string) (Vocabulary, WeightVector, WeightVector) {
	stats := make([]*termStat, 0, len(original)+len(candidate))
	byTerm := make(map[string]*termStat, len(original)+len(candidate))

	observe := func(term string, fromOriginal bool) {
		stat, ok := byTerm[term]
		if !ok {
			stat = &termStat{term: term, first: len(stats)}
			byTerm[term] = stat
			stats = append(stats, stat)
		}
		if fromOriginal {
			stat.originalCount++
		} else {
			stat.candidateCount++
		}
	}
	for _, term := range original {
		observe(term, true)
	}
	for _, term := range candidate {
		observe(term, false)
	}

	selected := b.cap(stats)

	vocab := Vocabulary{
		terms: make([]string, len(selected)),
		index: make(map[string]int, len(selected)),
	}
	originalWeights := make(map[int]float64, len(selected))
	candidateWeights := make(map[int]float64, len(selected))
	var originalSum, candidateSum float64

	for i, stat := range selected {
		vocab.terms[i] = stat.term
		vocab.index[stat.term] = i

		idf := smoothedIDF(documentFrequency(stat))
		if stat.originalCount > 0 {
			w := float64(stat.originalCount) * idf
			originalWeights[i] = w
			originalSum += w * w
		}
		if stat.candidateCount > 0 {
			w := float64(stat.candidateCount) * idf
			candidateWeights[i] = w
			candidateSum += w * w
		}
	}

	return vocab,
		normalize(originalWeights, originalSum, vocab.Len()),
		normalize(candidateWeights, candidateSum, vocab.Len())
}

// cap keeps every term when the union fits, otherwise the maxFeatures most
// frequent terms across both documents with ties broken by first appearance.
// Surviving terms keep their relative first-appearance order so index
// assignment stays stable.
func (b *Builder) cap(stats []*termStat) []*termStat {
	if len(stats) <= b.maxFeatures {
		return stats
	}

	ranked := make([]*termStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci := ranked[i].originalCount + ranked[i].candidateCount
		cj := ranked[j].originalCount + ranked[j].candidateCount
		if ci != cj {
			return ci > cj
		}
		return ranked[i].first < ranked[j].first
	})

	keep := make(map[string]struct{}, b.maxFeatures)
	for _, stat := range ranked[:b.maxFeatures] {
		keep[stat.term] = struct{}{}
	}

	selected := make([]*termStat, 0, b.maxFeatures)
	for _, stat := range stats {
		if _, ok := keep[stat.term]; ok {
			selected = append(selected, stat)
		}
	}
	return selected
}

func documentFrequency(stat *termStat) int {
	df := 0
	if stat.originalCount > 0 {
		df++
	}
	if stat.candidateCount > 0 {
		df++
	}
	return df
}

// smoothedIDF is ln((1+N)/(1+df)) + 1 over the N=2 corpus: strictly
// positive, higher for terms exclusive to one document (df=1) than for
// shared terms (df=2, where it is exactly 1).
func smoothedIDF(df int) float64 {
	return math.Log(float64(1+documentCount)/float64(1+df)) + 1
}

// normalize scales weights to unit magnitude in ascending index order so
// repeated builds produce bit-identical vectors.
func normalize(weights map[int]float64, sumSquares float64, vocabLen int) WeightVector {
	if len(weights) == 0 || sumSquares == 0 {
		return WeightVector{weights: weights, norm: 0}
	}
	norm := math.Sqrt(sumSquares)
	for i := 0; i < vocabLen; i++ {
		if w, ok := weights[i]; ok {
			weights[i] = w / norm
		}
	}
	return WeightVector{weights: weights, norm: 1}
}
