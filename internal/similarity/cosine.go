package similarity

import (
	"math"

	"docsim/internal/vectorizer"
)

// Cosine returns the cosine similarity between two weight vectors,
// clamped to [0, 1]. A zero-magnitude vector on either side compares
// as 0 rather than dividing by zero.
//
// Magnitudes are recomputed from the stored weights so the result
// stays correct even for vectors that were never normalized.
func Cosine(a, b vectorizer.WeightVector) float64 {
	normA := magnitude(a)
	normB := magnitude(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	var dot float64
	for _, i := range small.Indices() {
		dot += small.Weight(i) * large.Weight(i)
	}
	if dot == 0 {
		return 0
	}
	return clamp(dot / (normA * normB))
}

func magnitude(v vectorizer.WeightVector) float64 {
	var sum float64
	for _, i := range v.Indices() {
		w := v.Weight(i)
		sum += w * w
	}
	return math.Sqrt(sum)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
