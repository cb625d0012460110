package similarity

import (
	"sort"

	"docsim/internal/vectorizer"
)

// Contribution records how much a single vocabulary term adds to the
// dot product between the original and candidate vectors.
type Contribution struct {
	Term      string  `json:"term"`
	Original  float64 `json:"original_weight"`
	Candidate float64 `json:"candidate_weight"`
	Product   float64 `json:"product"`
}

// TopContributions lists the terms contributing most to the similarity
// score, largest product first. Ties keep vocabulary order. Terms
// absent from either vector contribute nothing and are skipped. At
// most limit entries are returned; a non-positive limit returns nil.
func TopContributions(vocab vectorizer.Vocabulary, original, candidate vectorizer.WeightVector, limit int) []Contribution {
	if limit <= 0 {
		return nil
	}
	contributions := make([]Contribution, 0, vocab.Len())
	for i := 0; i < vocab.Len(); i++ {
		product := original.Weight(i) * candidate.Weight(i)
		if product == 0 {
			continue
		}
		contributions = append(contributions, Contribution{
			Term:      vocab.Term(i),
			Original:  original.Weight(i),
			Candidate: candidate.Weight(i),
			Product:   product,
		})
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Product > contributions[j].Product
	})
	if len(contributions) > limit {
		contributions = contributions[:limit]
	}
	return contributions
}
