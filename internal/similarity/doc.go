// Package similarity computes cosine similarity between TF-IDF weight
// vectors and reports which terms drive a score.
package similarity
