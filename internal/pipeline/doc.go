// Package pipeline orchestrates a document comparison run: ingest the
// two documents, tokenize, vectorize, score, and optionally persist
// the result file.
package pipeline
