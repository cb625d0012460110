// Package main hosts the docsim CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into document
// comparison runs, score explanations, tokenization inspections, and
// configuration scaffolding. It centralizes configuration resolution,
// segmenter construction, and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
