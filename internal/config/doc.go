// Package config loads, normalizes, and validates docsim configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DOCSIM_STOPWORDS. The Config type centralizes every knob the CLI needs:
// stopword and log locations, the ingestion encoding chain, segmenter
// behavior, and the vocabulary bound.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical encoding names, and clear validation errors.
package config
