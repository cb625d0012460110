// Package report formats similarity scores and persists them to
// result files.
package report
