package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"docsim/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderScore formats a score for terminal display. High similarity is the
// alarming outcome for a plagiarism check, so the color scale runs green,
// yellow, red as the score climbs.
func renderScore(ctx *commandContext, writer io.Writer, score float64) string {
	formatted := report.FormatScore(score)
	if !colorizeEnabled(ctx, writer) {
		return formatted
	}
	switch {
	case score >= 0.8:
		return ansiRed + formatted + ansiReset
	case score >= 0.5:
		return ansiYellow + formatted + ansiReset
	default:
		return ansiGreen + formatted + ansiReset
	}
}

func colorizeEnabled(ctx *commandContext, writer io.Writer) bool {
	if ctx.colorDisabled() {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return shouldColorize(writer)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
