package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// FormatScore renders a similarity score the way result files store
// it: two decimal places, so 0.8547 becomes "0.85".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// Writer persists similarity scores as plain-text result files.
type Writer struct{}

// NewWriter returns a result writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the formatted score at path, creating parent
// directories as needed. The file content is the two-decimal score
// followed by a newline.
func (w *Writer) Write(path string, score float64) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create result directory: %w", err)
	}

	// Write atomically via temp file so a failed run never leaves a
	// half-written result behind.
	tmpPath := path + ".tmp"
	data := []byte(FormatScore(score) + "\n")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
