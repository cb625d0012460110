package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"docsim/internal/report"
)

func TestFormatScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{0.8547, "0.85"},
		{0.855, "0.85"},
		{0.999, "1.00"},
		{0.005, "0.01"},
	}
	for _, tc := range cases {
		if got := report.FormatScore(tc.score); got != tc.want {
			t.Fatalf("FormatScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestWriterWritesFormattedScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	if err := report.NewWriter().Write(path, 0.8547); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	if got := string(data); got != "0.85\n" {
		t.Fatalf("unexpected result content: %q", got)
	}
}

func TestWriterCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "result.txt")

	if err := report.NewWriter().Write(path, 1); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	if got := string(data); got != "1.00\n" {
		t.Fatalf("unexpected result content: %q", got)
	}
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seeding existing file: %v", err)
	}

	if err := report.NewWriter().Write(path, 0.5); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	if got := string(data); got != "0.50\n" {
		t.Fatalf("unexpected result content: %q", got)
	}
}

func TestWriterFailsWhenTargetIsDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := report.NewWriter().Write(dir, 0.5); err == nil {
		t.Fatal("expected error when target path is a directory")
	}
}

func TestWriterLeavesNoTempFileBehind(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "result.txt")

	if err := report.NewWriter().Write(path, 0.25); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("reading result directory: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "result.txt" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}
