package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// WriteDocument writes a UTF-8 document under dir and returns its path.
func WriteDocument(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteGBKDocument writes content re-encoded as GBK under dir and returns
// its path. Used to exercise the ingestion fallback the way legacy corpus
// files would.
func WriteGBKDocument(t testing.TB, dir, name, content string) string {
	t.Helper()

	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(content))
	if err != nil {
		t.Fatalf("encode gbk fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteStopwords writes terms to path, one per line.
func WriteStopwords(t testing.TB, path string, terms ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(terms, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
