package textio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"

	"docsim/internal/textio"
)

func newReader(t *testing.T, encodings ...string) *textio.Reader {
	t.Helper()
	reader, err := textio.NewReader(encodings)
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	return reader
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadUTF8(t *testing.T) {
	reader := newReader(t, "utf-8", "gbk")
	path := writeFile(t, "a.txt", []byte("人工智能是计算机科学的分支"))

	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if doc.Text != "人工智能是计算机科学的分支" {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
	if doc.Encoding != "utf-8" {
		t.Fatalf("unexpected encoding: %q", doc.Encoding)
	}
}

func TestReadStripsUTF8BOM(t *testing.T) {
	reader := newReader(t, "utf-8")
	path := writeFile(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...))

	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if doc.Text != "hello" {
		t.Fatalf("expected BOM stripped, got %q", doc.Text)
	}
}

func TestReadFallsBackToGBK(t *testing.T) {
	const text = "测试GBK编码的文本内容：中文测试"
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	reader := newReader(t, "utf-8", "gbk")
	path := writeFile(t, "gbk.txt", raw)

	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if doc.Text != text {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
	if doc.Encoding != "gbk" {
		t.Fatalf("unexpected encoding: %q", doc.Encoding)
	}
}

func TestReadEmptyFileIsEmptyDocument(t *testing.T) {
	reader := newReader(t, "utf-8", "gbk")
	path := writeFile(t, "empty.txt", nil)

	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if doc.Text != "" {
		t.Fatalf("expected empty text, got %q", doc.Text)
	}
}

func TestReadMissingPath(t *testing.T) {
	reader := newReader(t, "utf-8")

	_, err := reader.Read(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !errors.Is(err, textio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadDirectoryRejected(t *testing.T) {
	reader := newReader(t, "utf-8")

	_, err := reader.Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory path")
	}
	if !errors.Is(err, textio.ErrNotFile) {
		t.Fatalf("expected ErrNotFile, got %v", err)
	}
}

func TestReadUndecodableWithoutFallback(t *testing.T) {
	reader := newReader(t, "utf-8")
	path := writeFile(t, "junk.bin", []byte{0xFF, 0xFE, 0xFD})

	_, err := reader.Read(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, textio.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestReadInvalidBytesWithGBKFallbackNeverFails(t *testing.T) {
	reader := newReader(t, "utf-8", "gbk")
	path := writeFile(t, "junk.bin", []byte{0xFF, 0xFE, 0xFD, 0x41})

	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if doc.Encoding != "gbk" {
		t.Fatalf("expected gbk decode, got %q", doc.Encoding)
	}
	if doc.Text == "" {
		t.Fatal("expected replacement-rune text, got empty string")
	}
}

func TestNewReaderRejectsUnknownEncoding(t *testing.T) {
	if _, err := textio.NewReader([]string{"koi8-r"}); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestNewReaderRequiresEncodings(t *testing.T) {
	if _, err := textio.NewReader(nil); err == nil {
		t.Fatal("expected error for empty encoding chain")
	}
}
