package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

var (
	// ErrNotFound marks a document path that does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrNotFile marks a path that exists but is not a regular file.
	ErrNotFile = errors.New("not a regular file")
	// ErrDecode marks bytes that no configured encoding could decode.
	ErrDecode = errors.New("document not decodable with configured encodings")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var decoders = map[string]encoding.Encoding{
	"gbk":     simplifiedchinese.GBK,
	"gb18030": simplifiedchinese.GB18030,
	"big5":    traditionalchinese.Big5,
}

// Document is one ingested text file. Text is always valid UTF-8 regardless
// of the on-disk encoding; Encoding records which decoder succeeded.
type Document struct {
	Path     string
	Text     string
	Encoding string
}

// Reader decodes documents through an ordered encoding chain.
type Reader struct {
	encodings []string
}

// NewReader validates the encoding names and returns a Reader that tries
// them in order. Supported names: utf-8 (also utf8), gbk, gb18030, big5.
func NewReader(encodings []string) (*Reader, error) {
	if len(encodings) == 0 {
		return nil, errors.New("at least one encoding is required")
	}
	chain := make([]string, 0, len(encodings))
	for _, name := range encodings {
		switch name {
		case "utf-8", "utf8":
		default:
			if _, ok := decoders[name]; !ok {
				return nil, fmt.Errorf("unsupported encoding %q", name)
			}
		}
		chain = append(chain, name)
	}
	return &Reader{encodings: chain}, nil
}

// Read loads and decodes the document at path. An empty file is a valid
// empty document, not an error.
func (r *Reader) Read(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		return Document{}, fmt.Errorf("%s: %w", path, ErrNotFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	text, encodingName, err := r.decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return Document{Path: path, Text: text, Encoding: encodingName}, nil
}

func (r *Reader) decode(data []byte) (string, string, error) {
	for _, name := range r.encodings {
		switch name {
		case "utf-8", "utf8":
			if utf8.Valid(data) {
				return string(bytes.TrimPrefix(data, utf8BOM)), "utf-8", nil
			}
		default:
			decoded, err := decoders[name].NewDecoder().Bytes(data)
			if err != nil {
				continue
			}
			return string(decoded), name, nil
		}
	}
	return "", "", ErrDecode
}
