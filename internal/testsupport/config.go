package testsupport

import (
	"path/filepath"
	"testing"

	"docsim/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options. The stopword
// file is NOT created; tests that want a populated list use WithStopwords.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StopwordsFile = filepath.Join(base, "stopwords.txt")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMaxFeatures overrides the vocabulary bound on the test config.
func WithMaxFeatures(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Vectorizer.MaxFeatures = n
	}
}

// WithEncodings overrides the ingestion encoding chain on the test config.
func WithEncodings(encodings ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingestion.Encodings = encodings
	}
}

// WithStopwords writes the provided terms to the config's stopword path,
// one per line.
func WithStopwords(terms ...string) ConfigOption {
	return func(b *configBuilder) {
		WriteStopwords(b.t, b.cfg.Paths.StopwordsFile, terms...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StopwordsFile)
}
