package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docsim/internal/config"
	"docsim/internal/logging"
	"docsim/internal/pipeline"
	"docsim/internal/report"
	"docsim/internal/testsupport"
	"docsim/internal/textio"
	"docsim/internal/tokenizer"
)

// newComparer wires a Comparer from a test config the same way the CLI
// does, with the fixture segmenter standing in for the dictionary one.
func newComparer(t *testing.T, cfg *config.Config, dictWords ...string) *pipeline.Comparer {
	t.Helper()

	reader, err := textio.NewReader(cfg.Ingestion.Encodings)
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	comparer, err := pipeline.NewComparer(pipeline.Options{
		Reader:        reader,
		Writer:        report.NewWriter(),
		Tokenizer:     tokenizer.New(testsupport.NewSegmenter(dictWords...)),
		StopwordsPath: cfg.Paths.StopwordsFile,
		MaxFeatures:   cfg.Vectorizer.MaxFeatures,
		Logger:        logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewComparer returned error: %v", err)
	}
	return comparer
}

func TestRunIdenticalDocuments(t *testing.T) {
	dir := t.TempDir()
	text := "今天是星期天，天气晴，今天晚上我要去看电影。"
	original := testsupport.WriteDocument(t, dir, "original.txt", text)
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", text)
	resultPath := filepath.Join(dir, "result.txt")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords("是", "我", "要", "去"))
	comparer := newComparer(t, cfg, "今天", "星期天", "天气", "晚上", "电影", "看")

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
		ResultPath:    resultPath,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Formatted != "1.00" {
		t.Fatalf("expected score 1.00 for identical documents, got %q", result.Formatted)
	}
	if result.RunID == "" {
		t.Fatal("expected a run ID")
	}
	if result.OriginalTokens == 0 || result.CandidateTokens == 0 {
		t.Fatalf("expected tokens on both sides, got %d and %d", result.OriginalTokens, result.CandidateTokens)
	}
	if result.VocabularySize == 0 {
		t.Fatal("expected a non-empty vocabulary")
	}
	if result.StopwordCount != 4 {
		t.Fatalf("expected 4 stopwords loaded, got %d", result.StopwordCount)
	}
	if result.DegradedStopwords {
		t.Fatal("stopword loading should not degrade")
	}

	data, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	if got := string(data); got != "1.00\n" {
		t.Fatalf("unexpected result file content: %q", got)
	}
}

func TestRunAllStopwordCandidateScoresZero(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "人工智能是计算机科学的分支")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "的了在")
	resultPath := filepath.Join(dir, "result.txt")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords("的", "了", "在", "是"))
	comparer := newComparer(t, cfg, "人工智能", "计算机科学", "分支")

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
		ResultPath:    resultPath,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Formatted != "0.00" {
		t.Fatalf("expected score 0.00 against all-stopword candidate, got %q", result.Formatted)
	}
	if result.CandidateTokens != 0 {
		t.Fatalf("expected zero candidate tokens, got %d", result.CandidateTokens)
	}

	data, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	if got := string(data); got != "0.00\n" {
		t.Fatalf("unexpected result file content: %q", got)
	}
}

func TestRunEmptyDocumentsScoreZero(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "")
	resultPath := filepath.Join(dir, "result.txt")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
		ResultPath:    resultPath,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Formatted != "0.00" {
		t.Fatalf("expected score 0.00 for empty documents, got %q", result.Formatted)
	}
	if result.VocabularySize != 0 {
		t.Fatalf("expected empty vocabulary, got %d", result.VocabularySize)
	}
}

func TestRunPartialOverlapScoresBetweenZeroAndOne(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "apple banana cherry")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "apple banana grape")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Score <= 0 || result.Score >= 1 {
		t.Fatalf("expected partial overlap strictly between 0 and 1, got %v", result.Score)
	}

	reversed, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  candidate,
		CandidatePath: original,
	})
	if err != nil {
		t.Fatalf("reversed Run returned error: %v", err)
	}
	if reversed.Score != result.Score {
		t.Fatalf("expected symmetric scores, got %v vs %v", result.Score, reversed.Score)
	}
}

func TestRunGBKCandidate(t *testing.T) {
	dir := t.TempDir()
	text := "人工智能是计算机科学的分支"
	original := testsupport.WriteDocument(t, dir, "original.txt", text)
	candidate := testsupport.WriteGBKDocument(t, dir, "candidate.txt", text)

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords("是", "的"))
	comparer := newComparer(t, cfg, "人工智能", "计算机科学", "分支")

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Formatted != "1.00" {
		t.Fatalf("expected GBK candidate to decode to identical text, got score %q", result.Formatted)
	}
}

func TestRunDeterministic(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha beta gamma delta alpha")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha beta epsilon")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)
	req := pipeline.Request{OriginalPath: original, CandidatePath: candidate}

	first, err := comparer.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	second, err := comparer.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if first.Score != second.Score {
		t.Fatalf("scores differ across runs: %v vs %v", first.Score, second.Score)
	}
	if first.VocabularySize != second.VocabularySize {
		t.Fatalf("vocabulary sizes differ across runs: %d vs %d", first.VocabularySize, second.VocabularySize)
	}
	if first.RunID == second.RunID {
		t.Fatal("run IDs must be unique per run")
	}
}

func TestRunHonorsMaxFeatures(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha beta gamma")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha beta gamma")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords(), testsupport.WithMaxFeatures(2))
	comparer := newComparer(t, cfg)

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.VocabularySize != 2 {
		t.Fatalf("expected vocabulary capped at 2 terms, got %d", result.VocabularySize)
	}
	if result.Formatted != "1.00" {
		t.Fatalf("identical documents must still score 1.00 under a cap, got %q", result.Formatted)
	}
}

func TestRunMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "text")
	resultPath := filepath.Join(dir, "result.txt")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	_, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  filepath.Join(dir, "missing.txt"),
		CandidatePath: candidate,
		ResultPath:    resultPath,
	})
	if !errors.Is(err, pipeline.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
	if _, statErr := os.Stat(resultPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("result file must not be written on ingest failure")
	}
}

func TestRunUndecodableInputFails(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.txt")
	if err := os.WriteFile(invalid, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatalf("writing invalid fixture: %v", err)
	}
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "text")

	cfg := testsupport.NewConfig(t, testsupport.WithEncodings("utf-8"), testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	_, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  invalid,
		CandidatePath: candidate,
	})
	if !errors.Is(err, pipeline.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestRunMissingStopwordsDegrades(t *testing.T) {
	// No WithStopwords, so the configured stopword file does not exist.
	cfg := testsupport.NewConfig(t)
	dir := testsupport.BaseDir(cfg)
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha beta")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha beta")

	comparer := newComparer(t, cfg)

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.DegradedStopwords {
		t.Fatal("expected degraded stopword mode")
	}
	if result.StopwordCount != 0 {
		t.Fatalf("expected zero stopwords in degraded mode, got %d", result.StopwordCount)
	}
	if result.Formatted != "1.00" {
		t.Fatalf("degraded run must still score, got %q", result.Formatted)
	}
}

func TestRunScoreOnlyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	result, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Formatted != "1.00" {
		t.Fatalf("unexpected score: %q", result.Formatted)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading fixture directory: %v", err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("score-only run must not create files, found %v", names)
	}
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	// The result path is an existing directory, so the rename must fail.
	_, err := comparer.Run(context.Background(), pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
		ResultPath:    t.TempDir(),
	})
	if !errors.Is(err, pipeline.ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	original := testsupport.WriteDocument(t, dir, "original.txt", "alpha")
	candidate := testsupport.WriteDocument(t, dir, "candidate.txt", "alpha")

	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := comparer.Run(ctx, pipeline.Request{
		OriginalPath:  original,
		CandidatePath: candidate,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewComparerValidation(t *testing.T) {
	reader, err := textio.NewReader([]string{"utf-8"})
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	tok := tokenizer.New(testsupport.NewSegmenter())

	cases := []struct {
		name string
		opts pipeline.Options
	}{
		{"missing reader", pipeline.Options{Tokenizer: tok, MaxFeatures: 10}},
		{"missing tokenizer", pipeline.Options{Reader: reader, MaxFeatures: 10}},
		{"non-positive max features", pipeline.Options{Reader: reader, Tokenizer: tok}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := pipeline.NewComparer(tc.opts); !errors.Is(err, pipeline.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRunEmptyRequestPathsFail(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStopwords())
	comparer := newComparer(t, cfg)

	_, err := comparer.Run(context.Background(), pipeline.Request{})
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty request, got %v", err)
	}
}
