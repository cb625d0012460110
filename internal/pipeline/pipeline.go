package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docsim/internal/logging"
	"docsim/internal/report"
	"docsim/internal/similarity"
	"docsim/internal/stopwords"
	"docsim/internal/textio"
	"docsim/internal/tokenizer"
	"docsim/internal/vectorizer"
)

// DocumentReader loads a document from disk.
type DocumentReader interface {
	Read(path string) (textio.Document, error)
}

// ResultWriter persists a similarity score to a result file.
type ResultWriter interface {
	Write(path string, score float64) error
}

// Request names the documents to compare. An empty ResultPath runs the
// comparison score-only without touching the filesystem for output.
type Request struct {
	OriginalPath  string
	CandidatePath string
	ResultPath    string
}

// Result captures everything a single comparison run produced.
type Result struct {
	RunID             string        `json:"run_id"`
	OriginalPath      string        `json:"original_path"`
	CandidatePath     string        `json:"candidate_path"`
	ResultPath        string        `json:"result_path,omitempty"`
	Score             float64       `json:"score"`
	Formatted         string        `json:"formatted_score"`
	OriginalTokens    int           `json:"original_tokens"`
	CandidateTokens   int           `json:"candidate_tokens"`
	VocabularySize    int           `json:"vocabulary_size"`
	StopwordCount     int           `json:"stopword_count"`
	DegradedStopwords bool          `json:"degraded_stopwords"`
	Elapsed           time.Duration `json:"elapsed_ns"`

	Vocabulary      vectorizer.Vocabulary   `json:"-"`
	OriginalVector  vectorizer.WeightVector `json:"-"`
	CandidateVector vectorizer.WeightVector `json:"-"`
}

// Options wires the collaborators a Comparer needs.
type Options struct {
	Reader        DocumentReader
	Writer        ResultWriter
	Tokenizer     *tokenizer.Tokenizer
	StopwordsPath string
	MaxFeatures   int
	Logger        *slog.Logger
}

// Comparer runs document comparisons.
type Comparer struct {
	reader        DocumentReader
	writer        ResultWriter
	tokenizer     *tokenizer.Tokenizer
	builder       *vectorizer.Builder
	stopwordsPath string
	logger        *slog.Logger
}

// NewComparer validates the options and returns a ready Comparer. The
// writer may be nil for callers that only ever run score-only requests.
func NewComparer(opts Options) (*Comparer, error) {
	if opts.Reader == nil {
		return nil, Wrap(ErrValidation, "setup", "new comparer", "document reader is required", nil)
	}
	if opts.Tokenizer == nil {
		return nil, Wrap(ErrValidation, "setup", "new comparer", "tokenizer is required", nil)
	}
	builder, err := vectorizer.NewBuilder(opts.MaxFeatures)
	if err != nil {
		return nil, Wrap(ErrValidation, "setup", "new comparer", "", err)
	}
	return &Comparer{
		reader:        opts.Reader,
		writer:        opts.Writer,
		tokenizer:     opts.Tokenizer,
		builder:       builder,
		stopwordsPath: opts.StopwordsPath,
		logger:        logging.NewComponentLogger(opts.Logger, "pipeline"),
	}, nil
}

// Run executes one comparison. Ingest and report failures abort the run
// with a tagged error; tokenize, vectorize, and score cannot fail. A
// missing stopword list degrades the run instead of failing it.
func (c *Comparer) Run(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	result := Result{
		RunID:         uuid.NewString(),
		OriginalPath:  req.OriginalPath,
		CandidatePath: req.CandidatePath,
		ResultPath:    req.ResultPath,
	}
	logger := c.logger.With(logging.String(logging.FieldRunID, result.RunID))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if req.OriginalPath == "" {
		return result, Wrap(ErrValidation, "ingest", "read original document", "path is required", nil)
	}
	if req.CandidatePath == "" {
		return result, Wrap(ErrValidation, "ingest", "read candidate document", "path is required", nil)
	}

	stop := c.loadStopwords(logger, &result)

	original, err := c.reader.Read(req.OriginalPath)
	if err != nil {
		return result, wrapReadError("original document", req.OriginalPath, err)
	}
	candidate, err := c.reader.Read(req.CandidatePath)
	if err != nil {
		return result, wrapReadError("candidate document", req.CandidatePath, err)
	}
	logger.Debug("documents ingested",
		logging.String(logging.FieldStage, "ingest"),
		logging.String("original_encoding", original.Encoding),
		logging.String("candidate_encoding", candidate.Encoding))

	originalTokens := c.tokenizer.Tokenize(original.Text, stop)
	candidateTokens := c.tokenizer.Tokenize(candidate.Text, stop)
	result.OriginalTokens = len(originalTokens)
	result.CandidateTokens = len(candidateTokens)
	logger.Debug("documents tokenized",
		logging.String(logging.FieldStage, "tokenize"),
		logging.Int("original_tokens", result.OriginalTokens),
		logging.Int("candidate_tokens", result.CandidateTokens))

	vocab, originalVec, candidateVec := c.builder.Build(originalTokens, candidateTokens)
	result.VocabularySize = vocab.Len()
	result.Vocabulary = vocab
	result.OriginalVector = originalVec
	result.CandidateVector = candidateVec
	logger.Debug("vectors built",
		logging.String(logging.FieldStage, "vectorize"),
		logging.Int("vocabulary_size", result.VocabularySize))

	result.Score = similarity.Cosine(originalVec, candidateVec)
	result.Formatted = report.FormatScore(result.Score)

	if req.ResultPath != "" {
		if c.writer == nil {
			return result, Wrap(ErrValidation, "report", "write result", "result writer is required", nil)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := c.writer.Write(req.ResultPath, result.Score); err != nil {
			return result, Wrap(ErrWrite, "report", "write result", req.ResultPath, err)
		}
	}

	result.Elapsed = time.Since(start)
	logger.Info("comparison complete",
		logging.String("original", req.OriginalPath),
		logging.String("candidate", req.CandidatePath),
		logging.String("score", result.Formatted),
		logging.Int("vocabulary_size", result.VocabularySize),
		logging.Duration("elapsed", result.Elapsed))

	return result, nil
}

// loadStopwords loads the configured stopword list. Failure is a
// degraded mode, not an error: the run proceeds with an empty set.
func (c *Comparer) loadStopwords(logger *slog.Logger, result *Result) stopwords.Set {
	stop, err := stopwords.Load(c.stopwordsPath)
	if err != nil {
		result.DegradedStopwords = true
		logging.WarnWithContext(logger, "stopword list unavailable", "stopwords_unavailable",
			logging.String("path", c.stopwordsPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run `docsim config init` to seed a starter stopword list"),
			logging.String(logging.FieldImpact, "comparison proceeds without stopword filtering"))
		return stopwords.Empty()
	}
	result.StopwordCount = stop.Len()
	logger.Debug("stopwords loaded",
		logging.String("path", c.stopwordsPath),
		logging.Int("count", stop.Len()))
	return stop
}

func wrapReadError(role, path string, err error) error {
	marker := ErrInput
	if errors.Is(err, textio.ErrDecode) {
		marker = ErrDecode
	}
	return Wrap(marker, "ingest", "read "+role, path, err)
}
