package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"docsim/internal/stopwords"
	"docsim/internal/textio"
	"docsim/internal/tokenizer"
)

type termCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type tokensView struct {
	Path        string      `json:"path"`
	Encoding    string      `json:"encoding"`
	TotalTokens int         `json:"total_tokens"`
	UniqueTerms int         `json:"unique_terms"`
	Terms       []termCount `json:"terms"`
}

func newTokensCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tokens <path>",
		Short: "Tokenize one document and show its term frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve document path: %w", err)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			seg, err := ctx.ensureSegmenter()
			if err != nil {
				return err
			}
			reader, err := textio.NewReader(cfg.Ingestion.Encodings)
			if err != nil {
				return err
			}

			doc, err := reader.Read(path)
			if err != nil {
				return err
			}

			degraded := false
			stop, err := stopwords.Load(cfg.Paths.StopwordsFile)
			if err != nil {
				degraded = true
				stop = stopwords.Empty()
			}

			tokens := tokenizer.New(seg).Tokenize(doc.Text, stop)
			counts := countTerms(tokens)
			unique := len(counts)
			if limit > 0 && len(counts) > limit {
				counts = counts[:limit]
			}

			if ctx.jsonWanted() {
				return writeJSON(cmd, tokensView{
					Path:        path,
					Encoding:    doc.Encoding,
					TotalTokens: len(tokens),
					UniqueTerms: unique,
					Terms:       counts,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Document: %s (%s)\n", path, doc.Encoding)
			fmt.Fprintf(out, "Tokens: %d total, %d unique\n", len(tokens), unique)
			if degraded {
				fmt.Fprintln(out, "Note: stopword list unavailable; tokens are unfiltered")
			}
			if len(counts) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(counts))
			for _, tc := range counts {
				rows = append(rows, []string{tc.Term, strconv.Itoa(tc.Count)})
			}
			fmt.Fprintln(out, renderTable([]string{"TERM", "COUNT"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of terms to show")
	return cmd
}

// countTerms tallies tokens into (term, count) pairs sorted by count
// descending, first appearance breaking ties.
func countTerms(tokens []string) []termCount {
	index := make(map[string]int, len(tokens))
	counts := make([]termCount, 0, len(tokens))
	for _, token := range tokens {
		if i, ok := index[token]; ok {
			counts[i].Count++
			continue
		}
		index[token] = len(counts)
		counts = append(counts, termCount{Term: token, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
