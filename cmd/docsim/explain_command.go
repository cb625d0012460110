package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"docsim/internal/pipeline"
	"docsim/internal/similarity"
)

type explainView struct {
	Score         float64                   `json:"score"`
	Formatted     string                    `json:"formatted_score"`
	Contributions []similarity.Contribution `json:"contributions"`
}

func newExplainCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "explain <original> <candidate>",
		Short: "Show the terms that drive a similarity score",
		Long: `Explain runs the comparison without writing a result file and lists
the vocabulary terms contributing most to the cosine score, with each
document's TF-IDF weight and the per-term product.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			originalPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve original path: %w", err)
			}
			candidatePath, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve candidate path: %w", err)
			}

			comparer, err := ctx.buildComparer()
			if err != nil {
				return err
			}
			result, err := comparer.Run(cmd.Context(), pipeline.Request{
				OriginalPath:  originalPath,
				CandidatePath: candidatePath,
			})
			if err != nil {
				return err
			}

			contributions := similarity.TopContributions(result.Vocabulary, result.OriginalVector, result.CandidateVector, top)
			if ctx.jsonWanted() {
				return writeJSON(cmd, explainView{
					Score:         result.Score,
					Formatted:     result.Formatted,
					Contributions: contributions,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Similarity: %s\n", renderScore(ctx, out, result.Score))
			if len(contributions) == 0 {
				fmt.Fprintln(out, "No shared terms contribute to the score.")
				return nil
			}

			rows := make([][]string, 0, len(contributions))
			for _, c := range contributions {
				rows = append(rows, []string{
					c.Term,
					strconv.FormatFloat(c.Original, 'f', 4, 64),
					strconv.FormatFloat(c.Candidate, 'f', 4, 64),
					strconv.FormatFloat(c.Product, 'f', 4, 64),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"TERM", "ORIGINAL", "CANDIDATE", "PRODUCT"}, rows, 1, 2, 3))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 15, "Number of contributing terms to show")
	return cmd
}
