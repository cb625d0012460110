package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsim/internal/pipeline"
	"docsim/internal/version"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var jsonFlag bool
	var noColorFlag bool

	ctx := newCommandContext(&configFlag, &jsonFlag, &noColorFlag)

	rootCmd := &cobra.Command{
		Use:   "docsim <original> <candidate> <result>",
		Short: "Offline document similarity checker",
		Long: `Docsim compares two text documents and reports a TF-IDF cosine
similarity score between 0.00 and 1.00. The two-decimal score is written
to the result path and echoed to the terminal.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          compareArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, ctx, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newExplainCommand(ctx))
	rootCmd.AddCommand(newTokensCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// compareArgs enforces the three positional arguments of a comparison run.
// Anything else prints usage to stderr and aborts before the pipeline
// starts, so no result file is ever written for malformed invocations.
func compareArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return fmt.Errorf("expected 3 arguments: <original> <candidate> <result>, got %d", len(args))
	}
	return nil
}

func runCompare(cmd *cobra.Command, ctx *commandContext, args []string) error {
	originalPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve original path: %w", err)
	}
	candidatePath, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolve candidate path: %w", err)
	}
	resultPath, err := filepath.Abs(args[2])
	if err != nil {
		return fmt.Errorf("resolve result path: %w", err)
	}

	comparer, err := ctx.buildComparer()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !ctx.jsonWanted() {
		fmt.Fprintf(out, "Original:  %s\n", originalPath)
		fmt.Fprintf(out, "Candidate: %s\n", candidatePath)
		fmt.Fprintf(out, "Result:    %s\n", resultPath)
	}

	result, err := comparer.Run(cmd.Context(), pipeline.Request{
		OriginalPath:  originalPath,
		CandidatePath: candidatePath,
		ResultPath:    resultPath,
	})
	if err != nil {
		return err
	}

	if ctx.jsonWanted() {
		return writeJSON(cmd, result)
	}

	fmt.Fprintf(out, "Similarity: %s\n", renderScore(ctx, out, result.Score))
	if result.DegradedStopwords {
		fmt.Fprintln(out, "Note: stopword list unavailable; compared without stopword filtering")
	}
	return nil
}
