package cli

import (
	"github.com/spf13/cobra"

	"github.com/tracelog/analyzer/config"
	"github.com/tracelog/analyzer/logs"
	"github.com/tracelog/analyzer/output"
	"github.com/tracelog/analyzer/state"
)

func newAnalyseCmd(opts *globalOptions) *cobra.Command {
	aopts := &analysisOptions{}
	cmd := &cobra.Command{
		Use:     "analyse <log-file> <trace-ids>",
		Aliases: []string{"analyze"},
		Short:   "Analyse logs and generate summary statistics",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, opts, aopts, func(result state.AnalysisResult, _ config.Config) []output.Row {
				return output.SummaryRows(result.Summaries)
			})
		},
	}
	cmd.Flags().StringVar(&aopts.mode, "mode", config.DefaultMode, "Analysis mode (DB)")
	addSlowFlag(cmd, aopts)
	addOutputFlags(cmd, aopts)
	return cmd
}

func newListQueriesCmd(opts *globalOptions) *cobra.Command {
	aopts := &analysisOptions{}
	cmd := &cobra.Command{
		Use:   "list-queries <log-file> <trace-ids>",
		Short: "List all queries for the given trace IDs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, opts, aopts, func(result state.AnalysisResult, _ config.Config) []output.Row {
				return output.QueryRows(result.Queries)
			})
		},
	}
	addOutputFlags(cmd, aopts)
	return cmd
}

func newListSlowQueriesCmd(opts *globalOptions) *cobra.Command {
	aopts := &analysisOptions{}
	cmd := &cobra.Command{
		Use:   "list-slow-queries <log-file> <trace-ids>",
		Short: "List all slow queries for the given trace IDs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, opts, aopts, func(result state.AnalysisResult, conf config.Config) []output.Row {
				return output.SlowQueryRows(logs.FindSlowQueries(result.Queries, conf.SlowThresholdMs))
			})
		},
	}
	addSlowFlag(cmd, aopts)
	addOutputFlags(cmd, aopts)
	return cmd
}

func newListDuplicateQueriesCmd(opts *globalOptions) *cobra.Command {
	aopts := &analysisOptions{}
	cmd := &cobra.Command{
		Use:   "list-duplicate-queries <log-file> <trace-ids>",
		Short: "List all duplicate queries for the given trace IDs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, opts, aopts, func(result state.AnalysisResult, _ config.Config) []output.Row {
				return output.DuplicateRows(logs.FindDuplicateQueries(logs.FilterByTrace(result.Queries, result.TraceIDs)))
			})
		},
	}
	addOutputFlags(cmd, aopts)
	return cmd
}
