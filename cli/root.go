package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tracelog/analyzer/config"
	"github.com/tracelog/analyzer/input"
	"github.com/tracelog/analyzer/output"
	"github.com/tracelog/analyzer/state"
	"github.com/tracelog/analyzer/util"
)

var ErrUnsupportedMode = errors.New("unsupported analysis mode")

var supportedModes = []string{"DB"}

const (
	helpLogFile    = "Path to log file"
	helpTraceIDs   = "One or more trace IDs, comma-separated"
	helpFormat     = "Output format: "
	helpOutputFile = "Save output to file"
	helpSlowMs     = "Threshold for slow queries in ms"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type globalOptions struct {
	configFile string
	verbose    bool
	quiet      bool
}

type analysisOptions struct {
	mode       string
	slowMs     float64
	format     string
	outputFile string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "trace-analyzer",
		Short:         "Analyze logs by trace IDs. Default mode: DB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", os.Getenv("TRACE_ANALYZER_CONFIG"), "Path to config file with an [analyzer] section")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print details about the log scan to stderr")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print warnings and errors to stderr")

	rootCmd.AddCommand(
		newAnalyseCmd(opts),
		newListQueriesCmd(opts),
		newListSlowQueriesCmd(opts),
		newListDuplicateQueriesCmd(opts),
	)

	return rootCmd
}

func addOutputFlags(cmd *cobra.Command, aopts *analysisOptions) {
	cmd.Flags().StringVar(&aopts.format, "format", config.DefaultFormat, helpFormat+output.FormatNames())
	cmd.Flags().StringVar(&aopts.outputFile, "output-file", "", helpOutputFile)
}

func addSlowFlag(cmd *cobra.Command, aopts *analysisOptions) {
	cmd.Flags().Float64Var(&aopts.slowMs, "slow-ms", config.DefaultSlowThresholdMs, helpSlowMs)
}

// resolveConfig merges config file and environment defaults with the flags
// that were explicitly set on the command line
func resolveConfig(cmd *cobra.Command, opts *globalOptions, aopts *analysisOptions) (config.Config, *util.Logger, error) {
	logger := util.NewLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)

	conf, err := config.Read(logger, opts.configFile)
	if err != nil {
		return conf, logger, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		conf.Mode = aopts.mode
	}
	if flags.Changed("slow-ms") {
		conf.SlowThresholdMs = aopts.slowMs
	}
	if flags.Changed("format") {
		conf.Format = aopts.format
	}
	if flags.Changed("output-file") {
		conf.OutputFile = aopts.outputFile
	}
	if opts.verbose {
		conf.Verbose = true
	}
	if opts.quiet {
		conf.Quiet = true
	}
	logger.Verbose = conf.Verbose
	logger.Quiet = conf.Quiet

	return conf, logger, nil
}

// runAnalysis validates everything that doesn't need the log file first, so
// that bad arguments never cause any file I/O
func runAnalysis(cmd *cobra.Command, args []string, opts *globalOptions, aopts *analysisOptions, toRows func(state.AnalysisResult, config.Config) []output.Row) error {
	conf, logger, err := resolveConfig(cmd, opts, aopts)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(conf.Format)
	if err != nil {
		return err
	}

	mode := strings.ToUpper(conf.Mode)
	if !util.SliceContains(supportedModes, mode) {
		return errors.Wrapf(ErrUnsupportedMode, "%q: only DB mode is currently supported", conf.Mode)
	}

	traceIDs := util.SplitList(args[1])
	if len(traceIDs) == 0 {
		return errors.New("at least one trace ID is required")
	}

	result, err := input.AnalyzeLogFile(logger, args[0], traceIDs, conf.SlowThresholdMs)
	if err != nil {
		return err
	}

	content, err := output.Render(toRows(result, conf), format)
	if err != nil {
		return err
	}
	if err = output.WriteFile(conf.OutputFile, content); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
