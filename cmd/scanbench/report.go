package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/scanbench/internal/config"
	"github.com/nao1215/scanbench/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate comparison reports from benchmark artifacts",
		Long: `Report parses the profiling artifacts captured during a benchmark run,
merges them with the run manifest (summary.json), and writes:

- comparison_table.md          Markdown comparison table
- detailed_research_report.txt Fixed-width plain-text report
- time_comparison.png          Grouped bar chart of scan times
- memory_comparison.png        Grouped bar chart of peak memory
- cpu_comparison.png           Grouped bar chart of CPU utilization
- architecture_diagram.png     Architecture diagram

Missing artifacts degrade gracefully: absent measurements render as
placeholders, and a missing manifest switches the report to degraded mode.
The run fails only when neither the manifest nor any artifact is readable.

Examples:
  # Generate reports from the default benchmark_results directory
  scanbench report

  # Read artifacts from a custom directory and write next to it
  scanbench report -r ./results -o ./results/reports

  # Echo the plain-text report to stdout as well
  scanbench report --print

  # Use a custom configuration file
  scanbench report -c mybench.yaml`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("results", "r", "",
		"Directory containing benchmark artifacts (default: benchmark_results)")
	cmd.Flags().StringP("output", "o", "",
		"Directory to write reports into (default: XDG data directory)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .scanbench in current or home directory)")
	cmd.Flags().BoolP("print", "p", false,
		"Also print the plain-text report to stdout")
	cmd.Flags().IntP("parallel", "P", config.DefaultParallelism,
		"Number of artifacts parsed concurrently")
	cmd.Flags().StringP("baseline", "b", "",
		"Tool key used as the denominator for speed ratios (default: nmap)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReport(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence: defaults < config file < flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPathFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPathFlag

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg)
	} else if configPathFlag != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPathFlag)
	}

	resultsDir, err := cmd.Flags().GetString("results")
	if err != nil {
		return nil, err
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}

	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.XDGOutputDir()
	}

	cfg.EchoText, err = cmd.Flags().GetBool("print")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("parallel") {
		cfg.Parallelism, err = cmd.Flags().GetInt("parallel")
		if err != nil {
			return nil, err
		}
	}

	baseline, err := cmd.Flags().GetString("baseline")
	if err != nil {
		return nil, err
	}
	if baseline != "" {
		cfg.Baseline = baseline
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runReport executes the report generation.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("generating reports",
		"resultsDir", cfg.ResultsDir,
		"outputDir", cfg.OutputDir,
		"targets", len(cfg.Targets),
		"parallelism", cfg.Parallelism,
	)

	g := pipeline.NewGenerator(cfg, pipeline.WithGeneratorLogger(logger))
	if err := g.Run(ctx); err != nil {
		return err
	}

	fmt.Printf("Reports written to %s\n", cfg.OutputDir)
	return nil
}
