package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/iwvelando/quantum-portfolio/internal/analysis"
	"github.com/iwvelando/quantum-portfolio/internal/config"
	"github.com/iwvelando/quantum-portfolio/internal/portfolio"
	"github.com/iwvelando/quantum-portfolio/internal/quantum"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/internal/solver"
	"github.com/iwvelando/quantum-portfolio/pkg/constants"
	"github.com/iwvelando/quantum-portfolio/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	solverFlag := flag.String("solver", "", "solver override: classical, vqe, cvar, qaoa")
	runAll := flag.Bool("run-all", false, "run all available solvers")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config values
	if *solverFlag != "" {
		conf.Solvers.Solver = *solverFlag
	}
	if *runAll {
		conf.Solvers.RunAll = true
	}
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = config.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Display any configuration warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Generate the problem instance and encode it.
	rng := rand.New(rand.NewSource(conf.Problem.Seed))
	params, err := portfolio.Generate(conf.Problem.NumSecurities, rng)
	if err != nil {
		logger.Fatal("failed to generate problem parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	model, err := qubo.Build(params)
	if err != nil {
		logger.Fatal("failed to build QUBO model",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("QUBO model built",
		zap.String("op", "main"),
		zap.Int("securities", params.Securities),
		zap.Int("maxSelected", params.MaxSelected),
		zap.Int("variables", model.NumVariables()),
		zap.Float64("penalty", model.PenaltyWeight),
	)

	// All solvers share the oracle and the seeded generator, so a fixed
	// seed reproduces the whole run.
	oracle := quantum.NewSimulator(rng)
	solvers := []solver.Solver{
		solver.NewClassical(logger, conf.Solvers.AnnealReads, conf.Solvers.AnnealSweeps, rng),
		solver.NewVQE(logger, oracle, conf.Solvers.VQEIterations, conf.Solvers.Shots, rng),
		solver.NewCVaRVQE(logger, oracle, conf.Solvers.CVaRAlpha, conf.Solvers.VQEIterations, conf.Solvers.Shots, rng),
		solver.NewQAOA(logger, oracle, conf.Solvers.QAOALayers, conf.Solvers.QAOAIterations, conf.Solvers.Shots, rng),
	}

	var results []analysis.Metrics
	for _, s := range solvers {
		if !conf.Solvers.RunAll && s.Name() != conf.Solvers.Solver {
			continue
		}

		start := time.Now()
		solution, history, err := s.Solve(model)
		elapsed := time.Since(start)
		if err != nil {
			logger.Fatal("solve failed",
				zap.String("op", "main"),
				zap.String("solver", s.Name()),
				zap.Error(err),
			)
		}

		metrics, err := analysis.Analyze(s.Name(), solution, model, params, history, elapsed)
		if err != nil {
			logger.Fatal("failed to analyze solution",
				zap.String("op", "main"),
				zap.String("solver", s.Name()),
				zap.Error(err),
			)
		}
		results = append(results, metrics)

		logger.Info("solver finished",
			zap.String("op", "main"),
			zap.String("solver", s.Name()),
			zap.Duration("runtime", elapsed),
			zap.Float64("objective", metrics.Objective),
			zap.Bool("constraintSatisfied", metrics.ConstraintSatisfied),
		)
		if outputFormat == constants.OutputFormatPretty {
			output.PrettySolution(s.Name(), solution)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
