// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/quantum-portfolio/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for quantum-portfolio.
type Configuration struct {
	Problem ProblemConfig `yaml:"problem,omitempty"`
	Solvers SolversConfig `yaml:"solvers,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// ProblemConfig controls problem-instance generation.
type ProblemConfig struct {
	NumSecurities int   `yaml:"numSecurities,omitempty"`
	Seed          int64 `yaml:"seed,omitempty"`
}

// SolversConfig controls solver selection and budgets.
type SolversConfig struct {
	Solver         string  `yaml:"solver,omitempty"` // classical, vqe, cvar, qaoa
	RunAll         bool    `yaml:"runAll,omitempty"`
	CVaRAlpha      float64 `yaml:"cvarAlpha,omitempty"`
	QAOALayers     int     `yaml:"qaoaLayers,omitempty"`
	VQEIterations  int     `yaml:"vqeIterations,omitempty"`
	QAOAIterations int     `yaml:"qaoaIterations,omitempty"`
	Shots          int     `yaml:"shots,omitempty"`
	AnnealReads    int     `yaml:"annealReads,omitempty"`
	AnnealSweeps   int     `yaml:"annealSweeps,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills zero-valued fields with the application defaults.
func (conf *Configuration) ApplyDefaults() {
	if conf.Problem.NumSecurities == 0 {
		conf.Problem.NumSecurities = constants.DefaultNumSecurities
	}
	if conf.Problem.Seed == 0 {
		conf.Problem.Seed = constants.DefaultSeed
	}
	if conf.Solvers.Solver == "" {
		conf.Solvers.Solver = constants.SolverClassical
	}
	if conf.Solvers.CVaRAlpha == 0 {
		conf.Solvers.CVaRAlpha = constants.DefaultCVaRAlpha
	}
	if conf.Solvers.QAOALayers == 0 {
		conf.Solvers.QAOALayers = constants.DefaultQAOALayers
	}
	if conf.Solvers.VQEIterations == 0 {
		conf.Solvers.VQEIterations = constants.DefaultVQEIterations
	}
	if conf.Solvers.QAOAIterations == 0 {
		conf.Solvers.QAOAIterations = constants.DefaultQAOAIterations
	}
	if conf.Solvers.Shots == 0 {
		conf.Solvers.Shots = constants.DefaultShots
	}
	if conf.Solvers.AnnealReads == 0 {
		conf.Solvers.AnnealReads = constants.DefaultAnnealReads
	}
	if conf.Solvers.AnnealSweeps == 0 {
		conf.Solvers.AnnealSweeps = constants.DefaultAnnealSweeps
	}
}

// Validate rejects configurations the solvers cannot run with.
func (conf *Configuration) Validate() error {
	if conf.Problem.NumSecurities <= 0 {
		return fmt.Errorf("numSecurities must be positive, got %d", conf.Problem.NumSecurities)
	}
	if !validSolver(conf.Solvers.Solver) {
		return fmt.Errorf("unknown solver %q (choose classical, vqe, cvar, or qaoa)", conf.Solvers.Solver)
	}
	if conf.Solvers.CVaRAlpha <= 0 || conf.Solvers.CVaRAlpha > 1 {
		return fmt.Errorf("cvarAlpha must be in (0, 1], got %v", conf.Solvers.CVaRAlpha)
	}
	if conf.Solvers.QAOALayers <= 0 {
		return fmt.Errorf("qaoaLayers must be positive, got %d", conf.Solvers.QAOALayers)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if conf.Problem.NumSecurities > 12 {
		warnings = append(warnings, fmt.Sprintf(
			"problem with %d securities needs a %d-qubit statevector; variational solvers will be slow",
			conf.Problem.NumSecurities, conf.Problem.NumSecurities+slackBits(conf.Problem.NumSecurities/2)))
	}
	if conf.Solvers.CVaRAlpha == 1 {
		warnings = append(warnings, "cvarAlpha of 1 averages the full batch; the cvar solver degenerates to a sampled expectation")
	}
	if conf.Solvers.Shots < constants.DefaultShots {
		warnings = append(warnings, fmt.Sprintf(
			"shot count %d is low; majority-vote extraction may be noisy", conf.Solvers.Shots))
	}
	return warnings
}

// ValidateOutputFormat rejects unknown output formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

func validSolver(name string) bool {
	switch name {
	case constants.SolverClassical, constants.SolverVQE, constants.SolverCVaR, constants.SolverQAOA:
		return true
	default:
		return false
	}
}

func slackBits(n int) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}
