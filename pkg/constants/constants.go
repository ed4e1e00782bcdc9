// Package constants provides shared constants for the quantum-portfolio application.
package constants

// Problem defaults
const (
	// DefaultNumSecurities is the number of securities generated when the
	// configuration does not specify a problem size.
	DefaultNumSecurities = 4

	// DefaultSeed is the random seed used for problem generation and
	// parameter initialization when none is configured.
	DefaultSeed = 42
)

// Solver defaults
const (
	// DefaultShots is the measurement repetition count used to extract the
	// final solution from a variational state.
	DefaultShots = 1000

	// CVaRSampleShots is the per-evaluation sample count for the
	// tail-aggregated cost policy.
	CVaRSampleShots = 200

	// DefaultCVaRAlpha is the tail fraction for the risk-averse solver.
	DefaultCVaRAlpha = 0.2

	// DefaultVQEIterations is the evaluation budget for the VQE variants.
	DefaultVQEIterations = 150

	// DefaultQAOAIterations is the evaluation budget for the
	// alternating-operator solver.
	DefaultQAOAIterations = 100

	// DefaultQAOALayers is the layer count p for the alternating-operator
	// ansatz.
	DefaultQAOALayers = 2

	// DefaultAnnealReads is the restart count for the classical baseline
	// sampler.
	DefaultAnnealReads = 100

	// DefaultAnnealSweeps is the Metropolis sweep count per annealing read.
	DefaultAnnealSweeps = 1000
)

// Numeric constants
const (
	// CoefficientTolerance is the magnitude below which Ising terms are
	// treated as floating-point noise and pruned.
	CoefficientTolerance = 1e-9
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Solver name constants
const (
	SolverClassical = "classical"
	SolverVQE       = "vqe"
	SolverCVaR      = "cvar"
	SolverQAOA      = "qaoa"
)
