// Package output provides utilities for formatting and displaying solver
// comparison results.
package output

import (
	"fmt"
	"sort"
	"time"

	"github.com/iwvelando/quantum-portfolio/internal/analysis"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []analysis.Metrics) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Solver    | Objective     | Selected | Constraint | Evaluations | Runtime\n")
	fmt.Printf("______    | _____________ | ________ | __________ | ___________ | _______\n")
	for _, result := range results {
		constraint := "satisfied"
		if !result.ConstraintSatisfied {
			constraint = "VIOLATED"
		}
		_, _ = p.Printf("%-9s | %13.4f | %3d / %-2d | %-10s | %11d | %s\n",
			result.Solver,
			result.Objective,
			result.SelectedCount,
			result.MaxSelected,
			constraint,
			result.Evaluations,
			result.Runtime.Round(time.Millisecond),
		)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []analysis.Metrics) {
	fmt.Printf("\"solver\",\"objective\",\"bestEnergy\",\"selected\",\"maxSelected\",\"constraintSatisfied\",\"evaluations\",\"runtimeSeconds\"\n")
	for _, result := range results {
		fmt.Printf("\"%s\",\"%.6f\",\"%.6f\",\"%d\",\"%d\",\"%t\",\"%d\",\"%.3f\"\n",
			result.Solver,
			result.Objective,
			result.BestEnergy,
			result.SelectedCount,
			result.MaxSelected,
			result.ConstraintSatisfied,
			result.Evaluations,
			result.Runtime.Seconds(),
		)
	}
}

// PrettySolution prints the variable assignment of one solution in
// canonical variable order.
func PrettySolution(name string, sol qubo.Solution) {
	variables := make([]string, 0, len(sol))
	for v := range sol {
		variables = append(variables, v)
	}
	sort.Strings(variables)
	fmt.Printf("--- %s solution ---\n", name)
	for _, v := range variables {
		fmt.Printf("  %s = %d\n", v, sol[v])
	}
}
