package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bigs/graph"
	"github.com/katalvlaran/bigs/internal/logging"
	"github.com/katalvlaran/bigs/sampler"
)

var (
	variableDegree      int
	constraintDegree    int
	numberOfVariables   int
	numberOfConstraints int
	scalingFactor       int
	rngSeed             int64
	outputPath          string
	asJSON              bool
)

// sampleCmd draws one graph and renders it.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample one regular bipartite graph",
	Long: `Sample draws a single simple regular bipartite graph.

Node counts are given either explicitly (--numvar/--numconst, validated
against numvar·vardegree == numconst·constdegree) or through --scaling,
which derives balanced counts from the two degrees.

With --rngseed the generated graph is reproducible; without it a seed is
drawn from the clock and reported in the output.`,
	RunE: runSample,
}

func init() {
	flags := sampleCmd.Flags()
	flags.IntVarP(&variableDegree, "vardegree", "v", 3, "number of constraints connected to each variable")
	flags.IntVarP(&constraintDegree, "constdegree", "c", 3, "number of variables connected to each constraint")
	flags.IntVarP(&numberOfVariables, "numvar", "n", 3, "number of variables in the graph")
	flags.IntVarP(&numberOfConstraints, "numconst", "m", 3, "number of constraints in the graph")
	flags.IntVarP(&scalingFactor, "scaling", "s", 0, "derive node counts from the degrees times this factor")
	flags.Int64VarP(&rngSeed, "rngseed", "r", 0, "seed for the random number generator (default: from the clock)")
	flags.StringVarP(&outputPath, "output", "o", "", "write the result to this path instead of stdout (implies JSON)")
	flags.BoolVar(&asJSON, "json", false, "render the result as JSON")
}

// output is the rendered result: the sampling parameters, the seed that
// reproduces the graph, and the graph itself.
type output struct {
	NumberOfVariables   int          `json:"number_of_variables"`
	NumberOfConstraints int          `json:"number_of_constraints"`
	VariableDegree      int          `json:"variable_degree"`
	ConstraintDegree    int          `json:"constraint_degree"`
	RngSeed             int64        `json:"rng_seed"`
	Graph               *graph.Graph `json:"graph"`
}

func runSample(cmd *cobra.Command, args []string) error {
	b := sampler.NewBuilder().
		VariableDegree(variableDegree).
		ConstraintDegree(constraintDegree).
		NumberOfVariables(numberOfVariables).
		NumberOfConstraints(numberOfConstraints)
	if cmd.Flags().Changed("scaling") {
		b.ScalingFactor(scalingFactor)
	}

	s, err := b.Build()
	if err != nil {
		explainInvalidParameters(err)

		return err
	}

	seed := rngSeed
	if !cmd.Flags().Changed("rngseed") {
		seed = time.Now().UnixNano()
	}

	logging.L().Debug("sampling graph",
		zap.Int("variable_degree", s.VariableDegree()),
		zap.Int("constraint_degree", s.ConstraintDegree()),
		zap.Int("number_of_variables", s.NumberOfVariables()),
		zap.Int("number_of_constraints", s.NumberOfConstraints()),
		zap.Int64("rng_seed", seed),
	)

	start := time.Now()
	g := s.SampleWith(rand.New(rand.NewSource(seed)))
	logging.L().Debug("sampling done",
		zap.Int("edges", g.NumberOfEdges()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return render(output{
		NumberOfVariables:   g.NumberOfVariables(),
		NumberOfConstraints: g.NumberOfConstraints(),
		VariableDegree:      s.VariableDegree(),
		ConstraintDegree:    s.ConstraintDegree(),
		RngSeed:             seed,
		Graph:               g,
	})
}

// explainInvalidParameters spells out the balance equation with the caller's
// numbers, so the fix is obvious without reading any docs.
func explainInvalidParameters(err error) {
	var invalid *sampler.InvalidParametersError
	if !errors.As(err, &invalid) {
		return
	}
	fmt.Fprintln(os.Stderr, "Can't build a regular graph since n * v != m * c.")
	fmt.Fprintf(os.Stderr, "n = %d (number of variables)\n", invalid.NumberOfVariables)
	fmt.Fprintf(os.Stderr, "v = %d (variable's degree)\n", invalid.VariableDegree)
	fmt.Fprintf(os.Stderr, "m = %d (number of constraints)\n", invalid.NumberOfConstraints)
	fmt.Fprintf(os.Stderr, "c = %d (constraint's degree)\n", invalid.ConstraintDegree)
}

// render writes the result as JSON to a file when --output is set, as JSON
// to stdout with --json, or as text to stdout otherwise.
func render(out output) error {
	if outputPath == "" && !asJSON {
		fmt.Print(renderText(out))

		return nil
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)

		return err
	}
	if err = os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	logging.L().Info("saved output", zap.String("path", outputPath))

	return nil
}

// renderText renders the human-readable report: a parameter header followed
// by the edge list in the graph's enumeration order.
func renderText(out output) string {
	var sb strings.Builder
	sb.WriteString("Random graph\n============\n\n")
	fmt.Fprintf(&sb, "Number of variables: %d\n", out.NumberOfVariables)
	fmt.Fprintf(&sb, "Number of constraints: %d\n", out.NumberOfConstraints)
	fmt.Fprintf(&sb, "Variable degree: %d\n", out.VariableDegree)
	fmt.Fprintf(&sb, "Constraint degree: %d\n", out.ConstraintDegree)
	fmt.Fprintf(&sb, "Rng seed: %d\n\n", out.RngSeed)
	sb.WriteString("Graph\n-----\n")
	for _, e := range out.Graph.Edges() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
