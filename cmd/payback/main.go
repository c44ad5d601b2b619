// Command payback settles a set of participant balances read from CSV,
// printing the resulting transfers.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/paybacklab/payback/csvsource"
	"github.com/paybacklab/payback/logging"
	"github.com/paybacklab/payback/render"
	"github.com/paybacklab/payback/settle"
)

// errNoResult is the message a caller sees when a method proves the
// instance has no settlement; its wording matches the rest of this
// command's user-facing errors, not Go's usual lowercase convention.
var errNoResult = errors.New("No result was found.")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("payback", pflag.ContinueOnError)
	method := flags.StringP("method", "m", "", "solving method (default approx-star-expand)")
	output := flags.StringP("output", "o", "", "output format: transactions, dot, matrix (default transactions)")
	verbose := flags.BoolP("verbose", "v", false, "enable info-level logging")
	debug := flags.BoolP("debug", "d", false, "enable debug-level logging")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	switch {
	case *debug:
		logging.SetupWithLevel(slog.LevelDebug)
	case *verbose:
		logging.SetupWithLevel(slog.LevelInfo)
	default:
		logging.Setup()
	}

	// Positional args, in order, fill whichever of input/output/method the
	// matching flag left unset: `payback in.csv dot dp-star-expand` works
	// the same as `-o dot -m dp-star-expand in.csv`.
	inputPath := "-"
	positional := []string{}
	if flags.NArg() > 0 {
		inputPath = flags.Arg(0)
		positional = flags.Args()[1:]
	}
	outputName := *output
	methodName := *method
	for _, a := range positional {
		switch {
		case outputName == "" && isOutputFormat(a):
			outputName = a
		case methodName == "":
			methodName = a
		}
	}
	if outputName == "" {
		outputName = "transactions"
	}
	if methodName == "" {
		methodName = settle.ApproxStarExpand.String()
	}

	if err := settleAndPrint(inputPath, methodName, outputName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func isOutputFormat(s string) bool {
	switch s {
	case "transactions", "dot", "matrix":
		return true
	default:
		return false
	}
}

func settleAndPrint(inputPath, methodName, outputName string) error {
	m, err := settle.ParseMethod(methodName)
	if err != nil {
		return err
	}

	in := os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", inputPath, err)
		}
		defer f.Close()
		in = f
	}

	g, err := csvsource.Parse(in)
	if err != nil {
		return err
	}

	inst := settle.NewInstance(g)
	if m == settle.DPStarExpand || m == settle.DPGreedySatisfaction {
		if err := settle.CheckDPCapacity(g); err != nil {
			return err
		}
	}

	sol, ok := inst.Solve(m)
	if !ok {
		return errNoResult
	}

	slog.Info("settled", "method", m.String(), "participants", g.Count(), "transfers", len(sol))

	switch outputName {
	case "transactions":
		fmt.Print(render.Transactions(g, sol))
	case "dot":
		dot, err := render.DOT(g, sol)
		if err != nil {
			return err
		}
		fmt.Print(dot)
	case "matrix":
		fmt.Print(render.Matrix(g, sol))
	default:
		return fmt.Errorf("unknown output format %q", outputName)
	}
	return nil
}
