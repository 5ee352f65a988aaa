// Command axpyplan prints the compiled view of a linear-combination
// statement: destination, operator, operand classification, and the
// execution plan selected for it.
//
// Usage:
//
//	axpyplan [flags] statement
//
// Identifiers default to sequence operands of the demo length; names
// listed via -scalars are bound as scalars instead.
//
// Examples:
//
//	axpyplan 'z = x + y'
//	axpyplan -scalars a 'z = a*x + z'
//	axpyplan -scalars 'a=0.5,b=2' -n 1024 'z = a*x - b*y'
//	axpyplan -strict 'z += 2*x'
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jasondark/axpy"
)

func main() {
	scalars := flag.String("scalars", "", "comma-separated scalar names, optionally name=value (default value 1)")
	n := flag.Int("n", 8, "demo sequence length")
	strict := flag.Bool("strict", false, "require equal sequence lengths")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: axpyplan [flags] statement\n\n")
		fmt.Fprintf(os.Stderr, "Prints the compiled view of a linear-combination statement.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  axpyplan 'z = x + y'\n")
		fmt.Fprintf(os.Stderr, "  axpyplan -scalars a 'z = a*x + z'\n")
		fmt.Fprintf(os.Stderr, "  axpyplan -scalars 'a=0.5,b=2' -n 1024 'z = a*x - b*y'\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	statement := strings.Join(flag.Args(), " ")

	scalarVals, err := parseScalars(*scalars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var opts []axpy.Option
	if *strict {
		opts = append(opts, axpy.WithStrictLengths())
	}

	prog, err := axpy.Compile(statement, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	vars := &axpy.Vars{}
	vars.SetSeq(prog.Dest(), make([]float64, *n))
	for _, name := range prog.Identifiers() {
		if v, ok := scalarVals[name]; ok {
			vars.SetScalar(name, v)
			continue
		}
		if name != prog.Dest() {
			vars.SetSeq(name, make([]float64, *n))
		}
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printPlan(prog, loop, scalarVals)
}

// parseScalars splits "a,b=2.5" into {"a": 1, "b": 2.5}.
func parseScalars(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	if s == "" {
		return out, nil
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, val, found := strings.Cut(part, "=")
		if !found {
			out[name] = 1
			continue
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad scalar value %q: %w", part, err)
		}
		out[name] = v
	}

	return out, nil
}

func printPlan(prog *axpy.Program, loop *axpy.Loop, scalarVals map[string]float64) {
	var seqNames, scalarNames []string
	for _, name := range prog.Identifiers() {
		if _, ok := scalarVals[name]; ok {
			scalarNames = append(scalarNames, name)
		} else {
			seqNames = append(seqNames, name)
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Statement\t%s\n", prog.Source())
	fmt.Fprintf(tw, "Destination\t%s\n", prog.Dest())
	fmt.Fprintf(tw, "Operator\t%s\n", prog.Operator())
	fmt.Fprintf(tw, "Sequences\t%s\n", joinOrDash(seqNames))
	fmt.Fprintf(tw, "Scalars\t%s\n", joinOrDash(scalarNames))
	fmt.Fprintf(tw, "Self-referential\t%v\n", prog.SelfReferential())
	fmt.Fprintf(tw, "Plan\t%s\n", loop.Plan())
	fmt.Fprintf(tw, "Elements per pass\t%d\n", loop.Len())
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
