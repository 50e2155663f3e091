// Command bench measures proving and verification time across a range of
// R1CS instance sizes and, when given -chart, plots the results.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/r1cs"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

type result struct {
	numCons    int
	proveTime  time.Duration
	verifyTime time.Duration
	proofBytes int
}

func main() {
	minCons := flag.Int("min-constraints", 64, "smallest power-of-two constraint count to benchmark")
	maxCons := flag.Int("max-constraints", 4096, "largest power-of-two constraint count to benchmark")
	numInputs := flag.Int("inputs", 10, "number of public inputs per instance")
	chartPath := flag.String("chart", "", "write a proving-time-vs-size PNG chart to this path (empty to skip)")
	format := flag.String("format", "text", "output format for the results table (text, csv)")

	flag.Parse()

	if *minCons < 1 || *minCons&(*minCons-1) != 0 {
		fmt.Fprintf(os.Stderr, "Error: -min-constraints must be a power of two, got %d\n", *minCons)
		os.Exit(1)
	}
	if *maxCons < *minCons || *maxCons&(*maxCons-1) != 0 {
		fmt.Fprintf(os.Stderr, "Error: -max-constraints must be a power of two no smaller than -min-constraints, got %d\n", *maxCons)
		os.Exit(1)
	}

	var results []result
	for numCons := *minCons; numCons <= *maxCons; numCons *= 2 {
		numVars := numCons * 2
		r, err := runOne(numCons, numVars, *numInputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: benchmark failed at %d constraints: %v\n", numCons, err)
			os.Exit(1)
		}
		results = append(results, r)
		fmt.Fprintf(os.Stderr, "constraints=%d prove=%s verify=%s proof_bytes=%d\n", r.numCons, r.proveTime, r.verifyTime, r.proofBytes)
	}

	if err := report(results, strings.ToLower(*format)); err != nil {
		fmt.Fprintf(os.Stderr, "Error reporting results: %v\n", err)
		os.Exit(1)
	}

	if *chartPath != "" {
		if err := plot(results, *chartPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("chart written to %s\n", *chartPath)
	}
}

func runOne(numCons, numVars, numInputs int) (result, error) {
	inst, vars, input, err := r1cs.ProduceSyntheticR1CS(numCons, numVars, numInputs)
	if err != nil {
		return result{}, err
	}

	gens := r1cs.NewGens([]byte("spartan-core/cmd/bench"), numVars)

	proverTranscript := transcript.New([]byte("spartan-core/cmd/bench"))
	proverTape := randtape.New([]byte("spartan-core/cmd/bench/tape"))

	start := time.Now()
	proof, rx, ry, err := r1cs.Prove(inst, vars, input, gens, proverTranscript, proverTape)
	proveTime := time.Since(start)
	if err != nil {
		return result{}, err
	}

	evalA, evalB, evalC, err := inst.Evaluate(rx, ry)
	if err != nil {
		return result{}, err
	}

	verifierTranscript := transcript.New([]byte("spartan-core/cmd/bench"))
	start = time.Now()
	_, _, err = proof.Verify(numVars, numCons, input, evalA, evalB, evalC, verifierTranscript, gens)
	verifyTime := time.Since(start)
	if err != nil {
		return result{}, err
	}

	return result{numCons: numCons, proveTime: proveTime, verifyTime: verifyTime, proofBytes: sizeOf(proof)}, nil
}

func sizeOf(p *r1cs.Proof) int {
	pointSize := func(pt curve.Point) int { return len(curve.PointBytes(pt)) }
	size := 0
	for _, c := range p.CommVars.RowComms {
		size += pointSize(c)
	}
	size += pointSize(p.CommAzClaim) + pointSize(p.CommBzClaim) + pointSize(p.CommCzClaim) + pointSize(p.CommProdAzBzClaim) + pointSize(p.CommVarsAtRy)
	for _, c := range p.ScProofPhase1.CommPolys {
		size += pointSize(c)
	}
	for _, c := range p.ScProofPhase1.CommEvals {
		size += pointSize(c)
	}
	for _, c := range p.ScProofPhase2.CommPolys {
		size += pointSize(c)
	}
	for _, c := range p.ScProofPhase2.CommEvals {
		size += pointSize(c)
	}
	return size
}

func report(results []result, format string) error {
	switch format {
	case "text":
		fmt.Printf("%-12s %-14s %-14s %-12s\n", "constraints", "prove", "verify", "proof_bytes")
		for _, r := range results {
			fmt.Printf("%-12d %-14s %-14s %-12d\n", r.numCons, r.proveTime, r.verifyTime, r.proofBytes)
		}
		return nil
	case "csv":
		fmt.Println("constraints,prove_ns,verify_ns,proof_bytes")
		for _, r := range results {
			fmt.Printf("%d,%d,%d,%d\n", r.numCons, r.proveTime.Nanoseconds(), r.verifyTime.Nanoseconds(), r.proofBytes)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func plot(results []result, path string) error {
	xs := make([]float64, len(results))
	proveYs := make([]float64, len(results))
	verifyYs := make([]float64, len(results))
	for i, r := range results {
		xs[i] = float64(r.numCons)
		proveYs[i] = r.proveTime.Seconds() * 1000
		verifyYs[i] = r.verifyTime.Seconds() * 1000
	}

	graph := chart.Chart{
		Title: "spartan-core proving/verification time",
		XAxis: chart.XAxis{Name: "constraints", ValueFormatter: chart.IntValueFormatter},
		YAxis: chart.YAxis{Name: "milliseconds"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "prove", XValues: xs, YValues: proveYs},
			chart.ContinuousSeries{Name: "verify", XValues: xs, YValues: verifyYs},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
