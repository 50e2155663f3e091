// Command prove builds a synthetic R1CS instance, produces a
// zero-knowledge argument that it is satisfied, and verifies the argument,
// reporting whether it succeeded and how large the proof's serialized
// commitments are.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/r1cs"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

func main() {
	numCons := flag.Int("constraints", 1024, "number of R1CS constraints (must be a power of two)")
	numVars := flag.Int("variables", 2048, "number of R1CS variables (must be a power of two)")
	numInputs := flag.Int("inputs", 10, "number of public inputs")
	label := flag.String("label", "spartan-core/cmd/prove", "generator derivation label")

	flag.Parse()

	if *numCons < 1 || *numCons&(*numCons-1) != 0 {
		fmt.Fprintf(os.Stderr, "Error: -constraints must be a power of two, got %d\n", *numCons)
		os.Exit(1)
	}
	if *numVars < 1 || *numVars&(*numVars-1) != 0 {
		fmt.Fprintf(os.Stderr, "Error: -variables must be a power of two, got %d\n", *numVars)
		os.Exit(1)
	}
	if *numInputs < 1 || *numInputs+1 >= *numVars {
		fmt.Fprintf(os.Stderr, "Error: -inputs must be at least 1 and less than variables-1, got %d\n", *numInputs)
		os.Exit(1)
	}

	inst, vars, input, err := r1cs.ProduceSyntheticR1CS(*numCons, *numVars, *numInputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build instance: %v\n", err)
		os.Exit(1)
	}

	sat, err := inst.IsSat(vars, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to check satisfiability: %v\n", err)
		os.Exit(1)
	}
	if !sat {
		fmt.Fprintln(os.Stderr, "Error: generated instance is not satisfied by its own witness")
		os.Exit(1)
	}

	gens := r1cs.NewGens([]byte(*label), *numVars)

	proverTranscript := transcript.New([]byte("spartan-core/cmd/prove"))
	proverTape := randtape.New([]byte("spartan-core/cmd/prove/tape"))

	proof, rx, ry, err := r1cs.Prove(inst, vars, input, gens, proverTranscript, proverTape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: proving failed: %v\n", err)
		os.Exit(1)
	}

	evalA, evalB, evalC, err := inst.Evaluate(rx, ry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: matrix evaluation failed: %v\n", err)
		os.Exit(1)
	}

	verifierTranscript := transcript.New([]byte("spartan-core/cmd/prove"))
	_, _, err = proof.Verify(*numVars, *numCons, input, evalA, evalB, evalC, verifierTranscript, gens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("proof verified: %d constraints, %d variables, %d inputs\n", *numCons, *numVars, *numInputs)
	fmt.Printf("proof size: %d bytes\n", proofSize(proof))
}

func proofSize(p *r1cs.Proof) int {
	size := 0
	for _, c := range p.CommVars.RowComms {
		size += len(curve.PointBytes(c))
	}
	size += len(curve.PointBytes(p.CommAzClaim))
	size += len(curve.PointBytes(p.CommBzClaim))
	size += len(curve.PointBytes(p.CommCzClaim))
	size += len(curve.PointBytes(p.CommProdAzBzClaim))
	size += len(curve.PointBytes(p.CommVarsAtRy))
	for _, c := range p.ScProofPhase1.CommPolys {
		size += len(curve.PointBytes(c))
	}
	for _, c := range p.ScProofPhase1.CommEvals {
		size += len(curve.PointBytes(c))
	}
	for _, c := range p.ScProofPhase2.CommPolys {
		size += len(curve.PointBytes(c))
	}
	for _, c := range p.ScProofPhase2.CommEvals {
		size += len(curve.PointBytes(c))
	}
	return size
}
