// Package randtape implements the prover-private blinding source: an
// independent transcript that is never shown to, or absorbed by, the
// verifier. Grounded on original_source/src/random.rs line-for-line
// (RandomTape wraps a second transcript instance seeded under
// "init_randomness" and squeezes all blinding material from it).
package randtape

import (
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/transcript"
)

// Tape is the prover's private entropy source. It must never alias the
// public Transcript a proof is built against (§9 "blinding vs public
// state").
type Tape struct {
	inner *transcript.Transcript
}

// New seeds a fresh tape under name, absorbing one truly random scalar
// under "init_randomness" so two tapes constructed with the same name still
// diverge.
func New(name []byte) *Tape {
	inner := transcript.New(name)
	inner.AppendScalar([]byte("init_randomness"), curve.RandomScalar())
	return &Tape{inner: inner}
}

// RandomScalar squeezes a single blinding scalar under label.
func (t *Tape) RandomScalar(label []byte) curve.Scalar {
	return t.inner.ChallengeScalar(label)
}

// RandomVector squeezes length independent blinding scalars under label.
func (t *Tape) RandomVector(label []byte, length int) []curve.Scalar {
	return t.inner.ChallengeVector(label, length)
}
