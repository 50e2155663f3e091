package common

import (
	"math/big"
)

// BLS12-381 curve constants in big.Int form. No other package in this module
// references them; scalar decoding and reduction go through fr.Element.
var (
	// Order is the order of the BLS12-381 scalar field (the group Fr lives in).
	Order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
)

// Domain separation tags for hashing to curve, used to derive commitment
// generators (see commitments.MultiCommitGens).
const (
	DST_G1 = "SPARTAN_BLS12381G1_XMD:SHA-256_SSWU_RO_"
)
