// Package common provides shared functionality and constants used throughout
// the Spartan-core library.
//
// This package includes:
// - Common error definitions
// - Shared constants
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public packages.
package common

import (
	"errors"
)

// Common errors used throughout the library.
//
// Per the error handling design, verification failure never reveals which
// sub-check rejected; prover-path misuse (mismatched generator/vector
// lengths, malformed instances) is an opaque invalid-input error.
var (
	// ErrVerificationFailed indicates a proof failed verification.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrInvalidInput indicates malformed input on the prover path, e.g. a
	// generator set whose length does not match the committed vector.
	ErrInvalidInput = errors.New("invalid input")
)
