// Package keccak implements the 1600-bit permutation at the core of the
// qvortex substitution table generator.
//
// The permutation follows the Keccak-f[1600] round structure (theta, rho,
// pi, chi and iota over 24 rounds) and reuses its round constants and
// rotation offsets, but the fused rho+pi step walks a different lane chain
// than FIPS 202. Output is therefore not interchangeable with standard
// Keccak-f[1600] or SHAKE128; every qvortex digest depends on this exact
// variant.
package keccak

// F1600 applies the permutation to the state (24 rounds) in place. The
// state is interpreted as 25 little-endian 64-bit lanes.
func F1600(state *[200]byte) {
	if useLanePairs {
		f1600Pairs(state)
	} else {
		f1600Generic(state)
	}
}
