// Package qvortex implements the Qvortex keyed hash function, producing
// 256-bit digests from arbitrary-length input in one-shot or streaming
// form.
//
// Qvortex derives a per-key byte substitution table through a SHAKE-mode
// sponge over a variant of the Keccak-f[1600] permutation; the variant's
// rho+pi lane chain differs from [FIPS 202], so the internal sponge is not
// interchangeable with SHAKE128. Input is then consumed in 64-byte blocks
// by a compression function that substitutes every byte through the
// table, folds the block into a working copy of the hash state with
// input-driven rotations, mixes the copy with two [ChaCha]-style ARX
// rounds, and XORs it back into the state, with the message bit length
// encoded in the final padded block.
//
// The substitution table is raw sponge output: entries are not guaranteed
// pairwise distinct, so it substitutes bytes without being a true byte
// permutation. An empty key selects a fixed, documented default table.
//
// The permutation and the compression function each have a portable
// implementation and a lane-paired implementation selected by CPU
// capability; the purego build tag forces the portable forms. Both
// produce bit-identical digests.
//
// [FIPS 202]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.202.pdf
// [ChaCha]: https://cr.yp.to/chacha/chacha-20080128.pdf
package qvortex

import (
	"errors"
	"fmt"
)

const (
	// Size is the size of a qvortex digest in bytes.
	Size = 32

	// BlockSize is the compression function's block size in bytes.
	BlockSize = 64
)

// The algorithm version reported by Version.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// ErrNilOutput is returned when a nil output pointer is passed to Hash,
// VortexHash, or Context.Final.
var ErrNilOutput = errors.New("qvortex: nil output")

// Sum256 returns the qvortex digest of data under key. An empty key
// selects the fixed unkeyed substitution table.
func Sum256(data, key []byte) [Size]byte {
	var out [Size]byte
	var c Context
	c.Init(key)
	c.Update(data)
	c.final(&out)
	return out
}

// Hash writes the qvortex digest of data under key into out. It fails
// with ErrNilOutput when out is nil, before any data is processed.
func Hash(data, key []byte, out *[Size]byte) error {
	if out == nil {
		return ErrNilOutput
	}

	var c Context
	c.Init(key)
	c.Update(data)
	c.final(out)
	return nil
}

// Version returns the implemented algorithm version as a
// "major.minor.patch" string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
