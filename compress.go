package qvortex

import (
	"encoding/binary"
	"math/bits"
)

// Initial hash state: the same eight constants SHA-512 and BLAKE2b start
// from.
var iv = [8]uint64{
	0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
	0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
	0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
	0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
}

// ARX rotation distances, applied as left rotations.
const (
	rotA = 32
	rotB = 24
	rotC = 16
	rotD = 63
)

// arxRounds is the fixed mixing round count. Changing it changes every
// digest.
const arxRounds = 2

// processBlock advances state by one 64-byte block.
func processBlock(state *[8]uint64, sbox *[256]byte, block *[BlockSize]byte) {
	if useLanePairs {
		processBlockPairs(state, sbox, block)
	} else {
		processBlockGeneric(state, sbox, block)
	}
}

// substitute maps block through sbox and loads the result as eight
// little-endian words.
func substitute(sbox *[256]byte, block *[BlockSize]byte) (m [8]uint64) {
	var sub [BlockSize]byte
	for i, b := range block {
		sub[i] = sbox[b]
	}
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(sub[i*8:])
	}
	return m
}

// processBlockGeneric is the portable reference implementation.
func processBlockGeneric(state *[8]uint64, sbox *[256]byte, block *[BlockSize]byte) {
	m := substitute(sbox, block)

	// All mixing happens on a working copy; folding it back in at the end
	// keeps a single block transition from being trivially invertible.
	w := *state
	for i, mi := range m {
		w[i] ^= bits.RotateLeft64(mi, int(mi>>56&63))
	}

	for range arxRounds {
		mix(&w, 0, 1, 2, 3)
		mix(&w, 4, 5, 6, 7)
		mix(&w, 0, 5, 2, 7)
		mix(&w, 4, 1, 6, 3)

		// Rotate the lanes left so quad membership shifts between rounds.
		first := w[0]
		copy(w[:7], w[1:])
		w[7] = first
	}

	for i, wi := range w {
		state[i] ^= wi
	}
}

// mix is the ChaCha-style quarter round over lanes a, b, c and d.
func mix(w *[8]uint64, a, b, c, d int) {
	w[a] += w[b]
	w[d] = bits.RotateLeft64(w[d]^w[a], rotA)
	w[c] += w[d]
	w[b] = bits.RotateLeft64(w[b]^w[c], rotB)
	w[a] += w[b]
	w[d] = bits.RotateLeft64(w[d]^w[a], rotC)
	w[c] += w[d]
	w[b] = bits.RotateLeft64(w[b]^w[c], rotD)
}
