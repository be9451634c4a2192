package keccak

import (
	"encoding/binary"
	"math/bits"
)

// Round constants for the iota step, shared with Keccak-f[1600].
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// Rotation offsets and lane chain for the fused rho+pi step. The chain is
// not the FIPS 202 traversal; see the package doc.
var (
	rhoOffsets = [24]int{
		1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
		27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
	}
	piChain = [24]int{
		1, 6, 9, 22, 14, 20, 2, 12, 13, 19, 23, 15,
		4, 24, 21, 8, 16, 5, 3, 18, 17, 11, 7, 10,
	}
)

// f1600Generic is the portable scalar implementation.
func f1600Generic(a *[200]byte) {
	var st [25]uint64
	for i := range st {
		st[i] = binary.LittleEndian.Uint64(a[i*8:])
	}

	for round := range rc {
		// Theta.
		var bc [5]uint64
		for i := range bc {
			bc[i] = st[i] ^ st[i+5] ^ st[i+10] ^ st[i+15] ^ st[i+20]
		}
		for i := range bc {
			t := bits.RotateLeft64(bc[(i+1)%5], 1) ^ bc[(i+4)%5]
			for j := 0; j < 25; j += 5 {
				st[i+j] ^= t
			}
		}

		// Rho and pi, fused through a single scratch lane.
		t := st[1]
		for i, j := range piChain {
			st[j], t = bits.RotateLeft64(t, rhoOffsets[i]), st[j]
		}

		// Chi, row by row from the pre-chi values.
		for j := 0; j < 25; j += 5 {
			a0, a1, a2, a3, a4 := st[j], st[j+1], st[j+2], st[j+3], st[j+4]
			st[j] ^= ^a1 & a2
			st[j+1] ^= ^a2 & a3
			st[j+2] ^= ^a3 & a4
			st[j+3] ^= ^a4 & a0
			st[j+4] ^= ^a0 & a1
		}

		// Iota.
		st[0] ^= rc[round]
	}

	for i := range st {
		binary.LittleEndian.PutUint64(a[i*8:], st[i])
	}
}
