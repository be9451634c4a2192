package keccak

import "encoding/binary"

// lanePair packs two adjacent lanes the way a 128-bit SIMD register would
// hold them.
type lanePair struct{ lo, hi uint64 }

// f1600Pairs mirrors the layout of a two-lane SIMD build: the state lives
// in twelve lane pairs plus lane 24, each round opens the pairs into
// individual lanes, transforms them with shift-or rotations, and packs
// them back. Bit-identical to f1600Generic.
func f1600Pairs(a *[200]byte) {
	var r [12]lanePair
	for i := range r {
		r[i] = lanePair{
			lo: binary.LittleEndian.Uint64(a[i*16:]),
			hi: binary.LittleEndian.Uint64(a[i*16+8:]),
		}
	}
	lane24 := binary.LittleEndian.Uint64(a[192:])

	for round := range rc {
		var v [25]uint64
		for i, p := range r {
			v[i*2], v[i*2+1] = p.lo, p.hi
		}
		v[24] = lane24

		// Theta.
		var bc [5]uint64
		for i := range bc {
			bc[i] = v[i] ^ v[i+5] ^ v[i+10] ^ v[i+15] ^ v[i+20]
		}
		for i := range bc {
			b := bc[(i+1)%5]
			t := (b<<1 | b>>63) ^ bc[(i+4)%5]
			for j := 0; j < 25; j += 5 {
				v[i+j] ^= t
			}
		}

		// Rho and pi.
		t := v[1]
		for i, j := range piChain {
			n := rhoOffsets[i]
			v[j], t = t<<n|t>>(64-n), v[j]
		}

		// Chi.
		for j := 0; j < 25; j += 5 {
			a0, a1, a2, a3, a4 := v[j], v[j+1], v[j+2], v[j+3], v[j+4]
			v[j] ^= ^a1 & a2
			v[j+1] ^= ^a2 & a3
			v[j+2] ^= ^a3 & a4
			v[j+3] ^= ^a4 & a0
			v[j+4] ^= ^a0 & a1
		}

		// Iota.
		v[0] ^= rc[round]

		for i := range r {
			r[i] = lanePair{lo: v[i*2], hi: v[i*2+1]}
		}
		lane24 = v[24]
	}

	for i, p := range r {
		binary.LittleEndian.PutUint64(a[i*16:], p.lo)
		binary.LittleEndian.PutUint64(a[i*16+8:], p.hi)
	}
	binary.LittleEndian.PutUint64(a[192:], lane24)
}
