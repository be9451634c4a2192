package qvortex

// The lane-paired compression keeps the eight state lanes in four two-lane
// vectors, pairing lane i with lane i+4. Both straight quads then run in a
// single vector mix, and the cross quads reuse it with the b and d vectors
// swapped so every lane meets its cross partner. Rotations use the
// shift-or form throughout, mirroring a 128-bit SIMD build of the same
// function. Bit-identical to processBlockGeneric.

type u64x2 struct{ lo, hi uint64 }

func (v u64x2) add(o u64x2) u64x2 { return u64x2{v.lo + o.lo, v.hi + o.hi} }
func (v u64x2) xor(o u64x2) u64x2 { return u64x2{v.lo ^ o.lo, v.hi ^ o.hi} }
func (v u64x2) swap() u64x2       { return u64x2{v.hi, v.lo} }

func (v u64x2) rotl(n uint) u64x2 {
	return u64x2{v.lo<<n | v.lo>>(64-n), v.hi<<n | v.hi>>(64-n)}
}

func processBlockPairs(state *[8]uint64, sbox *[256]byte, block *[BlockSize]byte) {
	m := substitute(sbox, block)

	w := *state
	for i, mi := range m {
		r := mi >> 56 & 63
		w[i] ^= mi<<r | mi>>(64-r)
	}

	va := u64x2{w[0], w[4]}
	vb := u64x2{w[1], w[5]}
	vc := u64x2{w[2], w[6]}
	vd := u64x2{w[3], w[7]}

	for range arxRounds {
		// Straight quads (0,1,2,3) and (4,5,6,7).
		mixPairs(&va, &vb, &vc, &vd)

		// Cross quads (0,5,2,7) and (4,1,6,3).
		vb, vd = vb.swap(), vd.swap()
		mixPairs(&va, &vb, &vc, &vd)
		vb, vd = vb.swap(), vd.swap()

		// Rotate the eight lanes left by one: register renaming plus a
		// single swap.
		va, vb, vc, vd = vb, vc, vd, va.swap()
	}

	state[0] ^= va.lo
	state[1] ^= vb.lo
	state[2] ^= vc.lo
	state[3] ^= vd.lo
	state[4] ^= va.hi
	state[5] ^= vb.hi
	state[6] ^= vc.hi
	state[7] ^= vd.hi
}

func mixPairs(a, b, c, d *u64x2) {
	*a = a.add(*b)
	*d = d.xor(*a).rotl(rotA)
	*c = c.add(*d)
	*b = b.xor(*c).rotl(rotB)
	*a = a.add(*b)
	*d = d.xor(*a).rotl(rotC)
	*c = c.add(*d)
	*b = b.xor(*c).rotl(rotD)
}
