// Package shake implements the SHAKE-mode sponge that derives qvortex
// substitution tables.
//
// The sponge uses SHAKE128's geometry and padding: a 168-byte rate, the
// 0x1F domain-separation suffix, and the 0x80 multi-rate terminator. It
// runs over the variant permutation in internal/keccak, so its output
// differs from standard SHAKE128.
package shake

import (
	"github.com/qvortex/qvortex/internal/keccak"
	"github.com/qvortex/qvortex/internal/mem"
)

// Rate is the sponge rate in bytes (200 - 32).
const Rate = 168

// dsByte is the SHAKE domain-separation suffix.
const dsByte = 0x1F

// A Sponge absorbs an arbitrary-length message and squeezes
// arbitrary-length output. The zero value is ready to absorb.
type Sponge struct {
	state [200]byte
	pos   int // rate bytes consumed since the last permutation
}

// Absorb XORs p into the rate portion of the state, permuting each time
// the rate fills.
func (s *Sponge) Absorb(p []byte) {
	for len(p) > 0 {
		n := min(len(p), Rate-s.pos)
		mem.XOR(s.state[s.pos:s.pos+n], s.state[s.pos:s.pos+n], p[:n])
		s.pos += n
		if s.pos == Rate {
			keccak.F1600(&s.state)
			s.pos = 0
		}
		p = p[n:]
	}
}

// Finalize applies the domain suffix and the padding terminator, then
// permutes, switching the sponge from absorbing to squeezing. With the
// cursor on the last rate byte both pad bytes land on byte 167; that is
// the multi-rate padding rule, not an error.
func (s *Sponge) Finalize() {
	s.state[s.pos] ^= dsByte
	s.state[Rate-1] ^= 0x80
	keccak.F1600(&s.state)
	s.pos = 0
}

// Squeeze fills out with sponge output, permuting as each rate block is
// exhausted. Valid only after Finalize.
func (s *Sponge) Squeeze(out []byte) {
	for len(out) > 0 {
		if s.pos == Rate {
			keccak.F1600(&s.state)
			s.pos = 0
		}
		n := copy(out, s.state[s.pos:Rate])
		s.pos += n
		out = out[n:]
	}
}

// Sum computes the one-shot sponge output of msg.
func Sum(msg []byte, outLen int) []byte {
	var s Sponge
	s.Absorb(msg)
	s.Finalize()
	out := make([]byte, outLen)
	s.Squeeze(out)
	return out
}
