package qvortex

import "github.com/qvortex/qvortex/internal/shake"

// defaultSeedByte fills the table seed when no key is given, making the
// unkeyed table a fixed, documented constant.
const defaultSeedByte = 0xCC

// deriveTable derives the 256-entry substitution table for key. A
// non-empty key is first compressed to a 32-byte seed through the sponge;
// an empty key uses the fixed default seed without touching the sponge.
// The table is raw sponge output, so entries are not guaranteed pairwise
// distinct: it substitutes bytes without being a true permutation of
// them.
func deriveTable(key []byte) (table [256]byte) {
	var seed [32]byte
	if len(key) > 0 {
		copy(seed[:], shake.Sum(key, len(seed)))
	} else {
		for i := range seed {
			seed[i] = defaultSeedByte
		}
	}
	copy(table[:], shake.Sum(seed[:], len(table)))
	return table
}
