package qvortex

// VortexHash hashes data under key, preserving the signature of the
// original vortex_hash entry point. The blocksPerSBox and
// usePrecomputed tuning knobs were dead even there, every caller
// passed zero, and they are ignored here.
//
// Deprecated: use [Hash] or [Sum256].
func VortexHash(data []byte, blocksPerSBox, usePrecomputed int, key []byte, out *[Size]byte) error {
	_ = blocksPerSBox
	_ = usePrecomputed
	return Hash(data, key, out)
}
