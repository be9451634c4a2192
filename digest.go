package qvortex

import "hash"

// New returns a hash.Hash computing the qvortex digest of everything
// written to it under key. Unlike a bare Context, the returned hash
// supports Reset and a non-destructive Sum, at the cost of keeping the
// key-derived substitution table resident for the value's lifetime.
func New(key []byte) hash.Hash {
	d := &digest{}
	d.ctx.Init(key)
	d.initial = d.ctx
	return d
}

type digest struct {
	ctx     Context
	initial Context // post-Init snapshot for Reset
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.ctx.Update(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	// Finalization consumes a copy so the live stream can keep going.
	c := d.ctx
	var out [Size]byte
	c.final(&out)
	return append(b, out[:]...)
}

func (d *digest) Reset() {
	d.ctx = d.initial
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return BlockSize
}

var _ hash.Hash = (*digest)(nil)
