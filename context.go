package qvortex

import (
	"encoding"
	"encoding/binary"
	"errors"
)

// A Context incrementally hashes a stream of data.
//
// The zero value is not ready for use; call Init or use NewContext. Final
// consumes the context destructively: it emits the digest and overwrites
// every field with zero so no key-derived material stays resident. A
// finalized context must be re-initialized before reuse; calling Update
// or Final on one is a caller error and yields meaningless results.
//
// Contexts are not concurrent-safe.
type Context struct {
	state  [8]uint64
	sbox   [256]byte
	buf    [BlockSize]byte
	bufLen int
	total  uint64
}

// NewContext returns a context keyed with key, ready for use. An empty
// key selects the fixed unkeyed substitution table.
func NewContext(key []byte) *Context {
	var c Context
	c.Init(key)
	return &c
}

// Init (re)initializes the context under key, discarding any buffered
// data.
func (c *Context) Init(key []byte) {
	c.state = iv
	c.sbox = deriveTable(key)
	c.buf = [BlockSize]byte{}
	c.bufLen = 0
	c.total = 0
}

// Update absorbs p into the hash. It may be called any number of times,
// with any chunking, before Final.
func (c *Context) Update(p []byte) {
	c.total += uint64(len(p))

	if c.bufLen > 0 {
		n := copy(c.buf[c.bufLen:], p)
		c.bufLen += n
		p = p[n:]
		if c.bufLen == BlockSize {
			processBlock(&c.state, &c.sbox, &c.buf)
			c.bufLen = 0
		}
	}

	for len(p) >= BlockSize {
		processBlock(&c.state, &c.sbox, (*[BlockSize]byte)(p))
		p = p[BlockSize:]
	}

	c.bufLen += copy(c.buf[c.bufLen:], p)
}

// Final appends the padding terminator and the encoded bit length,
// processes the final block or blocks, writes the digest into out, and
// zeroes the context. It fails with ErrNilOutput when out is nil, in
// which case the context is left intact.
func (c *Context) Final(out *[Size]byte) error {
	if out == nil {
		return ErrNilOutput
	}

	c.final(out)
	return nil
}

func (c *Context) final(out *[Size]byte) {
	n := c.bufLen
	c.buf[n] = 0x80
	n++

	padZeros := BlockSize - n%BlockSize
	if padZeros < 8 {
		padZeros += BlockSize
	}
	padZeros -= 8

	// If the 8-byte length field no longer fits, close out this block and
	// encode the length in a fresh all-zero one.
	if n+padZeros > BlockSize {
		clear(c.buf[n:])
		processBlock(&c.state, &c.sbox, &c.buf)
		c.buf = [BlockSize]byte{}
	} else {
		clear(c.buf[n : n+padZeros])
	}

	binary.LittleEndian.PutUint64(c.buf[BlockSize-8:], c.total*8)
	processBlock(&c.state, &c.sbox, &c.buf)

	for i := range Size / 8 {
		binary.LittleEndian.PutUint64(out[i*8:], c.state[i])
	}

	*c = Context{}
}

// Binary encoding offsets. The layout is fixed: hash state, substitution
// table, block buffer, buffer fill, total byte count.
const (
	sboxOff       = 8 * 8
	bufOff        = sboxOff + 256
	fillOff       = bufOff + BlockSize
	totalOff      = fillOff + 1
	marshaledSize = totalOff + 8
)

// AppendBinary appends the context's complete state to b, so a stream can
// be checkpointed and later resumed with UnmarshalBinary. The encoding
// contains the key-derived substitution table and must be protected like
// the key itself.
func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	for _, w := range c.state {
		b = binary.LittleEndian.AppendUint64(b, w)
	}
	b = append(b, c.sbox[:]...)
	b = append(b, c.buf[:]...)
	b = append(b, byte(c.bufLen))
	b = binary.LittleEndian.AppendUint64(b, c.total)
	return b, nil
}

func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, marshaledSize))
}

func (c *Context) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errors.New("qvortex: invalid context encoding length")
	}
	if data[fillOff] >= BlockSize {
		return errors.New("qvortex: invalid context buffer fill")
	}

	for i := range c.state {
		c.state[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	copy(c.sbox[:], data[sboxOff:])
	copy(c.buf[:], data[bufOff:])
	c.bufLen = int(data[fillOff])
	c.total = binary.LittleEndian.Uint64(data[totalOff:])
	return nil
}

var (
	_ encoding.BinaryAppender    = (*Context)(nil)
	_ encoding.BinaryMarshaler   = (*Context)(nil)
	_ encoding.BinaryUnmarshaler = (*Context)(nil)
)
