package qvortex_test

import (
	"bytes"
	"crypto/sha3"
	"testing"

	"github.com/qvortex/qvortex"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzStreamingDivergence splits a random message into a random sequence of
// Update calls and checks the streamed digest against the one-shot form.
func FuzzStreamingDivergence(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("qvortex streaming"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		key, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		chunkCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		c := qvortex.NewContext(key)
		var message []byte

		for range chunkCount % 50 {
			chunk, err := tp.GetBytes()
			if err != nil {
				t.Skip(err)
			}

			c.Update(chunk)
			message = append(message, chunk...)
		}

		var got [qvortex.Size]byte
		if err := c.Final(&got); err != nil {
			t.Fatal(err)
		}

		if want := qvortex.Sum256(message, key); got != want {
			t.Fatalf("Divergent digests: %x != %x", got, want)
		}
	})
}

// FuzzCheckpointResume checkpoints a stream mid-way with MarshalBinary,
// resumes it in a second context, and checks both digests against the
// one-shot form.
func FuzzCheckpointResume(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("qvortex checkpoint"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		key, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		prefix, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		suffix, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		c1 := qvortex.NewContext(key)
		c1.Update(prefix)

		state, err := c1.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}

		var c2 qvortex.Context
		if err := c2.UnmarshalBinary(state); err != nil {
			t.Fatal(err)
		}

		c1.Update(suffix)
		c2.Update(suffix)

		var got1, got2 [qvortex.Size]byte
		if err := c1.Final(&got1); err != nil {
			t.Fatal(err)
		}
		if err := c2.Final(&got2); err != nil {
			t.Fatal(err)
		}

		want := qvortex.Sum256(append(bytes.Clone(prefix), suffix...), key)
		if got1 != want {
			t.Fatalf("Divergent original digest: %x != %x", got1, want)
		}
		if got2 != want {
			t.Fatalf("Divergent resumed digest: %x != %x", got2, want)
		}
	})
}
