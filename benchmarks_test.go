package qvortex_test

import (
	"testing"

	"github.com/qvortex/qvortex"
)

func BenchmarkSum256(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				qvortex.Sum256(input, nil)
			}
		})
	}
}

func BenchmarkSum256Keyed(b *testing.B) {
	key := make([]byte, 32)
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				qvortex.Sum256(input, key)
			}
		})
	}
}

// BenchmarkNew measures streaming throughput without the per-stream table
// derivation, which Reset amortizes away.
func BenchmarkNew(b *testing.B) {
	h := qvortex.New(make([]byte, 32))
	digest := make([]byte, 0, qvortex.Size)

	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				h.Reset()
				_, _ = h.Write(input)
				h.Sum(digest[:0])
			}
		})
	}
}

// BenchmarkInit isolates the substitution table derivation, the fixed cost
// every keyed stream pays once.
func BenchmarkInit(b *testing.B) {
	b.Run("unkeyed", func(b *testing.B) {
		var c qvortex.Context
		b.ReportAllocs()
		for b.Loop() {
			c.Init(nil)
		}
	})

	b.Run("keyed", func(b *testing.B) {
		var c qvortex.Context
		key := make([]byte, 32)
		b.ReportAllocs()
		for b.Loop() {
			c.Init(key)
		}
	})
}

var lengths = []struct {
	name string
	n    int
}{
	{"16B", 16},
	{"32B", 32},
	{"64B", 64},
	{"128B", 128},
	{"256B", 256},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}
