//go:build !purego

package keccak

import "golang.org/x/sys/cpu"

// useLanePairs selects the lane-paired implementation on cores with the
// 128-bit vector units it is shaped for.
var useLanePairs = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
