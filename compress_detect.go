//go:build !purego

package qvortex

import "golang.org/x/sys/cpu"

// useLanePairs selects the lane-paired compression on cores with the
// 128-bit vector units it is shaped for.
var useLanePairs = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
