//go:build purego

package keccak

const useLanePairs = false
