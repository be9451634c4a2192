//go:build purego

package qvortex

const useLanePairs = false
