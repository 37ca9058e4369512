// Package hash provides the hash functions, key encoders and table sizing
// helpers shared by the name and phone directories.
//
// All functions are pure: a given key and table size always map to the same
// slot, across processes and platforms.
package hash

import "math"

// MinCapacity is the capacity of a freshly created or cleared directory.
const MinCapacity = 11

// goldenRatio is the fractional part of the golden ratio, (√5 - 1) / 2.
var goldenRatio = (math.Sqrt(5) - 1) / 2

// Mod returns key mod size, in the range [0, size).
func Mod(key uint64, size int) int {
	return int(key % uint64(size))
}

// Mult is a multiplicative hash: it scales the fractional part of key*φ by
// size, where φ is the fractional part of the golden ratio. The result is in
// the range [0, size).
func Mult(key uint64, size int) int {
	// explicit conversion: no fused multiply-add, so that results match on
	// every GOARCH.
	v := float64(float64(key) * goldenRatio)
	return int(math.Floor(float64(size) * (v - math.Floor(v))))
}
