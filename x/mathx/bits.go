package mathx

import "golang.org/x/exp/constraints"

// Mask returns a value with the low n bits set. n >= the bit size of T
// yields all ones.
func Mask[T constraints.Unsigned](n uint8) T {
	var zero T
	if int(n) >= BitSize[T]() {
		return ^zero
	}
	return T(1)<<n - 1
}

// Fits reports whether v is representable in n bits.
func Fits[T constraints.Unsigned](v T, n uint8) bool {
	return v&^Mask[T](n) == 0
}

// BitSize reports the width of T in bits.
func BitSize[T constraints.Unsigned]() int {
	var x T = ^T(0)
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

// Extract returns the n-bit field of v starting at bit off.
func Extract[T constraints.Unsigned](v T, off, n uint8) T {
	return (v >> off) & Mask[T](n)
}

// Insert replaces the n-bit field of v starting at bit off with f.
// Bits of f above n are discarded.
func Insert[T constraints.Unsigned](v T, off, n uint8, f T) T {
	m := Mask[T](n) << off
	return v&^m | (f<<off)&m
}
