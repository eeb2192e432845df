package filter

import "math/bits"

//go:generate go run ../../cmd/genfilter -o primitive_unrolled.go

// GroupSize is the number of source elements a single condition byte covers.
const GroupSize = 8

// Primitive copies the elements of source selected by current into target,
// starting at target[rest], and returns how many were copied. Bit b of
// current selects source[b]; selected elements keep their relative order.
//
// source must hold at least GroupSize elements and target at least
// rest+popcount(current). Shorter slices panic.
func Primitive[T any](target, source []T, current uint8, rest int) int {
	if activeKernel == KernelUnrolled {
		return compactUnrolled(target, source, current, rest)
	}
	return compactBitScan(target, source, current, rest)
}

// compactBitScan walks the set bits of current lowest first.
func compactBitScan[T any](target, source []T, current uint8, rest int) int {
	_ = source[GroupSize-1]
	n := 0
	for m := current; m != 0; m &= m - 1 {
		target[rest+n] = source[bits.TrailingZeros8(m)]
		n++
	}
	return n
}

// compactTail is compactBitScan for a final group shorter than GroupSize.
// Bits at or above len(source) are ignored.
func compactTail[T any](target, source []T, current uint8, rest int) int {
	n := 0
	for m := current & uint8(1<<uint(len(source))-1); m != 0; m &= m - 1 {
		target[rest+n] = source[bits.TrailingZeros8(m)]
		n++
	}
	return n
}
