package filter

import "math/bits"

// Compact copies the elements of src whose condition bit is set into dst,
// in order, and returns the number copied. cond is an LSB-first bitmap:
// bit i%8 of cond[i/8] selects src[i].
//
// Full groups of GroupSize elements go through Primitive; a trailing
// partial group is handled bit by bit since the unrolled kernel reads all
// eight source slots. dst must hold SelectedCount(cond, len(src))
// elements and cond must cover len(src) bits.
func Compact[T any](dst, src []T, cond []byte) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	full := n / GroupSize * GroupSize
	_ = cond[(n-1)/GroupSize]

	rest := 0
	for i := 0; i < full; i += GroupSize {
		rest += Primitive(dst, src[i:i+GroupSize], cond[i/GroupSize], rest)
	}
	if full < n {
		rest += compactTail(dst, src[full:], cond[full/GroupSize], rest)
	}
	return rest
}

// SelectedCount returns the number of set bits among the first n bits of cond.
func SelectedCount(cond []byte, n int) int {
	count := 0
	full := n / GroupSize
	for _, b := range cond[:full] {
		count += bits.OnesCount8(b)
	}
	if tail := n % GroupSize; tail != 0 {
		count += bits.OnesCount8(cond[full] & uint8(1<<uint(tail)-1))
	}
	return count
}

// BitmapBytes returns the number of bytes needed to hold n condition bits.
func BitmapBytes(n int) int {
	return (n + GroupSize - 1) / GroupSize
}
