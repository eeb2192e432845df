package filter

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveCompact is the reference implementation: one branch per bit.
func naiveCompact(src []int32, cond []byte) []int32 {
	var out []int32
	for i, v := range src {
		if cond[i/8]&(1<<uint(i%8)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

func sequence(n int) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = int32(i * 3)
	}
	return s
}

func TestCompact_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, k := range []Kernel{KernelUnrolled, KernelBitScan} {
		withKernel(t, k, func() {
			for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 63, 64, 100, 1024, 1031} {
				src := sequence(n)
				cond := make([]byte, BitmapBytes(n))
				rng.Read(cond)

				dst := make([]int32, SelectedCount(cond, n))
				got := Compact(dst, src, cond)

				want := naiveCompact(src, cond)
				require.Equal(t, len(want), got, "kernel %s n %d", k, n)
				if got > 0 {
					assert.Equal(t, want, dst[:got], "kernel %s n %d", k, n)
				}
			}
		})
	}
}

func TestCompact_AllAndNone(t *testing.T) {
	src := sequence(20)

	all := []byte{0xff, 0xff, 0xff}
	dst := make([]int32, 20)
	assert.Equal(t, 20, Compact(dst, src, all))
	assert.Equal(t, src, dst)

	none := []byte{0, 0, 0}
	assert.Equal(t, 0, Compact(dst[:0], src, none))
}

// Bits past len(src) in the last condition byte are ignored.
func TestCompact_IgnoresBitsPastEnd(t *testing.T) {
	src := sequence(10)
	cond := []byte{0x00, 0xff}
	dst := make([]int32, 2)
	assert.Equal(t, 2, Compact(dst, src, cond))
	assert.Equal(t, []int32{24, 27}, dst)
	assert.Equal(t, 2, SelectedCount(cond, 10))
}

func TestCompact_ShortConditionPanics(t *testing.T) {
	src := sequence(17)
	assert.Panics(t, func() {
		Compact(make([]int32, 17), src, []byte{0xff, 0xff})
	})
}

func TestCompact_EmptyWithoutCondition(t *testing.T) {
	assert.Equal(t, 0, Compact([]int32{}, []int32{}, nil))
}

func TestSelectedCount(t *testing.T) {
	cond := []byte{0xff, 0x0f, 0x81}
	assert.Equal(t, 0, SelectedCount(cond, 0))
	assert.Equal(t, 8, SelectedCount(cond, 8))
	assert.Equal(t, 10, SelectedCount(cond, 10))
	assert.Equal(t, 12, SelectedCount(cond, 16))
	assert.Equal(t, 13, SelectedCount(cond, 17))
	assert.Equal(t, 14, SelectedCount(cond, 24))
}

func TestBitmapBytes(t *testing.T) {
	assert.Equal(t, 0, BitmapBytes(0))
	assert.Equal(t, 1, BitmapBytes(1))
	assert.Equal(t, 1, BitmapBytes(8))
	assert.Equal(t, 2, BitmapBytes(9))
}

func TestCompactProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("compact keeps exactly the selected rows in order", prop.ForAll(
		func(cond []byte, trim int) bool {
			n := len(cond)*8 - trim
			if n < 0 {
				n = 0
			}
			src := sequence(n)
			dst := make([]int32, SelectedCount(cond, n))
			got := Compact(dst, src, cond)

			want := naiveCompact(src, cond)
			if got != len(want) {
				return false
			}
			for i := range want {
				if dst[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}

func BenchmarkCompact(b *testing.B) {
	const n = 4096
	src := make([]int64, n)
	cond := make([]byte, BitmapBytes(n))
	rand.New(rand.NewSource(1)).Read(cond)
	dst := make([]int64, n)

	for _, k := range []Kernel{KernelUnrolled, KernelBitScan} {
		b.Run(string(k), func(b *testing.B) {
			prev := activeKernel
			activeKernel = k
			defer func() { activeKernel = prev }()
			b.SetBytes(n * 8)
			for i := 0; i < b.N; i++ {
				Compact(dst, src, cond)
			}
		})
	}
}
