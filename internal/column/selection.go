package column

import (
	"github.com/23skdu/colfilter/internal/filter"
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/bitutil"
)

// Selections are LSB-first bitmaps aligned at bit 0: bit i%8 of byte i/8
// selects row i. This is Arrow's own bitmap layout, so one selection byte
// is one filter kernel call.

// SelectionFromBoolean converts a boolean array into a selection. Null
// entries select nothing. The array offset is honoured.
func SelectionFromBoolean(sel *array.Boolean) []byte {
	n := sel.Len()
	out := make([]byte, filter.BitmapBytes(n))
	if n == 0 {
		return out
	}

	data := sel.Data()
	values := data.Buffers()[1].Bytes()
	offset := data.Offset()

	if sel.NullN() > 0 {
		bitutil.BitmapAnd(values, sel.NullBitmapBytes(), int64(offset), int64(offset), out, 0, int64(n))
		return out
	}
	bitutil.CopyBitmap(values, offset, n, out, 0)
	return out
}

// SelectionFromRoaring selects the rows of bm below n.
func SelectionFromRoaring(bm *roaring.Bitmap, n int) []byte {
	out := make([]byte, filter.BitmapBytes(n))
	if bm == nil {
		return out
	}
	bm.Iterate(func(x uint32) bool {
		if int(x) >= n {
			return false
		}
		bitutil.SetBit(out, int(x))
		return true
	})
	return out
}

// SelectionFromBools packs one flag per row.
func SelectionFromBools(flags []bool) []byte {
	out := make([]byte, filter.BitmapBytes(len(flags)))
	for i, f := range flags {
		if f {
			bitutil.SetBit(out, i)
		}
	}
	return out
}
