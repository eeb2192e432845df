package codegen

import "math/bits"

// MaskWidth is the number of source slots a Mask selects from.
const MaskWidth = 8

// NumMasks is the number of distinct Mask values, one switch arm each.
const NumMasks = 1 << MaskWidth

// Mask selects which of the MaskWidth source slots are copied. Bit b set
// means source[b] participates.
type Mask uint8

// Count returns the number of selected slots.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Has reports whether slot b is selected.
func (m Mask) Has(b int) bool {
	return m&(1<<uint(b)) != 0
}

// Copy is a single generated assignment: target[rest+Slot] = source[Source].
type Copy struct {
	Source int
	Slot   int
}

// Case is the straight-line body emitted for one Mask.
type Case struct {
	Mask   Mask
	Copies []Copy
}

// Count is the value the case returns.
func (c Case) Count() int {
	return len(c.Copies)
}

// BuildCase enumerates the selected slots of m in ascending order. Each
// copy's Slot is the number of selected slots below its Source.
func BuildCase(m Mask) Case {
	c := Case{Mask: m, Copies: make([]Copy, 0, m.Count())}
	slot := 0
	for b := 0; b < MaskWidth; b++ {
		if m.Has(b) {
			c.Copies = append(c.Copies, Copy{Source: b, Slot: slot})
			slot++
		}
	}
	return c
}

// Table returns the case for every mask, indexed by mask value.
func Table() [NumMasks]Case {
	var t [NumMasks]Case
	for i := range t {
		t[i] = BuildCase(Mask(i))
	}
	return t
}
