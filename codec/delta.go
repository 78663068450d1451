// Package codec implements the binary building blocks shared by the embroidery format
// readers and writers: bounded byte readers, little-endian builders and the signed delta
// stitch stream schemes of the PEC, JEF and U01 families.
package codec

import (
	"math"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/utils"
)

// Signed7 sign extends a 7-bit delta.
func Signed7(b byte) int {
	v := int(b & 0x7F)
	if v > 63 {
		return v - 128
	}
	return v
}

// Signed8 interprets a byte as a two's complement delta.
func Signed8(b byte) int {
	return int(int8(b))
}

// Signed12 sign extends the low 12 bits of v.
func Signed12(v uint16) int {
	n := int(v & 0x0FFF)
	if n > 0x7FF {
		return n - 0x1000
	}
	return n
}

// cursor converts absolute coordinates into integer deltas. The rounding error of a
// delta is carried into the next one so that positions never drift.
type cursor struct {
	x, y float64
}

func (c *cursor) delta(s needlework.Stitch, lo, hi int) (dx, dy int) {
	dx = roundDelta(s.X-c.x, lo, hi)
	dy = roundDelta(s.Y-c.y, lo, hi)
	c.x += float64(dx)
	c.y += float64(dy)
	return
}

func roundDelta(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return 0
	}
	v = utils.Clamp(math.Round(v), float64(lo), float64(hi))
	return int(v)
}
