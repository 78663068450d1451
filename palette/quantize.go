package palette

import (
	"math"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/colorspace"
)

// Quantizer maps pattern threads onto the slots of a fixed palette.
type Quantizer struct {
	Palette Palette
	// First is the lowest assignable slot. Slots below it are reserved.
	First int
	// Exclusive assigns every slot at most once, until the palette runs out.
	Exclusive bool
}

// NewQuantizer creates a quantizer over the given palette.
func NewQuantizer(p Palette, first int, exclusive bool) *Quantizer {
	return &Quantizer{Palette: p, First: first, Exclusive: exclusive}
}

// Assign returns one palette slot for every thread, in order. Every thread takes the
// nearest available slot by RGB distance. When that slot is the one just given to the
// preceding thread and the two threads differ in color, the slot is disabled for a second
// search and restored afterwards, so two consecutive thread changes stay distinguishable.
// The repair looks back one thread only.
func (q *Quantizer) Assign(threads []needlework.Thread) []int {
	colors := q.Palette.Colors()
	available := q.reset(nil)
	slots := make([]int, 0, len(threads))

	prev := -1
	var prevThread needlework.Thread

	for i, t := range threads {
		slot := nearest(t.RGB(), colors, available)
		if slot < 0 && q.Exclusive {
			available = q.reset(available)
			if prev >= 0 && prev < len(available) {
				available[prev] = false
			}
			slot = nearest(t.RGB(), colors, available)
		}
		if slot < 0 {
			slot = q.First
		}
		if i > 0 && slot == prev && slot < len(available) && !t.SameColor(prevThread) {
			available[slot] = false
			if alt := nearest(t.RGB(), colors, available); alt >= 0 {
				slot = alt
			}
			available[prev] = !q.Exclusive
		}
		if q.Exclusive && slot >= 0 && slot < len(available) {
			available[slot] = false
		}
		slots = append(slots, slot)
		prev, prevThread = slot, t
	}
	return slots
}

func (q *Quantizer) reset(available []bool) []bool {
	if available == nil {
		available = make([]bool, len(q.Palette))
	}
	for i := range available {
		available[i] = i >= q.First
	}
	return available
}

func nearest(c uint32, colors []uint32, available []bool) int {
	best, bestDist := -1, math.Inf(1)
	for i, p := range colors {
		if !available[i] {
			continue
		}
		if d := colorspace.Distance(c, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
