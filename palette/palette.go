// Package palette holds the fixed thread palettes of the embroidery machines
// and assigns arbitrary pattern threads to palette slots.
package palette

import (
	"github.com/esimov/needlework"
	"github.com/esimov/needlework/colorspace"
)

// Palette is an ordered list of machine threads addressed by slot index.
type Palette []needlework.Thread

// PEC returns a copy of the 65 entry Brother thread table.
func PEC() Palette {
	return append(Palette(nil), pecThreads...)
}

// JEF returns a copy of the Janome thread table. Slot 0 is a placeholder.
func JEF() Palette {
	return append(Palette(nil), jefThreads...)
}

// PECThread returns the PEC thread stored in slot i and whether the slot exists.
func PECThread(i int) (needlework.Thread, bool) {
	return pecThreads.At(i)
}

// JEFThread returns the JEF thread stored in slot i and whether the slot exists.
// The reserved slot 0 is reported as missing.
func JEFThread(i int) (needlework.Thread, bool) {
	if i == 0 {
		return needlework.Thread{}, false
	}
	return jefThreads.At(i)
}

// Filler returns a stand-in thread for formats which do not store thread colors.
// Consecutive indexes give distinct colors.
func Filler(i int) needlework.Thread {
	if i < 0 {
		i = -i
	}
	t := pecThreads[1+i%(len(pecThreads)-1)]
	t.Brand, t.Chart = "", ""
	return t
}

// At returns the thread stored in slot i and whether the slot exists.
func (p Palette) At(i int) (needlework.Thread, bool) {
	if i < 0 || i >= len(p) {
		return needlework.Thread{}, false
	}
	return p[i], true
}

// Colors returns the packed colors of the palette.
func (p Palette) Colors() []uint32 {
	colors := make([]uint32, len(p))
	for i, t := range p {
		colors[i] = t.RGB()
	}
	return colors
}

// Nearest returns the slot closest to the thread color by RGB distance.
func (p Palette) Nearest(t needlework.Thread) int {
	return colorspace.FindNearestInPalette(t.RGB(), p.Colors())
}
