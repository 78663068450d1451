// Package colorspace converts packed 0xRRGGBB thread colors between the RGB, HSL and
// CIE L*a*b* color spaces and measures the distance between two colors.
package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Split unpacks a color into its channels. The alpha tag is ignored.
func Split(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Pack packs the channels into a 0xRRGGBB color.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Normalized returns the sRGB channels scaled to the [0, 1] range.
func Normalized(c uint32) (r, g, b float64) {
	ri, gi, bi := Split(c)
	return float64(ri) / 255, float64(gi) / 255, float64(bi) / 255
}

func toColorful(c uint32) colorful.Color {
	r, g, b := Normalized(c)
	return colorful.Color{R: r, G: g, B: b}
}

func fromColorful(c colorful.Color) uint32 {
	return Pack(c.Clamped().RGB255())
}

// ToHSL converts a color to hue (degrees in [0, 360)), saturation and lightness (both in [0, 1]).
func ToHSL(c uint32) (h, s, l float64) {
	return toColorful(c).Hsl()
}

// FromHSL converts hue, saturation and lightness back to a packed color.
// The hue wraps around, so -90 and 270 are the same.
func FromHSL(h, s, l float64) uint32 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// ToXYZ converts a color to CIE XYZ using the D65 illuminant.
func ToXYZ(c uint32) (x, y, z float64) {
	return toColorful(c).Xyz()
}

// ToLab converts a color to CIE L*a*b* through the D65 XYZ space, with L in [0, 100].
func ToLab(c uint32) (l, a, b float64) {
	l, a, b = toColorful(c).Lab()
	return l * 100, a * 100, b * 100
}
