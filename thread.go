package needlework

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Thread describes an embroidery thread. Color is packed as 0xRRGGBB,
// the upper byte may carry an alpha tag.
type Thread struct {
	Color         uint32
	Description   string
	Brand         string
	CatalogNumber string
	// Chart is the thread chart name, empty if unknown.
	Chart string
}

var namedColors = map[string]uint32{
	"black":   0x000000,
	"white":   0xFFFFFF,
	"red":     0xFF0000,
	"green":   0x008000,
	"lime":    0x00FF00,
	"blue":    0x0000FF,
	"yellow":  0xFFFF00,
	"cyan":    0x00FFFF,
	"magenta": 0xFF00FF,
	"orange":  0xFFA500,
	"purple":  0x800080,
	"pink":    0xFFC0CB,
	"brown":   0xA52A2A,
	"gray":    0x808080,
	"grey":    0x808080,
	"silver":  0xC0C0C0,
	"gold":    0xFFD700,
	"navy":    0x000080,
	"teal":    0x008080,
	"maroon":  0x800000,
	"olive":   0x808000,
	"violet":  0xEE82EE,
	"beige":   0xF5F5DC,
	"khaki":   0xF0E68C,
}

// NewThread creates a thread of the given color.
func NewThread(color uint32) Thread {
	return Thread{Color: color}
}

// ThreadFromRGB creates a thread from separate color channels.
func ThreadFromRGB(r, g, b uint8) Thread {
	return Thread{Color: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// ParseColor parses a hex color (#rgb, #rrggbb, #rrggbbaa, with or without the leading hash)
// or one of the common color names.
func ParseColor(s string) (uint32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return 0, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid color %q", s)
	}
	return uint32(v), nil
}

// Red returns the red channel.
func (t Thread) Red() uint8 { return uint8(t.Color >> 16) }

// Green returns the green channel.
func (t Thread) Green() uint8 { return uint8(t.Color >> 8) }

// Blue returns the blue channel.
func (t Thread) Blue() uint8 { return uint8(t.Color) }

// RGB returns the color without the alpha tag.
func (t Thread) RGB() uint32 { return t.Color & 0xFFFFFF }

// Hex returns the color formatted as #rrggbb.
func (t Thread) Hex() string {
	return fmt.Sprintf("#%06x", t.RGB())
}

// SameColor reports whether both threads share the same RGB color.
func (t Thread) SameColor(o Thread) bool {
	return t.RGB() == o.RGB()
}

// ColorDistance returns the red-mean weighted distance between two thread colors.
func (t Thread) ColorDistance(o Thread) float64 {
	rmean := (float64(t.Red()) + float64(o.Red())) / 2
	r := float64(t.Red()) - float64(o.Red())
	g := float64(t.Green()) - float64(o.Green())
	b := float64(t.Blue()) - float64(o.Blue())

	return math.Sqrt((2+rmean/256)*r*r + 4*g*g + (2+(255-rmean)/256)*b*b)
}

func (t Thread) String() string {
	if t.Description != "" {
		return fmt.Sprintf("%s %s", t.Hex(), t.Description)
	}
	return t.Hex()
}
