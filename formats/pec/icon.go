package pec

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/needlework"
	"golang.org/x/image/vector"
)

// The machine LCD shows a monochrome 48x38 icon per color block.
const (
	IconWidth  = 48
	IconHeight = 38
	IconStride = IconWidth / 8
	IconSize   = IconStride * IconHeight

	// icons are rasterized at a higher resolution and downsampled
	iconScale  = 4
	iconMargin = 3
	iconLine   = 0.5 * iconScale
	iconCutoff = 0x40
)

type segment struct {
	x0, y0, x1, y1 float64
}

// renderIcon draws the segments into a bordered 1-bit icon. Coordinates are fitted into
// the icon keeping the aspect ratio of the bounds. Bits are stored least significant first.
func renderIcon(segments []segment, b needlework.Bounds) []byte {
	w, h := IconWidth*iconScale, IconHeight*iconScale
	z := vector.NewRasterizer(w, h)

	bw, bh := math.Max(b.Width(), 1), math.Max(b.Height(), 1)
	innerW := float64((IconWidth - 2*iconMargin) * iconScale)
	innerH := float64((IconHeight - 2*iconMargin) * iconScale)
	scale := math.Min(innerW/bw, innerH/bh)
	offX := (float64(w) - bw*scale) / 2
	offY := (float64(h) - bh*scale) / 2

	project := func(x, y float64) (float32, float32) {
		return float32((x-b.MinX)*scale + offX), float32((y-b.MinY)*scale + offY)
	}

	for _, s := range segments {
		x0, y0 := project(s.x0, s.y0)
		x1, y1 := project(s.x1, s.y1)
		dx, dy := float64(x1-x0), float64(y1-y0)
		l := math.Hypot(dx, dy)
		if l == 0 {
			dx, dy, l = 1, 0, 1
		}
		// normal of the segment, half a pixel wide on each side
		nx, ny := float32(-dy/l*iconLine), float32(dx/l*iconLine)
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	small := imaging.Resize(dst, IconWidth, IconHeight, imaging.Box)

	icon := make([]byte, IconSize)
	set := func(x, y int) {
		icon[y*IconStride+x/8] |= 1 << uint(x%8)
	}
	for y := 0; y < IconHeight; y++ {
		for x := 0; x < IconWidth; x++ {
			if small.Pix[y*small.Stride+x*4+3] >= iconCutoff {
				set(x, y)
			}
		}
	}
	for x := 0; x < IconWidth; x++ {
		set(x, 0)
		set(x, IconHeight-1)
	}
	for y := 0; y < IconHeight; y++ {
		set(0, y)
		set(IconWidth-1, y)
	}
	return icon
}

// iconSegments splits the stitch segments of p per color block. The first entry holds
// every segment of the design, entry i+1 the segments of block i.
func iconSegments(p *needlework.Pattern, blocks int) [][]segment {
	out := make([][]segment, blocks+1)
	block := 0
	var px, py float64
	for i, s := range p.Stitches() {
		switch s.Command.Kind() {
		case needlework.CmdStitch:
			if i > 0 {
				seg := segment{px, py, s.X, s.Y}
				out[0] = append(out[0], seg)
				if block+1 < len(out) {
					out[block+1] = append(out[block+1], seg)
				}
			}
		case needlework.CmdColorChange, needlework.CmdNeedleSet, needlework.CmdStop:
			block++
		}
		px, py = s.X, s.Y
	}
	return out
}
