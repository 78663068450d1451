package colorspace

import "math"

// Distance returns the flat Euclidean distance of two colors in RGB space.
// The result is on the 0-255 channel scale.
func Distance(c1, c2 uint32) float64 {
	return toColorful(c1).DistanceRgb(toColorful(c2)) * 255
}

// DeltaE returns the CIE76 color difference of two colors.
func DeltaE(c1, c2 uint32) float64 {
	return toColorful(c1).DistanceCIE76(toColorful(c2)) * 100
}

// FindNearestInPalette returns the index of the palette entry closest to c by RGB distance,
// or -1 if the palette is empty. Ties resolve to the lowest index.
func FindNearestInPalette(c uint32, palette []uint32) int {
	return argmin(c, palette, Distance)
}

// FindClosestDeltaE returns the index of the palette entry visually closest to c,
// or -1 if the palette is empty.
func FindClosestDeltaE(c uint32, palette []uint32) int {
	return argmin(c, palette, DeltaE)
}

func argmin(c uint32, palette []uint32, dist func(a, b uint32) float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, p := range palette {
		if d := dist(c, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
