// Package jef reads and writes Janome JEF embroidery files.
package jef

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/codec"
	"github.com/esimov/needlework/palette"
	"github.com/esimov/needlework/utils"
)

const formatName = "jef"

const (
	headerSize = 0x74
	dateLayout = "20060102150405"
	threadType = 0x0D
	maxColors  = 1024
)

// Hoop codes stored in the header.
const (
	Hoop110x110 = 0
	Hoop50x50   = 1
	Hoop140x200 = 2
	Hoop126x110 = 3
	Hoop200x200 = 4
)

// HoopSize picks the smallest hoop fitting a design of the given size in tenths of a millimeter.
func HoopSize(width, height int) int {
	switch {
	case width < 500 && height < 500:
		return Hoop50x50
	case width < 1260 && height < 1100:
		return Hoop126x110
	case width < 1400 && height < 2000:
		return Hoop140x200
	case width < 2000 && height < 2000:
		return Hoop200x200
	}
	return Hoop110x110
}

// DefaultSettings returns the encoder settings honoring the JEF limits.
func DefaultSettings() needlework.EncoderSettings {
	s := needlework.DefaultEncoderSettings()
	s.MaxStitch = codec.JEFMaxDelta
	s.MaxJump = codec.JEFMaxDelta
	s.LongStitch = needlework.LongStitchSewTo
	s.WritesSpeeds = false
	return s
}

// ReadOptions tunes the JEF reader. The zero value keeps the stitches as stored.
type ReadOptions struct {
	// Trims inserts a trim in front of long runs of jumps, which many JEF
	// writers leave implicit.
	Trims bool
	// TrimAt is the shortest run of jumps that gets a trim. It defaults to 3
	// when Trims is set, and a positive value enables trimming on its own.
	TrimAt int
	// TrimDistance is the shortest run length in tenths of a millimeter, 30 when zero.
	TrimDistance float64
}

const (
	defaultTrimAt       = 3
	defaultTrimDistance = 30
)

// Read decodes a JEF file.
func Read(r io.Reader) (*needlework.Pattern, error) {
	return ReadWith(r, ReadOptions{})
}

// ReadWith decodes a JEF file with the given options.
func ReadWith(r io.Reader, o ReadOptions) (*needlework.Pattern, error) {
	cr := codec.NewReader(r, formatName)
	p := needlework.NewPattern()

	offset, err := cr.Int32LE()
	if err != nil {
		return nil, err
	}
	if err := cr.Skip(4); err != nil {
		return nil, err
	}
	date := make([]byte, 16)
	if err := cr.ReadFull(date); err != nil {
		return nil, err
	}
	if d := strings.TrimRight(string(date), "\x00 "); d != "" {
		p.AddMetadata("date", d)
	}

	colors, err := cr.Int32LE()
	if err != nil {
		return nil, err
	}
	if colors < 0 || colors > maxColors {
		return nil, needlework.LimitError(formatName, "color count", maxColors, colors)
	}
	points, err := cr.Int32LE()
	if err != nil {
		return nil, err
	}
	if points < 0 || points > needlework.MaxStitches {
		return nil, needlework.LimitError(formatName, "point count", needlework.MaxStitches, points)
	}
	if err := cr.SkipTo(headerSize); err != nil {
		return nil, err
	}

	for i := 0; i < colors; i++ {
		idx, err := cr.Int32LE()
		if err != nil {
			return nil, err
		}
		if idx == 0 {
			continue
		}
		t, ok := palette.JEFThread(idx)
		if !ok {
			return nil, needlework.NewParseError(formatName, "thread index %d out of range (palette has %d entries)", idx, len(palette.JEF()))
		}
		p.AddThread(t)
	}

	if offset < headerSize+4*colors {
		return nil, needlework.NewParseError(formatName, "stitch offset %d overlaps the header (%d colors)", offset, colors)
	}
	if err := cr.SkipTo(int64(offset)); err != nil {
		return nil, err
	}
	if err := codec.DecodeJEFStitches(cr, p, 0); err != nil {
		return nil, err
	}

	trimAt := o.TrimAt
	if o.Trims && trimAt <= 0 {
		trimAt = defaultTrimAt
	}
	if trimAt > 0 {
		dist := o.TrimDistance
		if dist <= 0 {
			dist = defaultTrimDistance
		}
		p.InterpolateTrims(trimAt, dist)
	}
	return p, nil
}

// Write encodes p as a JEF file using the default settings.
func Write(w io.Writer, p *needlework.Pattern) error {
	return WriteWith(w, p, needlework.NewTranscoder(DefaultSettings()))
}

// WriteWith encodes p as a JEF file after running it through t. Stitches and jumps
// longer than a JEF delta are split whatever the settings of t.
func WriteWith(w io.Writer, p *needlework.Pattern, t *needlework.Transcoder) error {
	enc := t.Limited(codec.JEFMaxLength).Transcode(p)
	out := codec.NewWriter()

	slots := palette.NewQuantizer(palette.JEF(), 1, false).Assign(blockThreads(enc))
	if len(slots) > maxColors {
		return needlework.LimitError(formatName, "color count", maxColors, len(slots))
	}
	b := enc.Bounds()
	width, height := int(math.Round(b.Width())), int(math.Round(b.Height()))
	halfW, halfH := int(math.Round(b.Width()/2)), int(math.Round(b.Height()/2))

	out.Int32LE(headerSize + 8*len(slots))
	out.Int32LE(0x14)
	date, ok := enc.Metadata("date")
	if !ok || len(date) != len(dateLayout) {
		date = time.Now().Format(dateLayout)
	}
	out.Text(date)
	out.Pad(2, 0x00)
	out.Int32LE(len(slots))
	pointsAt := out.Len()
	out.Int32LE(0)
	out.Int32LE(HoopSize(width, height))

	out.Int32LE(halfW)
	out.Int32LE(halfH)
	out.Int32LE(halfW)
	out.Int32LE(halfH)

	putHoopEdge(out, 550-halfW, 550-halfH)
	putHoopEdge(out, 250-halfW, 250-halfH)
	putHoopEdge(out, 700-halfW, 1000-halfH)
	putHoopEdge(out, 630-halfW, 550-halfH)

	for _, s := range slots {
		out.Int32LE(s)
	}
	for range slots {
		out.Int32LE(threadType)
	}

	start := out.Len()
	codec.EncodeJEFStitches(out, enc)
	out.PutInt32LE(pointsAt, (out.Len()-start)/2)

	return out.Flush(w)
}

// putHoopEdge writes the distances from the design to the hoop edges, or -1 if it does not fit.
func putHoopEdge(out *codec.Writer, x, y int) {
	if utils.Min(x, y) < 0 {
		x, y = -1, -1
	}
	out.Int32LE(x)
	out.Int32LE(y)
	out.Int32LE(x)
	out.Int32LE(y)
}

// blockThreads lists the thread selected by every color change in stream order,
// followed by the threads no color change reaches. Stops do not take a palette entry.
func blockThreads(p *needlework.Pattern) []needlework.Thread {
	threads := p.Threads()
	get := func(i int) needlework.Thread {
		if i < len(threads) {
			return threads[i]
		}
		return palette.Filler(i)
	}

	out := []needlework.Thread{get(0)}
	idx := 0
	for _, s := range p.Stitches() {
		if s.Command.Is(needlework.CmdColorChange) || s.Command.Is(needlework.CmdNeedleSet) {
			idx++
			out = append(out, get(idx))
		}
	}
	for idx+1 < len(threads) {
		idx++
		out = append(out, threads[idx])
	}
	return out
}
