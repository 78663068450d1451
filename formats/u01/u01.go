// Package u01 reads and writes Barudan U01 embroidery files.
//
// U01 stores no thread colors. Needles are addressed directly and the reader
// assigns filler threads to every needle block it encounters.
package u01

import (
	"io"
	"math"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/codec"
	"github.com/esimov/needlework/palette"
)

const formatName = "u01"

const (
	headerSize = 0x100
	headerText = 0x80
)

// DefaultSettings returns the encoder settings honoring the U01 limits. Thread changes
// are written as needle selections and speed changes are kept.
func DefaultSettings() needlework.EncoderSettings {
	s := needlework.DefaultEncoderSettings()
	s.MaxStitch = codec.U01MaxStitch
	s.MaxJump = codec.U01MaxStitch
	s.LongStitch = needlework.LongStitchSewTo
	s.ThreadChangeCommand = needlework.CmdNeedleSet
	s.NeedleCount = codec.U01MaxNeedles
	s.WritesSpeeds = true
	return s
}

// Read decodes a U01 file.
func Read(r io.Reader) (*needlework.Pattern, error) {
	cr := codec.NewReader(r, formatName)
	if err := cr.Skip(headerSize); err != nil {
		return nil, err
	}
	p := needlework.NewPattern()
	if err := codec.DecodeU01Stitches(cr, p, 0); err != nil {
		return nil, err
	}
	for i := 0; i <= p.CountThreadChanges(); i++ {
		p.AddThread(palette.Filler(i))
	}
	return p, nil
}

// Write encodes p as a U01 file using the default settings.
func Write(w io.Writer, p *needlework.Pattern) error {
	return WriteWith(w, p, needlework.NewTranscoder(DefaultSettings()))
}

// WriteWith encodes p as a U01 file after running it through t. Stitches and jumps
// longer than a U01 delta are split whatever the settings of t.
func WriteWith(w io.Writer, p *needlework.Pattern, t *needlework.Transcoder) error {
	enc := t.Limited(codec.U01MaxLength).Transcode(p)
	out := codec.NewWriter()

	b := enc.Bounds()
	var lastX, lastY float64
	if n := enc.Len(); n > 0 {
		last := enc.Stitches()[n-1]
		lastX, lastY = last.X, last.Y
	}

	out.Pad(headerText, '0')
	out.Int16LE(round(b.MinX))
	out.Int16LE(-round(b.MaxY))
	out.Int16LE(round(b.MaxX))
	out.Int16LE(-round(b.MinY))
	out.Int32LE(0)
	out.Int32LE(enc.Len() + 1)
	out.Int16LE(round(lastX))
	out.Int16LE(-round(lastY))
	out.Pad(headerSize-out.Len(), 0x00)

	codec.EncodeU01Stitches(out, enc)
	return out.Flush(w)
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
