// Package pec reads and writes Brother PEC embroidery files.
//
// A PEC file starts with the "#PEC0001" magic followed by the label block, the thread
// table indexing the fixed Brother palette, the stitch block and one LCD icon for the
// whole design plus one per color block.
package pec

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/codec"
	"github.com/esimov/needlework/palette"
	"github.com/pkg/errors"
)

const formatName = "pec"

// Magic is the signature of a standalone PEC file.
const Magic = "#PEC0001"

const (
	labelSize = 16
	// the color count byte, the color indexes and their padding take a fixed area
	colorArea = 0x1CF
	maxColors = 256
)

// DefaultSettings returns the encoder settings honoring the PEC limits.
func DefaultSettings() needlework.EncoderSettings {
	s := needlework.DefaultEncoderSettings()
	s.MaxStitch = codec.PECMaxStitch
	s.MaxJump = codec.PECMaxStitch
	s.LongStitch = needlework.LongStitchSewTo
	s.WritesSpeeds = false
	return s
}

// Read decodes a standalone PEC file.
func Read(r io.Reader) (*needlework.Pattern, error) {
	cr := codec.NewReader(r, formatName)
	magic := make([]byte, len(Magic))
	if err := cr.ReadFull(magic); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return nil, needlework.NewParseError(formatName, "bad magic %q", magic)
	}
	p := needlework.NewPattern()
	if err := ReadSection(cr, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadSection decodes the PEC section following the magic.
func ReadSection(r *codec.Reader, p *needlework.Pattern) error {
	label := make([]byte, 3+labelSize+1)
	if err := r.ReadFull(label); err != nil {
		return err
	}
	if !bytes.HasPrefix(label, []byte("LA:")) {
		return needlework.NewParseError(formatName, "missing label block")
	}
	if name := strings.TrimSpace(string(label[3 : 3+labelSize])); name != "" {
		p.AddMetadata("name", name)
	}
	if err := r.Skip(12 + 2); err != nil {
		return err
	}
	stride, err := r.ReadByte()
	if err != nil {
		return err
	}
	height, err := r.ReadByte()
	if err != nil {
		return err
	}
	if err := r.Skip(12); err != nil {
		return err
	}

	last, err := r.ReadByte()
	if err != nil {
		return err
	}
	colors := int(last) + 1
	indexes := make([]byte, colors)
	if err := r.ReadFull(indexes); err != nil {
		return err
	}
	for _, idx := range indexes {
		t, ok := palette.PECThread(int(idx))
		if !ok {
			return needlework.NewParseError(formatName, "thread index %d out of range (palette has %d entries)", idx, len(palette.PEC()))
		}
		p.AddThread(t)
	}
	if err := r.Skip(int64(colorArea - 1 - colors)); err != nil {
		return err
	}

	blockStart := r.Offset()
	if err := r.Skip(2); err != nil {
		return err
	}
	length, err := r.Uint24LE()
	if err != nil {
		return err
	}
	if err := r.Skip(3 + 4*2); err != nil {
		return err
	}
	if err := codec.DecodePECStitches(r, p, 0); err != nil {
		return err
	}
	if err := r.SkipTo(blockStart + int64(length)); err != nil {
		return errors.Wrap(err, "stitch block length")
	}

	if err := r.Skip(int64(stride) * int64(height) * int64(colors+1)); err != nil {
		return errors.Wrap(err, "icons")
	}
	p.InterpolateDuplicateColorAsStop()
	return nil
}

// Write encodes p as a standalone PEC file using the default settings.
func Write(w io.Writer, p *needlework.Pattern) error {
	return WriteWith(w, p, needlework.NewTranscoder(DefaultSettings()))
}

// WriteWith encodes p as a standalone PEC file after running it through t. Stitches
// and jumps longer than a PEC delta are split whatever the settings of t.
func WriteWith(w io.Writer, p *needlework.Pattern, t *needlework.Transcoder) error {
	out := codec.NewWriter()
	out.Text(Magic)
	if err := WriteSection(out, t.Limited(codec.PECMaxLength).Transcode(p)); err != nil {
		return err
	}
	return out.Flush(w)
}

// blockThreads returns the thread of every color block and marks the blocks opened
// by a stop. A stop keeps the thread, missing threads are replaced by fillers and
// unused trailing threads are kept.
func blockThreads(p *needlework.Pattern) ([]needlework.Thread, []bool) {
	threads := p.Threads()
	get := func(i int) needlework.Thread {
		if i < len(threads) {
			return threads[i]
		}
		return palette.Filler(i)
	}

	out := []needlework.Thread{get(0)}
	stops := []bool{false}
	idx := 0
	for _, s := range p.Stitches() {
		switch s.Command.Kind() {
		case needlework.CmdColorChange, needlework.CmdNeedleSet:
			idx++
			out = append(out, get(idx))
			stops = append(stops, false)
		case needlework.CmdStop:
			out = append(out, out[len(out)-1])
			stops = append(stops, true)
		}
	}
	for idx+1 < len(threads) {
		idx++
		out = append(out, threads[idx])
		stops = append(stops, false)
	}
	return out, stops
}

// blockSlots maps the color blocks to palette indexes. Every thread change takes a slot
// of its own, so equal colors stay apart, while a stop repeats the slot of the block
// before it and is read back as a stop.
func blockSlots(blocks []needlework.Thread, stops []bool) []int {
	changes := make([]needlework.Thread, 0, len(blocks))
	for i, th := range blocks {
		if !stops[i] {
			changes = append(changes, th)
		}
	}
	assigned := palette.NewQuantizer(palette.PEC(), 1, true).Assign(changes)

	slots := make([]int, len(blocks))
	next := 0
	for i := range blocks {
		if stops[i] && i > 0 {
			slots[i] = slots[i-1]
			continue
		}
		slots[i] = assigned[next]
		next++
	}
	return slots
}

// WriteSection encodes the PEC section of an already transcoded pattern.
func WriteSection(out *codec.Writer, p *needlework.Pattern) error {
	blocks, stops := blockThreads(p)
	if len(blocks) > maxColors {
		return needlework.LimitError(formatName, "color count", maxColors, len(blocks))
	}
	slots := blockSlots(blocks, stops)

	name, _ := p.Metadata("name")
	if len(name) > labelSize {
		name = name[:labelSize]
	}
	out.Text("LA:" + name + strings.Repeat(" ", labelSize-len(name)) + "\r")
	out.Pad(12, 0x20)
	out.Byte(0xFF, 0x00, IconStride, IconHeight)
	out.Pad(12, 0x20)
	out.Byte(byte(len(slots) - 1))
	for _, s := range slots {
		out.Byte(byte(s))
	}
	out.Pad(colorArea-1-len(slots), 0x20)

	b := p.Bounds()
	blockStart := out.Len()
	out.Byte(0x00, 0x00)
	out.Uint24LE(0)
	out.Byte(0x31, 0xFF, 0xF0)
	out.Int16LE(int(math.Round(b.Width())))
	out.Int16LE(int(math.Round(b.Height())))
	out.Int16LE(0x1E0)
	out.Int16LE(0x1B0)
	codec.EncodePECStitches(out, p)
	out.PutUint24LE(blockStart+2, out.Len()-blockStart)

	for _, segs := range iconSegments(p, len(blocks)) {
		out.Write(renderIcon(segs, b))
	}
	return nil
}
