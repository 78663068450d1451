package codec

import (
	"github.com/esimov/needlework"
	"github.com/esimov/needlework/utils"
)

// PEC stitch stream codes.
const (
	PECFlagLong    = 0x80
	PECJumpCode    = 0x10
	PECTrimCode    = 0x20
	PECEnd         = 0xFF
	PECColorChange = 0xFE
	PECColorMarker = 0xB0
)

// PEC deltas outside [-2048, 2047] can not be represented.
const (
	PECMinDelta = -0x800
	PECMaxDelta = 0x7FF
)

// PECMaxStitch is the stitch and jump length written by default.
const PECMaxStitch = 2000

// PECMaxLength is the longest segment the PEC stream can encode, leaving
// half a unit for the carried rounding error.
const PECMaxLength = PECMaxDelta - 0.5

// PutPECValue writes one coordinate delta. Short deltas take a single 7-bit byte,
// long deltas or deltas carrying a jump or trim flag take two bytes with the
// 12-bit value in big-endian order.
func PutPECValue(w *Writer, v int, long bool, flag byte) {
	v = utils.Clamp(v, PECMinDelta, PECMaxDelta)
	if !long && flag == 0 && v >= -64 && v <= 63 {
		w.Byte(byte(v & 0x7F))
		return
	}
	w.Uint16BE(uint16(v&0x0FFF) | 0x8000 | uint16(flag)<<8)
}

func putPECStitch(w *Writer, dx, dy int) {
	long := dx < -64 || dx > 63 || dy < -64 || dy > 63
	PutPECValue(w, dx, long, 0)
	PutPECValue(w, dy, long, 0)
}

// EncodePECStitches writes the command stream of p as a PEC stitch block, terminated
// by the end byte. Trims are carried by the flag of the following jump.
func EncodePECStitches(w *Writer, p *needlework.Pattern) {
	var (
		c        cursor
		colorTwo = true
		trimmed  bool
	)
	flushTrim := func() {
		if trimmed {
			PutPECValue(w, 0, true, PECTrimCode)
			PutPECValue(w, 0, true, PECTrimCode)
			trimmed = false
		}
	}

	for _, s := range p.Stitches() {
		switch s.Command.Kind() {
		case needlework.CmdStitch:
			flushTrim()
			dx, dy := c.delta(s, PECMinDelta, PECMaxDelta)
			putPECStitch(w, dx, dy)
		case needlework.CmdJump:
			flag := byte(PECJumpCode)
			if trimmed {
				flag = PECTrimCode
				trimmed = false
			}
			dx, dy := c.delta(s, PECMinDelta, PECMaxDelta)
			PutPECValue(w, dx, true, flag)
			PutPECValue(w, dy, true, flag)
		case needlework.CmdTrim:
			trimmed = true
		case needlework.CmdColorChange, needlework.CmdNeedleSet, needlework.CmdStop:
			flushTrim()
			w.Byte(PECColorChange, PECColorMarker)
			if colorTwo {
				w.Byte(0x02)
			} else {
				w.Byte(0x01)
			}
			colorTwo = !colorTwo
		case needlework.CmdEnd:
			flushTrim()
			w.Byte(PECEnd)
			return
		}
	}
	flushTrim()
	w.Byte(PECEnd)
}

// DecodePECStitches reads a PEC stitch block into p, up to and including the end byte.
func DecodePECStitches(r *Reader, p *needlework.Pattern, limit int) error {
	lim := NewStitchLimit(r.Format(), limit)
	for {
		b1, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b1 == PECEnd {
			p.End()
			return nil
		}
		b2, err := r.ReadByte()
		if err != nil {
			return err
		}
		if err := lim.Add(); err != nil {
			return err
		}
		if b1 == PECColorChange && b2 == PECColorMarker {
			if _, err := r.ReadByte(); err != nil {
				return err
			}
			p.ColorChange()
			continue
		}

		var jump, trim bool
		var dx, dy int
		if b1&PECFlagLong != 0 {
			trim = b1&PECTrimCode != 0
			jump = b1&PECJumpCode != 0
			dx = Signed12(uint16(b1)<<8 | uint16(b2))
			if b2, err = r.ReadByte(); err != nil {
				return err
			}
		} else {
			dx = Signed7(b1)
		}
		if b2&PECFlagLong != 0 {
			trim = trim || b2&PECTrimCode != 0
			jump = jump || b2&PECJumpCode != 0
			b3, err := r.ReadByte()
			if err != nil {
				return err
			}
			dy = Signed12(uint16(b2)<<8 | uint16(b3))
		} else {
			dy = Signed7(b2)
		}

		switch {
		case trim:
			p.Trim()
			if dx != 0 || dy != 0 {
				p.Jump(float64(dx), float64(dy))
			}
		case jump:
			p.Jump(float64(dx), float64(dy))
		default:
			p.Stitch(float64(dx), float64(dy))
		}
	}
}
