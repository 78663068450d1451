package codec

import "github.com/esimov/needlework"

// JEF escape and control codes.
const (
	JEFEscape      = 0x80
	JEFColorChange = 0x01
	JEFJump        = 0x02
	JEFEnd         = 0x10
)

// JEF deltas are signed bytes, -128 is taken by the escape code.
const (
	JEFMinDelta = -127
	JEFMaxDelta = 127
)

// JEFMaxLength is the longest segment the JEF stream can encode, leaving
// half a unit for the carried rounding error.
const JEFMaxLength = JEFMaxDelta - 0.5

func putJEFDelta(w *Writer, dx, dy int) {
	w.Byte(byte(int8(dx)), byte(int8(-dy)))
}

// EncodeJEFStitches writes the command stream of p as JEF stitch records, terminated
// by the end escape. Y grows downwards in the file. Trims are zero length jumps.
func EncodeJEFStitches(w *Writer, p *needlework.Pattern) {
	var c cursor
	for _, s := range p.Stitches() {
		switch s.Command.Kind() {
		case needlework.CmdStitch:
			dx, dy := c.delta(s, JEFMinDelta, JEFMaxDelta)
			putJEFDelta(w, dx, dy)
		case needlework.CmdJump:
			dx, dy := c.delta(s, JEFMinDelta, JEFMaxDelta)
			if dx == 0 && dy == 0 {
				continue
			}
			w.Byte(JEFEscape, JEFJump)
			putJEFDelta(w, dx, dy)
		case needlework.CmdTrim:
			w.Byte(JEFEscape, JEFJump)
			putJEFDelta(w, 0, 0)
		case needlework.CmdColorChange, needlework.CmdNeedleSet, needlework.CmdStop:
			dx, dy := c.delta(s, JEFMinDelta, JEFMaxDelta)
			w.Byte(JEFEscape, JEFColorChange)
			putJEFDelta(w, dx, dy)
		case needlework.CmdEnd:
			w.Byte(JEFEscape, JEFEnd)
			return
		}
	}
	w.Byte(JEFEscape, JEFEnd)
}

// DecodeJEFStitches reads JEF stitch records into p up to the end escape. The thread list
// of p must already be populated: a color change only advances to the next thread while
// threads remain, otherwise it is read as a stop.
func DecodeJEFStitches(r *Reader, p *needlework.Pattern, limit int) error {
	lim := NewStitchLimit(r.Format(), limit)
	colorIndex := 1
	var rec [2]byte

	for {
		if err := r.ReadFull(rec[:]); err != nil {
			return err
		}
		if err := lim.Add(); err != nil {
			return err
		}
		if rec[0] != JEFEscape {
			p.Stitch(float64(Signed8(rec[0])), float64(-Signed8(rec[1])))
			continue
		}

		ctrl := rec[1]
		if ctrl == JEFEnd {
			p.End()
			return nil
		}
		if err := r.ReadFull(rec[:]); err != nil {
			return err
		}
		dx, dy := float64(Signed8(rec[0])), float64(-Signed8(rec[1]))

		switch ctrl {
		case JEFColorChange:
			if colorIndex < len(p.Threads()) {
				colorIndex++
				p.AddStitchRelative(dx, dy, needlework.CmdColorChange)
			} else {
				p.AddStitchRelative(dx, dy, needlework.CmdStop)
			}
		case JEFJump:
			if dx == 0 && dy == 0 {
				p.Trim()
			} else {
				p.Jump(dx, dy)
			}
		default:
			return needlework.NewParseError(r.Format(), "unknown control code 0x%02X at offset %d", ctrl, r.Offset()-4)
		}
	}
}
