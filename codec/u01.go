package codec

import (
	"github.com/esimov/needlework"
	"github.com/esimov/needlework/utils"
)

// U01 control byte layout: the low five bits select the command,
// 0x20 negates the X delta and 0x40 keeps the Y delta positive.
const (
	U01Base       = 0x80
	U01NegativeX  = 0x20
	U01PositiveY  = 0x40
	U01Command    = 0x1F
	U01Stitch     = 0x00
	U01Jump       = 0x01
	U01FastStitch = 0x02
	U01FastJump   = 0x03
	U01SlowStitch = 0x04
	U01SlowJump   = 0x05
	U01Trim1      = 0x06
	U01Trim2      = 0x07
	U01Stop       = 0x08
	U01Needle1    = 0x09
	U01Needle15   = 0x17
	U01End        = 0x18
)

// U01MaxNeedles is the number of needles addressable by a needle record.
const U01MaxNeedles = U01Needle15 - U01Stop

// U01 deltas are unsigned byte magnitudes.
const U01MaxDelta = 0xFF

// U01MaxStitch is the stitch and jump length written by default, the
// range most machines reading U01 accept.
const U01MaxStitch = 127

// U01MaxLength is the longest segment the U01 stream can encode, leaving
// half a unit for the carried rounding error.
const U01MaxLength = U01MaxDelta - 0.5

func putU01(w *Writer, cmd byte, dx, dy int) {
	ctrl := byte(U01Base) | cmd
	if dy >= 0 {
		ctrl |= U01PositiveY
	}
	if dx <= 0 {
		ctrl |= U01NegativeX
	}
	w.Byte(ctrl, byte(utils.Abs(dy)), byte(utils.Abs(dx)))
}

// EncodeU01Stitches writes the command stream of p as 3-byte U01 records, terminated by
// the end record. Speed commands are folded into the following stitch or jump record.
func EncodeU01Stitches(w *Writer, p *needlework.Pattern) {
	var (
		c      cursor
		speed  byte
		needle = 1
	)
	for _, s := range p.Stitches() {
		switch s.Command.Kind() {
		case needlework.CmdStitch, needlework.CmdJump:
			dx, dy := c.delta(s, -U01MaxDelta, U01MaxDelta)
			cmd := byte(U01Stitch)
			if s.Command.Is(needlework.CmdJump) {
				cmd = U01Jump
			}
			putU01(w, cmd+speed, dx, dy)
			speed = 0
		case needlework.CmdFast:
			speed = U01FastStitch
		case needlework.CmdSlow:
			speed = U01SlowStitch
		case needlework.CmdTrim:
			putU01(w, U01Trim2, 0, 0)
		case needlework.CmdStop:
			putU01(w, U01Stop, 0, 0)
		case needlework.CmdNeedleSet, needlework.CmdColorChange:
			n := s.Command.Needle()
			if n < 1 {
				n = needle%U01MaxNeedles + 1
			}
			n = (n-1)%U01MaxNeedles + 1
			putU01(w, byte(U01Stop+n), 0, 0)
			needle = n
		case needlework.CmdEnd:
			putU01(w, U01End, 0, 0)
			return
		}
	}
	putU01(w, U01End, 0, 0)
}

// DecodeU01Stitches reads U01 records into p up to the end record.
func DecodeU01Stitches(r *Reader, p *needlework.Pattern, limit int) error {
	lim := NewStitchLimit(r.Format(), limit)
	var rec [3]byte

	for {
		if err := r.ReadFull(rec[:]); err != nil {
			return err
		}
		if err := lim.Add(); err != nil {
			return err
		}
		ctrl := rec[0]
		dx, dy := float64(rec[2]), -float64(rec[1])
		if ctrl&U01NegativeX != 0 {
			dx = -dx
		}
		if ctrl&U01PositiveY != 0 {
			dy = -dy
		}

		switch cmd := ctrl & U01Command; {
		case cmd == U01Stitch:
			p.Stitch(dx, dy)
		case cmd == U01Jump:
			p.Jump(dx, dy)
		case cmd == U01FastStitch, cmd == U01FastJump, cmd == U01SlowStitch, cmd == U01SlowJump:
			speed := needlework.CmdFast
			if cmd >= U01SlowStitch {
				speed = needlework.CmdSlow
			}
			p.AddStitchRelative(0, 0, speed)
			if cmd&1 == 1 {
				p.Jump(dx, dy)
			} else {
				p.Stitch(dx, dy)
			}
		case cmd == U01Trim1, cmd == U01Trim2:
			p.Trim()
			if dx != 0 || dy != 0 {
				p.Jump(dx, dy)
			}
		case cmd == U01Stop:
			p.AddStitchRelative(dx, dy, needlework.CmdStop)
		case cmd >= U01Needle1 && cmd <= U01Needle15:
			needle := int(cmd - U01Stop)
			p.AddStitchRelative(dx, dy, needlework.EncodeThreadChange(needlework.CmdNeedleSet, -1, needle, -1))
		case cmd == U01End:
			p.End()
			return nil
		default:
			return needlework.NewParseError(r.Format(), "unknown command 0x%02X at offset %d", cmd, r.Offset()-3)
		}
	}
}
