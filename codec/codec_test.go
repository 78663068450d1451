package codec

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/esimov/needlework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commands(p *needlework.Pattern) []needlework.Command {
	var out []needlework.Command
	for _, s := range p.Stitches() {
		out = append(out, s.Command.Kind())
	}
	return out
}

func TestCodec_SignedBounds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-64, Signed7(64))
	assert.Equal(-1, Signed7(127))
	assert.Equal(63, Signed7(63))
	assert.Equal(0, Signed7(0))

	assert.Equal(-2048, Signed12(0x800))
	assert.Equal(-1, Signed12(0xFFF))
	assert.Equal(2047, Signed12(0x7FF))
	assert.Equal(-1, Signed12(0xBFFF))

	assert.Equal(-128, Signed8(0x80))
	assert.Equal(127, Signed8(0x7F))
}

func TestCodec_PECValue(t *testing.T) {
	assert := assert.New(t)

	w := NewWriter()
	PutPECValue(w, -64, false, 0)
	PutPECValue(w, 63, false, 0)
	PutPECValue(w, 64, false, 0)
	PutPECValue(w, -1, true, PECJumpCode)
	PutPECValue(w, 5000, true, PECTrimCode)
	assert.Equal([]byte{0x40, 0x3F, 0x80, 0x40, 0x9F, 0xFF, 0xA7, 0xFF}, w.Bytes())
}

func TestCodec_PECStream(t *testing.T) {
	assert := assert.New(t)

	src := needlework.NewPattern()
	src.Stitch(10, -20)
	src.Stitch(500, 100)
	src.Jump(-300, 0)
	src.Stitch(1, 1)
	src.Trim()
	src.Jump(40, 40)
	src.Stitch(0, 0)
	src.ColorChange()
	src.Stitch(-64, 63)
	src.Trim()
	src.ColorChange()
	src.End()

	w := NewWriter()
	EncodePECStitches(w, src)

	dst := needlework.NewPattern()
	err := DecodePECStitches(NewReader(bytes.NewReader(w.Bytes()), "pec"), dst, 0)
	require.NoError(t, err)

	assert.Equal(commands(src), commands(dst))
	for i, s := range src.Stitches() {
		assert.Equal(s.X, dst.Stitches()[i].X, "x of %d", i)
		assert.Equal(s.Y, dst.Stitches()[i].Y, "y of %d", i)
	}
}

func TestCodec_PECColorToggle(t *testing.T) {
	assert := assert.New(t)

	p := needlework.NewPattern()
	p.ColorChange()
	p.ColorChange()
	p.ColorChange()
	w := NewWriter()
	EncodePECStitches(w, p)
	assert.Equal([]byte{0xFE, 0xB0, 0x02, 0xFE, 0xB0, 0x01, 0xFE, 0xB0, 0x02, 0xFF}, w.Bytes())
}

func TestCodec_JEFStream(t *testing.T) {
	assert := assert.New(t)

	src := needlework.NewPattern()
	src.AddThread(needlework.NewThread(0xFF0000))
	src.AddThread(needlework.NewThread(0x0000FF))
	src.Stitch(10, 20)
	src.Jump(-100, 50)
	src.Stitch(127, -127)
	src.Trim()
	src.ColorChange()
	src.Stitch(1, 1)
	src.End()

	w := NewWriter()
	EncodeJEFStitches(w, src)
	assert.Equal([]byte{0x80, 0x10}, w.Bytes()[w.Len()-2:])

	dst := needlework.NewPattern()
	dst.AddThread(needlework.NewThread(0xFF0000))
	dst.AddThread(needlework.NewThread(0x0000FF))
	err := DecodeJEFStitches(NewReader(bytes.NewReader(w.Bytes()), "jef"), dst, 0)
	require.NoError(t, err)

	assert.Equal(commands(src), commands(dst))
	assert.Equal(src.Bounds(), dst.Bounds())
}

func TestCodec_JEFColorChangeBecomesStop(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0x01, 0x01,
		0x80, 0x01, 0x00, 0x00,
		0x01, 0x01,
		0x80, 0x01, 0x00, 0x00,
		0x80, 0x10,
	}
	p := needlework.NewPattern()
	p.AddThread(needlework.NewThread(0xFF0000))
	p.AddThread(needlework.NewThread(0x00FF00))
	require.NoError(t, DecodeJEFStitches(NewReader(bytes.NewReader(data), "jef"), p, 0))

	assert.Equal([]needlework.Command{
		needlework.CmdStitch, needlework.CmdColorChange,
		needlework.CmdStitch, needlework.CmdStop,
		needlework.CmdEnd,
	}, commands(p))
	assert.Equal(-1.0, p.Stitches()[0].Y)
}

func TestCodec_JEFUnknownControl(t *testing.T) {
	p := needlework.NewPattern()
	err := DecodeJEFStitches(NewReader(bytes.NewReader([]byte{0x80, 0x7E, 0, 0}), "jef"), p, 0)
	assert.True(t, needlework.IsParseError(err))
}

func TestCodec_U01Stream(t *testing.T) {
	assert := assert.New(t)

	src := needlework.NewPattern()
	src.Stitch(10, 20)
	src.Stitch(-200, -3)
	src.AddStitchRelative(0, 0, needlework.CmdFast)
	src.Jump(0, 255)
	src.AddStitchRelative(0, 0, needlework.CmdSlow)
	src.Stitch(-1, 0)
	src.Trim()
	src.NeedleSet(3)
	src.Stitch(5, 5)
	src.Stop()
	src.End()

	w := NewWriter()
	EncodeU01Stitches(w, src)
	assert.Equal(0, w.Len()%3)
	assert.Equal([]byte{0xF8, 0x00, 0x00}, w.Bytes()[w.Len()-3:])

	dst := needlework.NewPattern()
	err := DecodeU01Stitches(NewReader(bytes.NewReader(w.Bytes()), "u01"), dst, 0)
	require.NoError(t, err)

	assert.Equal(commands(src), commands(dst))
	assert.Equal(src.Bounds(), dst.Bounds())
	assert.Equal(3, dst.Stitches()[7].Command.Needle())
}

func TestCodec_U01ColorChangeCyclesNeedles(t *testing.T) {
	assert := assert.New(t)

	p := needlework.NewPattern()
	p.ColorChange()
	p.ColorChange()
	w := NewWriter()
	EncodeU01Stitches(w, p)
	assert.Equal(byte(0xE0|0x0A), w.Bytes()[0])
	assert.Equal(byte(0xE0|0x0B), w.Bytes()[3])
}

func TestCodec_Truncated(t *testing.T) {
	assert := assert.New(t)

	err := DecodePECStitches(NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x90}), "pec"), needlework.NewPattern(), 0)
	assert.True(needlework.IsParseError(err))

	err = DecodeJEFStitches(NewReader(bytes.NewReader([]byte{0x01, 0x02}), "jef"), needlework.NewPattern(), 0)
	assert.True(needlework.IsParseError(err))

	err = DecodeU01Stitches(NewReader(bytes.NewReader([]byte{0x80, 0x01}), "u01"), needlework.NewPattern(), 0)
	assert.True(needlework.IsParseError(err))
}

func TestCodec_IOErrorIsNotParseError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("device unplugged")
	err := DecodeU01Stitches(NewReader(iotest.ErrReader(failure), "u01"), needlework.NewPattern(), 0)
	assert.Error(err)
	assert.False(needlework.IsParseError(err))
	assert.ErrorIs(err, failure)
}

func TestCodec_StitchCap(t *testing.T) {
	assert := assert.New(t)

	// one record over the default limit, without an end record
	data := bytes.Repeat([]byte{0xE0, 0x00, 0x00}, needlework.MaxStitches+1)
	err := DecodeU01Stitches(NewReader(bytes.NewReader(data), "u01"), needlework.NewPattern(), 0)
	assert.True(needlework.IsParseError(err))
	assert.Contains(err.Error(), "limit 1000000")
	assert.Contains(err.Error(), "observed 1000001")

	data = bytes.Repeat([]byte{0x01, 0x01}, 11)
	err = DecodePECStitches(NewReader(bytes.NewReader(data), "pec"), needlework.NewPattern(), 10)
	assert.True(needlework.IsParseError(err))

	err = DecodeJEFStitches(NewReader(bytes.NewReader(data), "jef"), needlework.NewPattern(), 10)
	assert.True(needlework.IsParseError(err))
}

func TestCodec_ReaderWriter(t *testing.T) {
	assert := assert.New(t)

	w := NewWriter()
	w.Int16LE(-2)
	w.Uint24LE(0x123456)
	w.Int32LE(-5)
	w.Text("AB")
	w.Pad(2, 0x20)
	w.PutUint24LE(2, 0x010203)

	r := NewReader(bytes.NewReader(w.Bytes()), "test")
	v16, err := r.Int16LE()
	assert.NoError(err)
	assert.Equal(-2, v16)
	v24, err := r.Uint24LE()
	assert.NoError(err)
	assert.Equal(0x010203, v24)
	v32, err := r.Int32LE()
	assert.NoError(err)
	assert.Equal(-5, v32)
	assert.NoError(r.SkipTo(13))
	assert.Equal(int64(13), r.Offset())

	err = r.SkipTo(2)
	assert.True(needlework.IsParseError(err))
	err = r.Skip(10)
	assert.True(needlework.IsParseError(err))

	var out bytes.Buffer
	assert.NoError(w.Flush(&out))
	assert.Equal(13, out.Len())
}
