package u01

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/codec"
	"github.com/esimov/needlework/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario() *needlework.Pattern {
	p := needlework.NewPattern()
	p.AddThread(needlework.NewThread(0xFF0000))
	p.AddThread(needlework.NewThread(0x0000FF))
	p.AddStitchAbsolute(needlework.CmdStitch, 0, 0)
	p.AddStitchAbsolute(needlework.CmdStitch, 100, 0)
	p.ColorChange()
	p.AddStitchAbsolute(needlework.CmdStitch, 100, 100)
	p.End()
	return p
}

func TestU01_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, scenario()))
	data := buf.Bytes()
	assert.Equal(bytes.Repeat([]byte{'0'}, headerText), data[:headerText])
	assert.Equal(0, (len(data)-headerSize)%3)
	assert.Equal(int16(100), int16(binary.LittleEndian.Uint16(data[headerText+4:])))

	dst, err := Read(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(needlework.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, dst.Bounds())
	assert.GreaterOrEqual(dst.CountStitches(), 3)
	assert.Equal(0, dst.CountColorChanges())
	assert.Equal(1, dst.CountThreadChanges())

	assert.Len(dst.Threads(), 2)
	assert.Equal(palette.Filler(0), dst.Threads()[0])
	assert.Equal(palette.Filler(1), dst.Threads()[1])

	for _, s := range dst.Stitches() {
		if s.Command.Is(needlework.CmdNeedleSet) {
			assert.Equal(2, s.Command.Needle())
		}
	}
}

func TestU01_SpeedsAreKept(t *testing.T) {
	assert := assert.New(t)

	src := needlework.NewPattern()
	src.Stitch(10, 10)
	src.AddStitchRelative(0, 0, needlework.CmdFast)
	src.Stitch(10, 0)
	src.AddStitchRelative(0, 0, needlework.CmdSlow)
	src.Jump(0, 50)
	src.End()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src))
	dst, err := Read(&buf)
	require.NoError(t, err)

	var kinds []needlework.Command
	for _, s := range dst.Stitches() {
		kinds = append(kinds, s.Command.Kind())
	}
	assert.Equal([]needlework.Command{
		needlework.CmdStitch,
		needlework.CmdFast, needlework.CmdStitch,
		needlework.CmdSlow, needlework.CmdJump,
		needlework.CmdEnd,
	}, kinds)
	assert.Len(dst.Threads(), 1)
}

func TestU01_OversizedLimitsAreCapped(t *testing.T) {
	assert := assert.New(t)

	src := needlework.NewPattern()
	src.AddStitchAbsolute(needlework.CmdStitch, 0, 0)
	src.AddStitchAbsolute(needlework.CmdStitch, 500, 0)
	src.AddStitchAbsolute(needlework.CmdJump, 900, 0)
	src.End()

	s := DefaultSettings()
	s.MaxStitch, s.MaxJump = 1000, 1000
	s.LongStitch = needlework.LongStitchNone

	var buf bytes.Buffer
	require.NoError(t, WriteWith(&buf, src, needlework.NewTranscoder(s)))
	dst, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(900.0, dst.Bounds().MaxX)
	assert.LessOrEqual(dst.MaxStitchLength(), float64(codec.U01MaxDelta))
	assert.Greater(dst.CountJumps(), 1)
}

func TestU01_Malformed(t *testing.T) {
	assert := assert.New(t)

	_, err := Read(bytes.NewReader(make([]byte, 0x80)))
	assert.True(needlework.IsParseError(err))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, scenario()))
	data := buf.Bytes()

	_, err = Read(bytes.NewReader(data[:len(data)-3]))
	assert.True(needlework.IsParseError(err))

	bad := append([]byte(nil), data...)
	bad[headerSize] = 0x80 | 0x1F
	_, err = Read(bytes.NewReader(bad))
	assert.True(needlework.IsParseError(err))
}
