package needlework

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePattern() *Pattern {
	p := NewPattern()
	p.AddThread(NewThread(0xFF0000))
	p.AddThread(NewThread(0x0000FF))
	p.AddStitchAbsolute(CmdStitch, 0, 0)
	p.AddStitchAbsolute(CmdStitch, 100, 0)
	p.AddCommand(CmdColorChange, 100, 0)
	p.AddStitchAbsolute(CmdStitch, 100, 100)
	p.End()
	return p
}

func TestPattern_Bounds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Bounds{}, NewPattern().Bounds())

	p := samplePattern()
	assert.Equal(Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, p.Bounds())
	assert.Equal(100.0, p.Width())
	assert.Equal(100.0, p.Height())

	p.AddStitchAbsolute(CmdJump, -50, 300)
	p.AddStitchAbsolute(CmdTrim, math.NaN(), math.Inf(1))
	assert.Equal(Bounds{MinX: -50, MinY: 0, MaxX: 100, MaxY: 300}, p.Bounds())
}

func TestPattern_RelativeStitches(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.Stitch(10, 5)
	p.Stitch(10, 5)
	p.Jump(-30, 0)
	p.AddCommand(CmdStop, 999, 999)
	p.Stitch(1, 1)

	st := p.Stitches()
	assert.Len(st, 5)
	assert.Equal(Stitch{X: 20, Y: 10, Command: CmdStitch}, st[1])
	assert.Equal(Stitch{X: -10, Y: 10, Command: CmdJump}, st[2])
	assert.Equal(Stitch{X: -9, Y: 11, Command: CmdStitch}, st[4])
}

func TestPattern_Counts(t *testing.T) {
	assert := assert.New(t)

	p := samplePattern()
	assert.Equal(3, p.CountStitches())
	assert.Equal(0, p.CountJumps())
	assert.Equal(0, p.CountTrims())
	assert.Equal(1, p.CountColorChanges())

	p.Trim()
	p.Jump(5, 5)
	assert.Equal(1, p.CountTrims())
	assert.Equal(1, p.CountJumps())
}

func TestPattern_StitchLengths(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	assert.Equal(0.0, p.AvgStitchLength())

	p.AddStitchAbsolute(CmdStitch, 0, 0)
	p.AddStitchAbsolute(CmdStitch, 30, 40)
	p.AddStitchAbsolute(CmdJump, 1000, 1000)
	p.AddStitchAbsolute(CmdStitch, 1010, 1000)

	assert.Equal(60.0, p.TotalStitchLength())
	assert.Equal(50.0, p.MaxStitchLength())
	assert.Equal(30.0, p.AvgStitchLength())

	// derived values follow every mutation
	p.AddStitchAbsolute(CmdStitch, 1010, 1100)
	assert.Equal(160.0, p.TotalStitchLength())
	assert.Equal(100.0, p.MaxStitchLength())

	stats := p.Statistics()
	assert.Equal(4, stats.Stitches)
	assert.Equal(1, stats.Jumps)
	assert.Equal(160.0, stats.TotalLength)
}

func TestPattern_EnsureEnd(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.EnsureEnd()
	assert.Equal(0, p.Len())

	p.Stitch(1, 1)
	p.EnsureEnd()
	p.EnsureEnd()
	assert.Equal(2, p.Len())
	assert.True(p.Stitches()[1].Command.Is(CmdEnd))
}

func TestPattern_Metadata(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.AddMetadata("name", "rose")
	p.AddMetadata("author", "me")

	v, ok := p.Metadata("name")
	assert.True(ok)
	assert.Equal("rose", v)
	_, ok = p.Metadata("missing")
	assert.False(ok)
	assert.Equal([]string{"author", "name"}, p.Extras())
}

func TestPattern_Transforms(t *testing.T) {
	assert := assert.New(t)

	p := samplePattern()
	p.MoveCenterToOrigin()
	assert.Equal(Bounds{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50}, p.Bounds())

	c := p.Copy()
	c.Translate(10, 0)
	assert.Equal(-50.0, p.Bounds().MinX)
	assert.Equal(-40.0, c.Bounds().MinX)
}

func TestPattern_RemoveDuplicates(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.AddStitchAbsolute(CmdStitch, 1, 1)
	p.AddStitchAbsolute(CmdStitch, 1, 1)
	p.AddStitchAbsolute(CmdJump, 1, 1)
	p.AddStitchAbsolute(CmdStitch, 2, 2)
	p.RemoveDuplicates()
	assert.Equal(3, p.Len())
}

func TestPattern_InterpolateTrims(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.AddStitchAbsolute(CmdStitch, 0, 0)
	p.AddStitchAbsolute(CmdJump, 50, 0)
	p.AddStitchAbsolute(CmdJump, 100, 0)
	p.AddStitchAbsolute(CmdStitch, 100, 0)
	p.AddStitchAbsolute(CmdJump, 101, 0)
	p.AddStitchAbsolute(CmdStitch, 101, 0)

	p.InterpolateTrims(2, 10)
	st := p.Stitches()
	assert.Equal(1, p.CountTrims())
	assert.Equal(Stitch{X: 0, Y: 0, Command: CmdTrim}, st[1])
	assert.Equal(7, p.Len())
}

func TestPattern_InterpolateDuplicateColorAsStop(t *testing.T) {
	assert := assert.New(t)

	p := NewPattern()
	p.AddThread(NewThread(0xFF0000))
	p.AddThread(NewThread(0xFF0000))
	p.AddThread(NewThread(0x00FF00))
	p.Stitch(1, 1)
	p.ColorChange()
	p.Stitch(1, 1)
	p.ColorChange()
	p.Stitch(1, 1)
	p.End()

	p.InterpolateDuplicateColorAsStop()
	assert.Len(p.Threads(), 2)
	assert.Equal(uint32(0x00FF00), p.Threads()[1].Color)
	assert.Equal(1, p.CountColorChanges())
	assert.True(p.Stitches()[1].Command.Is(CmdStop))
}
