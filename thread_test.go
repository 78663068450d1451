package needlework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThread_Channels(t *testing.T) {
	assert := assert.New(t)

	th := ThreadFromRGB(0x12, 0x34, 0x56)
	assert.Equal(uint32(0x123456), th.Color)
	assert.Equal(uint8(0x12), th.Red())
	assert.Equal(uint8(0x34), th.Green())
	assert.Equal(uint8(0x56), th.Blue())
	assert.Equal("#123456", th.Hex())

	tagged := NewThread(0xFF123456)
	assert.True(tagged.SameColor(th))
	assert.Equal(uint32(0x123456), tagged.RGB())
}

func TestThread_ParseColor(t *testing.T) {
	assert := assert.New(t)

	for in, expected := range map[string]uint32{
		"#ff0000":   0xFF0000,
		"00ff00":    0x00FF00,
		"#abc":      0xAABBCC,
		"#0000ffcc": 0x0000FF,
		"Navy":      0x000080,
	} {
		c, err := ParseColor(in)
		assert.NoError(err)
		assert.Equal(expected, c, in)
	}

	_, err := ParseColor("#12345")
	assert.Error(err)
	_, err = ParseColor("zzzzzz")
	assert.Error(err)
}

func TestThread_ColorDistance(t *testing.T) {
	assert := assert.New(t)

	red := NewThread(0xFF0000)
	assert.Equal(0.0, red.ColorDistance(red))
	assert.Greater(red.ColorDistance(NewThread(0x0000FF)), red.ColorDistance(NewThread(0xEE1111)))
}
