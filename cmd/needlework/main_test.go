package main

import (
	"testing"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/formats"
	"github.com/esimov/needlework/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_ResolveFormats(t *testing.T) {
	assert := assert.New(t)

	from, to, err := resolveFormats("", "", "design.jef")
	assert.NoError(err)
	assert.Equal(formats.Unknown, from)
	assert.Equal(formats.JEF, to)

	from, to, err = resolveFormats("pec", "u01", pipeName)
	assert.NoError(err)
	assert.Equal(formats.PEC, from)
	assert.Equal(formats.U01, to)

	_, _, err = resolveFormats("", "", pipeName)
	assert.Error(err)

	_, _, err = resolveFormats("dst", "", "design.pec")
	assert.Error(err)
}

func TestMain_BuildTranscoder(t *testing.T) {
	assert := assert.New(t)

	limit := 50.0
	cfg := &config.Config{MaxStitch: &limit, LongStitch: "jump_needle"}
	p := needlework.NewPattern()
	p.AddStitchAbsolute(needlework.CmdStitch, 0, 0)

	tr, err := buildTranscoder(cfg, formats.JEF, p)
	require.NoError(t, err)
	assert.Equal(50.0, tr.Settings.MaxStitch)
	assert.Equal(127.0, tr.Settings.MaxJump)
	assert.Equal(needlework.LongStitchJumpNeedle, tr.Settings.LongStitch)
	assert.True(tr.Matrix.IsIdentity())

	_, err = buildTranscoder(&config.Config{Sequin: "glue"}, formats.PEC, p)
	assert.Error(err)
}
