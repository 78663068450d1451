package needlework

import "math"

// LongStitchContingency selects how stitches longer than the maximum are rewritten.
type LongStitchContingency uint8

// SequinContingency selects how sequin commands are rewritten.
type SequinContingency uint8

// TieContingency selects how tie-on and tie-off stitches are generated.
type TieContingency uint8

const (
	// LongStitchNone keeps the long stitch as it is.
	LongStitchNone LongStitchContingency = 0xF0
	// LongStitchJumpNeedle jumps to the target and stitches in place.
	LongStitchJumpNeedle LongStitchContingency = 0xF1
	// LongStitchSewTo splits the stitch into equal sub-stitches.
	LongStitchSewTo LongStitchContingency = 0xF2
)

const (
	// SequinUtilize keeps the sequin commands.
	SequinUtilize SequinContingency = 0xF5
	// SequinJump turns every eject into a trim.
	SequinJump SequinContingency = 0xF6
	// SequinStitch turns every eject into a plain stitch.
	SequinStitch SequinContingency = 0xF7
	// SequinRemove drops the sequin commands.
	SequinRemove SequinContingency = 0xF8
)

const (
	TieOnNone  TieContingency = 0xD3
	TieOffNone TieContingency = 0xD4
)

// MaxSewToSteps bounds the number of sub-stitches a single long stitch is split into.
const MaxSewToSteps = 10000

// EncoderSettings configures one transcode call. The zero value is not meaningful,
// start from DefaultEncoderSettings and override the fields the destination format needs.
type EncoderSettings struct {
	MaxStitch float64
	MaxJump   float64
	FullJump  bool
	Round     bool
	// NeedleCount is the number of needles cycled through when thread changes
	// are written as needle sets.
	NeedleCount         int
	ThreadChangeCommand Command
	SequinContingency   SequinContingency
	LongStitch          LongStitchContingency
	// TieOn and TieOff only support the none policy.
	TieOn        TieContingency
	TieOff       TieContingency
	WritesSpeeds bool
	ExplicitTrim bool
}

// DefaultEncoderSettings returns unbounded settings writing plain color changes.
func DefaultEncoderSettings() EncoderSettings {
	return EncoderSettings{
		MaxStitch:           math.Inf(1),
		MaxJump:             math.Inf(1),
		NeedleCount:         5,
		ThreadChangeCommand: CmdColorChange,
		SequinContingency:   SequinJump,
		LongStitch:          LongStitchNone,
		TieOn:               TieOnNone,
		TieOff:              TieOffNone,
		WritesSpeeds:        true,
	}
}

// Transcoder rewrites a pattern so that it obeys the limits of a destination format.
type Transcoder struct {
	Settings EncoderSettings
	Matrix   Matrix
}

// NewTranscoder creates a transcoder with the identity transform.
func NewTranscoder(s EncoderSettings) *Transcoder {
	return &Transcoder{Settings: s, Matrix: NewMatrix()}
}

// Limited returns a copy of t whose stitches and jumps never exceed limit.
// Larger or invalid maximums are lowered to limit, and long stitches are
// split with LongStitchSewTo unless the jump needle policy is selected.
func (t *Transcoder) Limited(limit float64) *Transcoder {
	s := t.Settings
	s.MaxStitch = capLength(s.MaxStitch, limit)
	s.MaxJump = capLength(s.MaxJump, limit)
	if s.LongStitch != LongStitchJumpNeedle {
		s.LongStitch = LongStitchSewTo
	}
	return &Transcoder{Settings: s, Matrix: t.Matrix}
}

func capLength(v, limit float64) float64 {
	if math.IsNaN(v) || v <= 0 || v > limit {
		return limit
	}
	return v
}

// transcodeState holds the running position of a single transcode call.
type transcodeState struct {
	dst        *Pattern
	settings   *EncoderSettings
	x, y       float64
	changes    int
	terminated bool
}

// Transcode produces a new pattern from src. Threads and metadata are copied,
// the command stream is transformed, split and rewritten according to the settings.
// The result always ends with a single END command, unless src has no commands at all.
func (t *Transcoder) Transcode(src *Pattern) *Pattern {
	dst := NewPattern()
	for _, th := range src.Threads() {
		dst.AddThread(th)
	}
	for _, k := range src.Extras() {
		v, _ := src.Metadata(k)
		dst.AddMetadata(k, v)
	}

	settings := t.Settings
	if settings.NeedleCount <= 0 {
		settings.NeedleCount = 1
	}
	if settings.ThreadChangeCommand == 0 {
		settings.ThreadChangeCommand = CmdColorChange
	}
	st := &transcodeState{dst: dst, settings: &settings}

	matrix := t.Matrix
	if matrix == (Matrix{}) {
		matrix = NewMatrix()
	}
	identity := matrix.IsIdentity()

	for _, s := range src.Stitches() {
		x, y := s.X, s.Y
		if !identity {
			x, y = matrix.TransformPoint(x, y)
		}
		if settings.Round {
			x, y = math.Round(x), math.Round(y)
		}
		st.step(s.Command, x, y)
		if st.terminated {
			break
		}
	}
	if len(src.Stitches()) > 0 && !st.terminated {
		dst.AddStitchAbsolute(CmdEnd, st.x, st.y)
	}
	return dst
}

func (st *transcodeState) emit(cmd Command, x, y float64) {
	st.dst.AddStitchAbsolute(cmd, x, y)
	st.x, st.y = x, y
}

func (st *transcodeState) step(cmd Command, x, y float64) {
	switch cmd.Kind() {
	case CmdStitch:
		st.stitch(cmd, x, y)
	case CmdJump:
		st.move(x, y)
	case CmdColorChange:
		st.threadChange(cmd, x, y)
	case CmdSequinMode, CmdSequinEject:
		st.sequin(cmd, x, y)
	case CmdSlow, CmdFast:
		if st.settings.WritesSpeeds {
			st.emit(cmd, x, y)
		}
	case CmdEnd:
		st.emit(cmd, x, y)
		st.terminated = true
	default:
		st.emit(cmd, x, y)
	}
}

func (st *transcodeState) stitch(cmd Command, x, y float64) {
	dist := math.Hypot(x-st.x, y-st.y)
	if !isFinite(dist) || dist <= st.settings.MaxStitch {
		st.emit(cmd, x, y)
		return
	}
	switch st.settings.LongStitch {
	case LongStitchJumpNeedle:
		st.move(x, y)
		st.emit(cmd, x, y)
	case LongStitchSewTo:
		steps := int(math.Ceil(dist / st.settings.MaxStitch))
		st.interpolate(cmd, x, y, clampSteps(steps))
	default:
		st.emit(cmd, x, y)
	}
}

// move emits a jump to (x, y), split into equal segments no longer than the maximum jump.
func (st *transcodeState) move(x, y float64) {
	dist := math.Hypot(x-st.x, y-st.y)
	if !isFinite(dist) || dist <= st.settings.MaxJump {
		st.emit(CmdJump, x, y)
		return
	}
	steps := int(math.Ceil(dist / st.settings.MaxJump))
	st.interpolate(CmdJump, x, y, clampSteps(steps))
}

// interpolate emits steps commands evenly spaced on the segment from the current
// position to (x, y). The last command lands exactly on the target.
func (st *transcodeState) interpolate(cmd Command, x, y float64, steps int) {
	sx, sy := st.x, st.y
	dx, dy := (x-sx)/float64(steps), (y-sy)/float64(steps)
	for i := 1; i < steps; i++ {
		st.emit(cmd, sx+dx*float64(i), sy+dy*float64(i))
	}
	st.emit(cmd, x, y)
}

func (st *transcodeState) threadChange(cmd Command, x, y float64) {
	if st.settings.ExplicitTrim {
		st.emit(CmdTrim, st.x, st.y)
	}
	st.changes++
	switch st.settings.ThreadChangeCommand.Kind() {
	case CmdNeedleSet:
		if cmd.Needle() < 0 {
			needle := st.changes%st.settings.NeedleCount + 1
			cmd = EncodeThreadChange(CmdNeedleSet, -1, needle, -1)
		} else {
			cmd = CmdNeedleSet | cmd&^CommandMask
		}
	case CmdStop:
		cmd = CmdStop | cmd&^CommandMask
	}
	st.emit(cmd, x, y)
}

func (st *transcodeState) sequin(cmd Command, x, y float64) {
	switch st.settings.SequinContingency {
	case SequinUtilize:
		st.emit(cmd, x, y)
	case SequinJump:
		if cmd.Is(CmdSequinEject) {
			st.emit(CmdTrim, x, y)
		}
	case SequinStitch:
		if cmd.Is(CmdSequinEject) {
			st.emit(CmdStitch, x, y)
		}
	case SequinRemove:
	}
}

func clampSteps(steps int) int {
	if steps < 1 {
		return 1
	}
	if steps > MaxSewToSteps {
		return MaxSewToSteps
	}
	return steps
}
