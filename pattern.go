package needlework

import (
	"math"
	"sort"
)

// Stitch is a single entry of the command stream. Coordinates are absolute,
// measured in tenths of a millimeter.
type Stitch struct {
	X, Y    float64
	Command Command
}

// Bounds is the bounding box of a pattern.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Pattern is an ordered stitch command stream together with its thread list
// and a free-form metadata map. Readers populate it through the append-only
// methods, writers consume it through the read-only accessors.
type Pattern struct {
	stitches []Stitch
	threads  []Thread
	metadata map[string]string

	prevX, prevY float64
}

// NewPattern creates an empty pattern.
func NewPattern() *Pattern {
	return &Pattern{
		metadata: make(map[string]string),
	}
}

// Stitches returns the command stream. The returned slice must not be modified.
func (p *Pattern) Stitches() []Stitch {
	return p.stitches
}

// Threads returns the thread list. The returned slice must not be modified.
func (p *Pattern) Threads() []Thread {
	return p.threads
}

// Extras returns the metadata keys in sorted order.
func (p *Pattern) Extras() []string {
	keys := make([]string, 0, len(p.metadata))
	for k := range p.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Metadata returns the value stored under key and whether it was present.
func (p *Pattern) Metadata(key string) (string, bool) {
	v, ok := p.metadata[key]
	return v, ok
}

// Len returns the number of entries in the command stream.
func (p *Pattern) Len() int {
	return len(p.stitches)
}

// AddStitchAbsolute appends a command at the absolute position (x, y).
func (p *Pattern) AddStitchAbsolute(cmd Command, x, y float64) {
	p.stitches = append(p.stitches, Stitch{X: x, Y: y, Command: cmd})
	p.prevX, p.prevY = x, y
}

// AddStitchRelative appends a command displaced by (dx, dy) from the last position.
func (p *Pattern) AddStitchRelative(dx, dy float64, cmd Command) {
	p.AddStitchAbsolute(cmd, p.prevX+dx, p.prevY+dy)
}

// AddCommand appends a command without moving the current position.
func (p *Pattern) AddCommand(cmd Command, x, y float64) {
	p.stitches = append(p.stitches, Stitch{X: x, Y: y, Command: cmd})
}

// AddThread appends a thread to the thread list.
func (p *Pattern) AddThread(t Thread) {
	p.threads = append(p.threads, t)
}

// AddMetadata stores a metadata value.
func (p *Pattern) AddMetadata(key, value string) {
	if p.metadata == nil {
		p.metadata = make(map[string]string)
	}
	p.metadata[key] = value
}

// Stitch appends a stitch relative to the last position.
func (p *Pattern) Stitch(dx, dy float64) { p.AddStitchRelative(dx, dy, CmdStitch) }

// Jump appends a jump relative to the last position.
func (p *Pattern) Jump(dx, dy float64) { p.AddStitchRelative(dx, dy, CmdJump) }

// Trim appends a trim at the last position.
func (p *Pattern) Trim() { p.AddStitchRelative(0, 0, CmdTrim) }

// Stop appends a stop at the last position.
func (p *Pattern) Stop() { p.AddStitchRelative(0, 0, CmdStop) }

// ColorChange appends a color change at the last position.
func (p *Pattern) ColorChange() { p.AddStitchRelative(0, 0, CmdColorChange) }

// NeedleSet appends a needle selection at the last position.
func (p *Pattern) NeedleSet(needle int) {
	p.AddStitchRelative(0, 0, EncodeThreadChange(CmdNeedleSet, -1, needle, -1))
}

// End appends an end command at the last position.
func (p *Pattern) End() { p.AddStitchRelative(0, 0, CmdEnd) }

// EnsureEnd appends an end command unless the stream already ends with one.
// Empty patterns are left empty.
func (p *Pattern) EnsureEnd() {
	n := len(p.stitches)
	if n == 0 || p.stitches[n-1].Command.Is(CmdEnd) {
		return
	}
	p.End()
}

// Bounds returns the bounding box of every finite coordinate in the stream,
// regardless of the command kind. An empty pattern has zero bounds.
func (p *Pattern) Bounds() Bounds {
	var (
		b     Bounds
		found bool
	)
	for _, s := range p.stitches {
		if !isFinite(s.X) || !isFinite(s.Y) {
			continue
		}
		if !found {
			b = Bounds{MinX: s.X, MinY: s.Y, MaxX: s.X, MaxY: s.Y}
			found = true
			continue
		}
		b.MinX = math.Min(b.MinX, s.X)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxX = math.Max(b.MaxX, s.X)
		b.MaxY = math.Max(b.MaxY, s.Y)
	}
	return b
}

// Width returns the width of the pattern bounds.
func (p *Pattern) Width() float64 { return p.Bounds().Width() }

// Height returns the height of the pattern bounds.
func (p *Pattern) Height() float64 { return p.Bounds().Height() }

func (p *Pattern) count(kind Command) int {
	var n int
	for _, s := range p.stitches {
		if s.Command.Is(kind) {
			n++
		}
	}
	return n
}

// CountStitches returns the number of stitch commands.
func (p *Pattern) CountStitches() int { return p.count(CmdStitch) }

// CountJumps returns the number of jump commands.
func (p *Pattern) CountJumps() int { return p.count(CmdJump) }

// CountTrims returns the number of trim commands.
func (p *Pattern) CountTrims() int { return p.count(CmdTrim) }

// CountColorChanges returns the number of color change commands.
func (p *Pattern) CountColorChanges() int { return p.count(CmdColorChange) }

// CountThreadChanges returns the number of commands selecting a new thread,
// color changes and needle sets alike.
func (p *Pattern) CountThreadChanges() int {
	return p.count(CmdColorChange) + p.count(CmdNeedleSet)
}

// stitchLengths calls fn with the length of every stitch segment. The previous
// position follows every command, so a stitch after a jump is measured from the jump target.
func (p *Pattern) stitchLengths(fn func(float64)) {
	var px, py float64
	for i, s := range p.stitches {
		if i > 0 && s.Command.Is(CmdStitch) {
			fn(math.Hypot(s.X-px, s.Y-py))
		}
		px, py = s.X, s.Y
	}
}

// TotalStitchLength returns the summed length of all stitch segments.
func (p *Pattern) TotalStitchLength() float64 {
	var total float64
	p.stitchLengths(func(l float64) { total += l })
	return total
}

// MaxStitchLength returns the longest stitch segment.
func (p *Pattern) MaxStitchLength() float64 {
	var max float64
	p.stitchLengths(func(l float64) {
		if l > max {
			max = l
		}
	})
	return max
}

// AvgStitchLength returns the mean stitch segment length, zero without stitches.
func (p *Pattern) AvgStitchLength() float64 {
	var (
		total float64
		n     int
	)
	p.stitchLengths(func(l float64) {
		total += l
		n++
	})
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Statistics summarizes the derived pattern metrics.
type Statistics struct {
	Bounds       Bounds
	Stitches     int
	Jumps        int
	Trims        int
	ColorChanges int
	Threads      int
	TotalLength  float64
	MaxLength    float64
	AvgLength    float64
}

// Statistics computes every derived metric of the pattern.
func (p *Pattern) Statistics() Statistics {
	return Statistics{
		Bounds:       p.Bounds(),
		Stitches:     p.CountStitches(),
		Jumps:        p.CountJumps(),
		Trims:        p.CountTrims(),
		ColorChanges: p.CountColorChanges(),
		Threads:      len(p.threads),
		TotalLength:  p.TotalStitchLength(),
		MaxLength:    p.MaxStitchLength(),
		AvgLength:    p.AvgStitchLength(),
	}
}

// Copy returns a deep copy of the pattern.
func (p *Pattern) Copy() *Pattern {
	c := NewPattern()
	c.stitches = append([]Stitch(nil), p.stitches...)
	c.threads = append([]Thread(nil), p.threads...)
	for k, v := range p.metadata {
		c.metadata[k] = v
	}
	c.prevX, c.prevY = p.prevX, p.prevY
	return c
}

// ApplyMatrix transforms every coordinate of the pattern in place.
func (p *Pattern) ApplyMatrix(m Matrix) {
	for i := range p.stitches {
		p.stitches[i].X, p.stitches[i].Y = m.TransformPoint(p.stitches[i].X, p.stitches[i].Y)
	}
	p.prevX, p.prevY = m.TransformPoint(p.prevX, p.prevY)
}

// Translate moves the whole pattern by (dx, dy).
func (p *Pattern) Translate(dx, dy float64) {
	p.ApplyMatrix(Translation(dx, dy))
}

// MoveCenterToOrigin translates the pattern so its bounds are centered on (0, 0).
func (p *Pattern) MoveCenterToOrigin() {
	b := p.Bounds()
	p.Translate(-(b.MinX+b.MaxX)/2, -(b.MinY+b.MaxY)/2)
}

// RemoveDuplicates drops consecutive entries repeating the same command at the same position.
func (p *Pattern) RemoveDuplicates() {
	if len(p.stitches) == 0 {
		return
	}
	out := p.stitches[:1]
	for _, s := range p.stitches[1:] {
		if s == out[len(out)-1] {
			continue
		}
		out = append(out, s)
	}
	p.stitches = out
}

// InterpolateTrims inserts a trim before every run of at least jumpCount jumps,
// unless a trim is already present in front of it. Runs of jumps covering less than
// minDistance are left alone.
func (p *Pattern) InterpolateTrims(jumpCount int, minDistance float64) {
	if jumpCount < 1 {
		jumpCount = 1
	}
	out := make([]Stitch, 0, len(p.stitches))
	for i := 0; i < len(p.stitches); {
		s := p.stitches[i]
		if !s.Command.Is(CmdJump) {
			out = append(out, s)
			i++
			continue
		}
		j := i
		for j < len(p.stitches) && p.stitches[j].Command.Is(CmdJump) {
			j++
		}
		var sx, sy float64
		if i > 0 {
			sx, sy = p.stitches[i-1].X, p.stitches[i-1].Y
		}
		run := j - i
		dist := math.Hypot(p.stitches[j-1].X-sx, p.stitches[j-1].Y-sy)
		trimmed := len(out) > 0 && out[len(out)-1].Command.Is(CmdTrim)
		if run >= jumpCount && dist >= minDistance && !trimmed {
			out = append(out, Stitch{X: sx, Y: sy, Command: CmdTrim})
		}
		out = append(out, p.stitches[i:j]...)
		i = j
	}
	p.stitches = out
}

// InterpolateDuplicateColorAsStop turns a color change into a stop when the thread it selects
// repeats the previous one, and removes the duplicated entry from the thread list.
func (p *Pattern) InterpolateDuplicateColorAsStop() {
	if len(p.threads) == 0 {
		return
	}
	threads := []Thread{p.threads[0]}
	idx := 0
	for i, s := range p.stitches {
		if !s.Command.Is(CmdColorChange) {
			continue
		}
		idx++
		if idx >= len(p.threads) {
			break
		}
		if p.threads[idx].SameColor(threads[len(threads)-1]) {
			p.stitches[i].Command = CmdStop
			continue
		}
		threads = append(threads, p.threads[idx])
	}
	if idx+1 < len(p.threads) {
		threads = append(threads, p.threads[idx+1:]...)
	}
	p.threads = threads
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
