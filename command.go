package needlework

import "fmt"

// Command is a packed stitch command. The low byte selects the command kind,
// the upper bytes optionally carry a thread, a needle and an order index.
type Command uint32

// Command kinds.
const (
	CmdStitch      Command = 0x00
	CmdJump        Command = 0x01
	CmdTrim        Command = 0x02
	CmdStop        Command = 0x03
	CmdEnd         Command = 0x04
	CmdColorChange Command = 0x05
	CmdSequinMode  Command = 0x06
	CmdSequinEject Command = 0x07
	CmdNeedleSet   Command = 0x09
	CmdSlow        Command = 0x0B
	CmdFast        Command = 0x0C
)

// Masks isolating the parts of a packed command.
const (
	CommandMask Command = 0x000000FF
	ThreadMask  Command = 0x0000FF00
	NeedleMask  Command = 0x00FF0000
	OrderMask   Command = 0xFF000000
)

const maxAuxIndex = 0xFE

var commandNames = map[Command]string{
	CmdStitch:      "STITCH",
	CmdJump:        "JUMP",
	CmdTrim:        "TRIM",
	CmdStop:        "STOP",
	CmdEnd:         "END",
	CmdColorChange: "COLOR_CHANGE",
	CmdSequinMode:  "SEQUIN_MODE",
	CmdSequinEject: "SEQUIN_EJECT",
	CmdNeedleSet:   "NEEDLE_SET",
	CmdSlow:        "SLOW",
	CmdFast:        "FAST",
}

// Kind returns the command kind without the auxiliary parameters.
func (c Command) Kind() Command {
	return c & CommandMask
}

// Is reports whether the command is of the given kind.
func (c Command) Is(kind Command) bool {
	return c.Kind() == kind.Kind()
}

// String returns the name of the command kind.
func (c Command) String() string {
	if name, ok := commandNames[c.Kind()]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint32(c.Kind()))
}

// Known reports whether the command kind belongs to the supported command set.
func (c Command) Known() bool {
	_, ok := commandNames[c.Kind()]
	return ok
}

// EncodeThreadChange packs a command kind with its optional thread, needle and order indexes.
// A negative index means the parameter is absent. Indexes are stored shifted by one,
// so a zero byte always stands for "not set".
func EncodeThreadChange(kind Command, thread, needle, order int) Command {
	cmd := kind & CommandMask
	if thread >= 0 {
		cmd |= Command(clampAux(thread)+1) << 8
	}
	if needle >= 0 {
		cmd |= Command(clampAux(needle)+1) << 16
	}
	if order >= 0 {
		cmd |= Command(clampAux(order)+1) << 24
	}
	return cmd
}

// Decode unpacks the command into its kind and auxiliary parameters.
// Absent parameters are returned as -1.
func (c Command) Decode() (kind Command, thread, needle, order int) {
	kind = c.Kind()
	thread = int((c&ThreadMask)>>8) - 1
	needle = int((c&NeedleMask)>>16) - 1
	order = int((c&OrderMask)>>24) - 1
	return
}

// Needle returns the needle parameter of the command or -1 if it has none.
func (c Command) Needle() int {
	_, _, needle, _ := c.Decode()
	return needle
}

func clampAux(v int) int {
	if v > maxAuxIndex {
		return maxAuxIndex
	}
	return v
}
