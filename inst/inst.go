// Package inst holds the PIC16F88 instruction ADT and the decoder that maps
// a 14-bit program word onto it. Decoding is pure: no register file, no
// flash, no cycle state. See vm for everything that actually executes a
// decoded Instruction.
package inst

import "fmt"

// Dest selects where a byte-oriented instruction's result lands.
type Dest int

const (
	DestW Dest = iota
	DestF
)

func (d Dest) String() string {
	if d == DestW {
		return "W"
	}
	return "F"
}

// Kind tags which arm of the Instruction union is populated.
type Kind int

const (
	KindByteOriented Kind = iota
	KindBitOriented
	KindLiteralOriented
	KindControl
)

// ByteOp enumerates the 14 byte-oriented operations.
type ByteOp int

const (
	AddWf ByteOp = iota
	AndWf
	ComplementF
	DecrementF
	DecrementFSkipIfZ
	IncrementF
	IncrementFSkipIfZ
	OrWf
	MoveF
	RotateLeftFThroughCarry
	RotateRightFThroughCarry
	SubtractWfromF
	SwapF
	XorWwithF
)

var byteOpNames = map[ByteOp]string{
	AddWf:                   "addwf",
	AndWf:                   "andwf",
	ComplementF:             "comf",
	DecrementF:              "decf",
	DecrementFSkipIfZ:       "decfsz",
	IncrementF:              "incf",
	IncrementFSkipIfZ:       "incfsz",
	OrWf:                    "iorwf",
	MoveF:                   "movf",
	RotateLeftFThroughCarry: "rlf",
	RotateRightFThroughCarry: "rrf",
	SubtractWfromF:          "subwf",
	SwapF:                   "swapf",
	XorWwithF:               "xorwf",
}

func (op ByteOp) String() string { return byteOpNames[op] }

// BitOp enumerates the 4 bit-oriented operations.
type BitOp int

const (
	BitClearF BitOp = iota
	BitSetF
	SkipIfFBitClear
	SkipIfFBitSet
)

var bitOpNames = map[BitOp]string{
	BitClearF:       "bcf",
	BitSetF:         "bsf",
	SkipIfFBitClear: "btfsc",
	SkipIfFBitSet:   "btfss",
}

func (op BitOp) String() string { return bitOpNames[op] }

// LiteralOp enumerates the 7 literal-oriented operations.
type LiteralOp int

const (
	MoveLiteralToW LiteralOp = iota
	ReturnWithLiteralInW
	AddLiteralToW
	SubtractWFromLiteral
	AndLiteralWithW
	OrLiteralWithW
	XorLiteralWithW
)

var literalOpNames = map[LiteralOp]string{
	MoveLiteralToW:        "movlw",
	ReturnWithLiteralInW:  "retlw",
	AddLiteralToW:         "addlw",
	SubtractWFromLiteral:  "sublw",
	AndLiteralWithW:       "andlw",
	OrLiteralWithW:        "iorlw",
	XorLiteralWithW:       "xorlw",
}

func (op LiteralOp) String() string { return literalOpNames[op] }

// ControlOp enumerates the control-instruction sub-enum.
type ControlOp int

const (
	ClearWatchDogTimer ControlOp = iota
	ReturnFromInterrupt
	Return
	Sleep
	Noop
	Goto
	Call
	ClearF
	ClearW
	MoveWtoF
)

var controlOpNames = map[ControlOp]string{
	ClearWatchDogTimer:   "clrwdt",
	ReturnFromInterrupt:  "retfie",
	Return:               "return",
	Sleep:                "sleep",
	Noop:                 "nop",
	Goto:                 "goto",
	Call:                 "call",
	ClearF:               "clrf",
	ClearW:               "clrw",
	MoveWtoF:             "movwf",
}

func (op ControlOp) String() string { return controlOpNames[op] }

// Instruction is the decoded form of a single 14-bit program word. Only the
// fields relevant to Kind (and, within KindByteOriented, ByteOp) are
// meaningful; the rest are left at their zero value.
type Instruction struct {
	Kind Kind

	ByteOp    ByteOp
	BitOp     BitOp
	LiteralOp LiteralOp
	ControlOp ControlOp

	F    byte   // 7-bit file address (ByteOriented, BitOriented, ClearF, MoveWtoF)
	B    byte   // 3-bit bit index (BitOriented)
	Dest Dest   // ByteOriented only
	K    byte   // 8-bit literal (LiteralOriented)
	Addr uint16 // 11-bit program address (Goto, Call)
}

// String renders a disassembly line in the PIC assembler's own mnemonic
// style, e.g. "movlw 0x55" or "btfss 0x20, 3".
func (in Instruction) String() string {
	switch in.Kind {
	case KindByteOriented:
		return fmt.Sprintf("%s 0x%02x, %s", in.ByteOp, in.F, in.Dest)
	case KindBitOriented:
		return fmt.Sprintf("%s 0x%02x, %d", in.BitOp, in.F, in.B)
	case KindLiteralOriented:
		return fmt.Sprintf("%s 0x%02x", in.LiteralOp, in.K)
	case KindControl:
		switch in.ControlOp {
		case Goto, Call:
			return fmt.Sprintf("%s 0x%03x", in.ControlOp, in.Addr)
		case ClearF, MoveWtoF:
			return fmt.Sprintf("%s 0x%02x", in.ControlOp, in.F)
		default:
			return in.ControlOp.String()
		}
	default:
		return "?"
	}
}

// byteOriented maps the 6-bit opcode (bits 13:8, i.e. word>>8 & 0x3F) to its
// operation. Destination and f are extracted uniformly once the opcode
// matches; see Decode.
var byteOriented = map[byte]ByteOp{
	0b0000_0111: AddWf,
	0b0000_0101: AndWf,
	0b0000_1001: ComplementF,
	0b0000_0011: DecrementF,
	0b0000_1011: DecrementFSkipIfZ,
	0b0000_1010: IncrementF,
	0b0000_1111: IncrementFSkipIfZ,
	0b0000_0100: OrWf,
	0b0000_1000: MoveF,
	0b0000_1101: RotateLeftFThroughCarry,
	0b0000_1100: RotateRightFThroughCarry,
	0b0000_0010: SubtractWfromF,
	0b0000_1110: SwapF,
	0b0000_0110: XorWwithF,
}

// bitOriented maps the 4-bit opcode (bits 13:10) to its operation.
var bitOriented = map[byte]BitOp{
	0b0001_0000: BitClearF,
	0b0001_0100: BitSetF,
	0b0001_1000: SkipIfFBitClear,
	0b0001_1100: SkipIfFBitSet,
}

type literalPattern struct {
	mask, value uint16
	op          LiteralOp
}

// literalPatterns is tested in order; the first match wins. The seven
// (mask, value) ranges are disjoint, so no pattern shadows another and the
// order does not change which operation a word decodes to.
var literalPatterns = []literalPattern{
	{0x3C00, 0x3000, MoveLiteralToW},
	{0x3E00, 0x3E00, AddLiteralToW},
	{0x3F00, 0x3900, AndLiteralWithW},
	{0x3F00, 0x3800, OrLiteralWithW},
	{0x3C00, 0x3400, ReturnWithLiteralInW},
	{0x3E00, 0x3C00, SubtractWFromLiteral},
	{0x3F00, 0x3A00, XorLiteralWithW},
}

// Decode classifies a 14-bit program word (only the low 14 bits are
// examined; bits 15:14, which are always 0 in legitimate firmware, are
// ignored) into an Instruction. ok is false when no pattern in any of the
// four classes matches.
func Decode(word uint16) (in Instruction, ok bool) {
	word &= 0x3FFF

	if op, found := byteOriented[byte((word&0x3F00)>>8)]; found {
		dest := DestW
		if word&0x0080 != 0 {
			dest = DestF
		}
		return Instruction{
			Kind:   KindByteOriented,
			ByteOp: op,
			F:      byte(word & 0x7F),
			Dest:   dest,
		}, true
	}

	if op, found := bitOriented[byte((word&0x3C00)>>8)]; found {
		return Instruction{
			Kind:  KindBitOriented,
			BitOp: op,
			B:     byte((word >> 7) & 0x7),
			F:     byte(word & 0x7F),
		}, true
	}

	for _, p := range literalPatterns {
		if word&p.mask == p.value {
			return Instruction{
				Kind:      KindLiteralOriented,
				LiteralOp: p.op,
				K:         byte(word & 0xFF),
			}, true
		}
	}

	switch {
	case word == 0x0008:
		return Instruction{Kind: KindControl, ControlOp: Return}, true
	case word == 0x0064:
		return Instruction{Kind: KindControl, ControlOp: ClearWatchDogTimer}, true
	case word == 0x0009:
		return Instruction{Kind: KindControl, ControlOp: ReturnFromInterrupt}, true
	case word == 0x0063:
		return Instruction{Kind: KindControl, ControlOp: Sleep}, true
	case word&0x3F9F == 0x0000:
		return Instruction{Kind: KindControl, ControlOp: Noop}, true
	case word&0x3F80 == 0x0100:
		return Instruction{Kind: KindControl, ControlOp: ClearW}, true
	case word&0x3800 == 0x2800:
		return Instruction{Kind: KindControl, ControlOp: Goto, Addr: word & 0x07FF}, true
	case word&0x3800 == 0x2000:
		return Instruction{Kind: KindControl, ControlOp: Call, Addr: word & 0x07FF}, true
	case word&0x3F80 == 0x0180:
		return Instruction{Kind: KindControl, ControlOp: ClearF, F: byte(word & 0x7F)}, true
	case word&0x3F80 == 0x0080:
		return Instruction{Kind: KindControl, ControlOp: MoveWtoF, F: byte(word & 0x7F)}, true
	}

	return Instruction{}, false
}

// Encode reconstructs a plausible 14-bit word for in. It is the inverse of
// Decode used by the decoder's round-trip tests; don't-care bits are always
// encoded as 0.
func Encode(in Instruction) (uint16, bool) {
	switch in.Kind {
	case KindByteOriented:
		for opcode, op := range byteOriented {
			if op != in.ByteOp {
				continue
			}
			word := uint16(opcode) << 8
			word |= uint16(in.F) & 0x7F
			if in.Dest == DestF {
				word |= 0x0080
			}
			return word, true
		}
	case KindBitOriented:
		for opcode, op := range bitOriented {
			if op != in.BitOp {
				continue
			}
			word := uint16(opcode) << 8
			word |= (uint16(in.B) & 0x7) << 7
			word |= uint16(in.F) & 0x7F
			return word, true
		}
	case KindLiteralOriented:
		for _, p := range literalPatterns {
			if p.op != in.LiteralOp {
				continue
			}
			return p.value | uint16(in.K), true
		}
	case KindControl:
		switch in.ControlOp {
		case Return:
			return 0x0008, true
		case ClearWatchDogTimer:
			return 0x0064, true
		case ReturnFromInterrupt:
			return 0x0009, true
		case Sleep:
			return 0x0063, true
		case Noop:
			return 0x0000, true
		case ClearW:
			return 0x0100, true
		case Goto:
			return 0x2800 | (in.Addr & 0x07FF), true
		case Call:
			return 0x2000 | (in.Addr & 0x07FF), true
		case ClearF:
			return 0x0180 | uint16(in.F)&0x7F, true
		case MoveWtoF:
			return 0x0080 | uint16(in.F)&0x7F, true
		}
	}
	return 0, false
}
