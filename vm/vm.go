// Package vm is the PIC16F88 execution engine: fetch, decode, and execute
// one instruction at a time, maintaining PC, W, the call stack, and (via
// reg) the banked register file, invoking a Ticker after every retired
// instruction. Grounded throughout on
// original_source/crates/stk_pic_vm/src/vm/mod.rs's step()/exec(), adapted
// from Rust's &mut self method body into a Go method with the same
// per-variant dispatch shape spec's design notes ask for: a flat switch,
// not a function-pointer table, with PC advancement and cycle accounting
// kept local to each arm.
package vm

import (
	"fmt"

	"picvm/flash"
	"picvm/inst"
	"picvm/reg"
)

// pcLimit is the byte-address exclusive upper bound: flash.Size is already
// the byte count of program memory, so the limit is simply flash.Size.
const pcLimit = flash.Size

// VM is the whole machine: immutable program memory, the banked register
// file, and the small amount of scalar state (PC, W, call stack) the
// dispatch loop owns directly. One owning aggregate, per spec's ownership
// guidance, so STATUS is never reachable through two different handles at
// once.
type VM struct {
	flash *flash.Flash
	reg   *reg.Registers
	pc    uint16
	w     byte
	stack callStack
}

// New constructs a VM from a flash image. Post-construction state: PC=0,
// W=0, empty call stack, STATUS=0x18, every SFR at its documented init
// value, every GPR at 0.
func New(image flash.Image) *VM {
	return &VM{
		flash: flash.New(image),
		reg:   reg.New(),
	}
}

func (v *VM) PC() uint16                { return v.pc }
func (v *VM) W() byte                   { return v.w }
func (v *VM) Registers() *reg.Registers { return v.reg }
func (v *VM) CallStack() []uint16       { return v.stack.snapshot() }

func (v *VM) snapshot() Snapshot {
	gpr := v.reg.GPR()
	return Snapshot{
		PC:        v.pc,
		W:         v.w,
		Status:    v.reg.Status(),
		PCL:       v.reg.PCL(),
		PCLATH:    v.reg.PCLATH(),
		PORTA:     v.reg.PORTA(),
		PORTB:     v.reg.PORTB(),
		GPR:       gpr,
		CallStack: v.stack.snapshot(),
	}
}

func (v *VM) fault(kind Kind, opcode uint16, message string, wrapped error) *Fault {
	return newFault(kind, v.pc, opcode, message, wrapped)
}

// Step executes exactly one instruction: fetch, decode, dispatch, update
// PC/flags/registers, then invoke ticker with the cycles consumed. It
// returns a *Fault (nil on success) for every condition spec calls fatal;
// callers drive the machine by looping on Step until it returns non-nil or
// a caller-supplied termination condition is met.
func (v *VM) Step(ticker Ticker) error {
	if v.pc >= pcLimit-1 || v.pc%2 != 0 {
		return v.fault(AddressOutOfRange, 0, fmt.Sprintf("pc 0x%04x is out of range or misaligned", v.pc), nil)
	}

	word := v.flash.Word(v.pc)
	in, ok := inst.Decode(word)
	if !ok {
		return v.fault(DecodeFailure, word, "no instruction pattern matched", nil)
	}

	cycles, err := v.exec(in, word)
	if err != nil {
		return err
	}

	ticker.Tick(v.snapshot(), cycles)
	return nil
}

// gotoTarget composes a byte PC from an 11-bit program-word address and the
// current PCLATH, exactly as original_source's Goto/Call arms do.
func (v *VM) gotoTarget(addr uint16) uint16 {
	pc := addr * 2
	pc |= (uint16(v.reg.PCLATH()) & 0b0001_1000) << 8
	return pc
}

func (v *VM) exec(in inst.Instruction, word uint16) (cycles uint8, err error) {
	switch in.Kind {
	case inst.KindByteOriented:
		return v.execByteOriented(in, word)
	case inst.KindBitOriented:
		return v.execBitOriented(in, word)
	case inst.KindLiteralOriented:
		return v.execLiteralOriented(in, word)
	case inst.KindControl:
		return v.execControl(in, word)
	}
	return 0, v.fault(DecodeFailure, word, "unreachable instruction kind", nil)
}

func (v *VM) writeResult(f byte, dest inst.Dest, result byte) error {
	if dest == inst.DestW {
		v.w = result
		return nil
	}
	// Writing through reg.Write keeps every F-targeted result on the same
	// bank-resolved path, so reserved/unimplemented targets report an error.
	return v.reg.Write(f, result)
}

func (v *VM) execByteOriented(in inst.Instruction, word uint16) (uint8, error) {
	val := v.reg.Read(in.F)
	status := v.reg.Status()

	switch in.ByteOp {
	case inst.AddWf:
		result, c, dc := addFlags(v.w, val)
		status = status.WithZ(result == 0).WithC(c).WithDC(dc)
		v.reg.SetStatus(status)
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.SubtractWfromF:
		result, c, dc := subFlags(val, v.w)
		status = status.WithZ(result == 0).WithC(c).WithDC(dc)
		v.reg.SetStatus(status)
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.AndWf:
		result := v.w & val
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.OrWf:
		result := v.w | val
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.XorWwithF:
		result := v.w ^ val
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.ComplementF:
		result := ^val
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.DecrementF:
		result := val - 1
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.IncrementF:
		result := val + 1
		v.reg.SetStatus(status.WithZ(result == 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.MoveF:
		v.reg.SetStatus(status.WithZ(val == 0))
		if err := v.writeResult(in.F, in.Dest, val); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.SwapF:
		result := (val << 4) | (val >> 4)
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.RotateLeftFThroughCarry:
		carryIn := byte(0)
		if status.C() {
			carryIn = 1
		}
		result := (val << 1) | carryIn
		v.reg.SetStatus(status.WithC(val&0x80 != 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.RotateRightFThroughCarry:
		carryIn := byte(0)
		if status.C() {
			carryIn = 0x80
		}
		result := (val >> 1) | carryIn
		v.reg.SetStatus(status.WithC(val&0x01 != 0))
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}

	case inst.DecrementFSkipIfZ:
		result := val - 1
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}
		v.pc += 2
		if result == 0 {
			v.pc += 2
			return 2, nil
		}
		return 1, nil

	case inst.IncrementFSkipIfZ:
		result := val + 1
		if err := v.writeResult(in.F, in.Dest, result); err != nil {
			return 0, v.fault(ReservedWrite, word, in.ByteOp.String(), err)
		}
		v.pc += 2
		if result == 0 {
			v.pc += 2
			return 2, nil
		}
		return 1, nil

	default:
		return 0, v.fault(DecodeFailure, word, "unknown byte-oriented op", nil)
	}

	v.pc += 2
	return 1, nil
}

func (v *VM) execBitOriented(in inst.Instruction, word uint16) (uint8, error) {
	switch in.BitOp {
	case inst.BitClearF:
		if err := v.reg.Modify(in.F, func(b byte) byte { return b &^ (1 << in.B) }); err != nil {
			return 0, v.fault(ReservedWrite, word, "bcf", err)
		}
		v.pc += 2
		return 1, nil

	case inst.BitSetF:
		if err := v.reg.Modify(in.F, func(b byte) byte { return b | (1 << in.B) }); err != nil {
			return 0, v.fault(ReservedWrite, word, "bsf", err)
		}
		v.pc += 2
		return 1, nil

	case inst.SkipIfFBitClear:
		clear := v.reg.Read(in.F)&(1<<in.B) == 0
		v.pc += 2
		if clear {
			v.pc += 2
			return 2, nil
		}
		return 1, nil

	case inst.SkipIfFBitSet:
		set := v.reg.Read(in.F)&(1<<in.B) != 0
		v.pc += 2
		if set {
			v.pc += 2
			return 2, nil
		}
		return 1, nil
	}
	return 0, v.fault(DecodeFailure, word, "unknown bit-oriented op", nil)
}

func (v *VM) execLiteralOriented(in inst.Instruction, word uint16) (uint8, error) {
	status := v.reg.Status()

	switch in.LiteralOp {
	case inst.MoveLiteralToW:
		v.w = in.K

	case inst.AddLiteralToW:
		result, c, dc := addFlags(v.w, in.K)
		v.reg.SetStatus(status.WithZ(result == 0).WithC(c).WithDC(dc))
		v.w = result

	case inst.SubtractWFromLiteral:
		result, c, dc := subFlags(in.K, v.w)
		v.reg.SetStatus(status.WithZ(result == 0).WithC(c).WithDC(dc))
		v.w = result

	case inst.AndLiteralWithW:
		v.w &= in.K
		v.reg.SetStatus(status.WithZ(v.w == 0))

	case inst.OrLiteralWithW:
		v.w |= in.K
		v.reg.SetStatus(status.WithZ(v.w == 0))

	case inst.XorLiteralWithW:
		v.w ^= in.K
		v.reg.SetStatus(status.WithZ(v.w == 0))

	case inst.ReturnWithLiteralInW:
		v.w = in.K
		return v.doReturn(word)

	default:
		return 0, v.fault(DecodeFailure, word, "unknown literal-oriented op", nil)
	}

	v.pc += 2
	return 1, nil
}

func (v *VM) doReturn(word uint16) (uint8, error) {
	pc, ok := v.stack.pop()
	if !ok {
		return 0, v.fault(StackUnderflow, word, "return with empty call stack", nil)
	}
	v.pc = pc
	return 2, nil
}

func (v *VM) execControl(in inst.Instruction, word uint16) (uint8, error) {
	switch in.ControlOp {
	case inst.Noop:
		v.pc += 2
		return 1, nil

	case inst.ClearW:
		v.w = 0
		v.reg.SetStatus(v.reg.Status().WithZ(true))
		v.pc += 2
		return 1, nil

	case inst.ClearF:
		if err := v.reg.Write(in.F, 0); err != nil {
			return 0, v.fault(ReservedWrite, word, "clrf", err)
		}
		v.reg.SetStatus(v.reg.Status().WithZ(true))
		v.pc += 2
		return 1, nil

	case inst.MoveWtoF:
		if err := v.reg.Write(in.F, v.w); err != nil {
			return 0, v.fault(ReservedWrite, word, "movwf", err)
		}
		v.pc += 2
		return 1, nil

	case inst.Goto:
		v.pc = v.gotoTarget(in.Addr)
		return 2, nil

	case inst.Call:
		if !v.stack.push(v.pc + 2) {
			return 0, v.fault(StackOverflow, word, "call stack already at capacity", nil)
		}
		v.pc = v.gotoTarget(in.Addr)
		return 2, nil

	case inst.Return:
		return v.doReturn(word)

	case inst.ClearWatchDogTimer, inst.ReturnFromInterrupt, inst.Sleep:
		return 0, v.fault(Unimplemented, word, in.ControlOp.String(), nil)
	}
	return 0, v.fault(DecodeFailure, word, "unknown control op", nil)
}
