package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"picvm/flash"
	"picvm/inst"
	"picvm/vm"
)

// program builds a flash image from a sequence of instructions, encoding
// each one in turn and zero-filling the rest.
func program(instrs ...inst.Instruction) flash.Image {
	var img flash.Image
	pc := 0
	for _, in := range instrs {
		word, ok := inst.Encode(in)
		if !ok {
			panic("bad fixture instruction")
		}
		img[pc] = byte(word)
		img[pc+1] = byte(word >> 8)
		pc += 2
	}
	return img
}

func movlw(k byte) inst.Instruction {
	return inst.Instruction{Kind: inst.KindLiteralOriented, LiteralOp: inst.MoveLiteralToW, K: k}
}
func movwf(f byte) inst.Instruction {
	return inst.Instruction{Kind: inst.KindControl, ControlOp: inst.MoveWtoF, F: f}
}
func xorwf(f byte, dest inst.Dest) inst.Instruction {
	return inst.Instruction{Kind: inst.KindByteOriented, ByteOp: inst.XorWwithF, F: f, Dest: dest}
}
func addwf(f byte, dest inst.Dest) inst.Instruction {
	return inst.Instruction{Kind: inst.KindByteOriented, ByteOp: inst.AddWf, F: f, Dest: dest}
}
func clrw() inst.Instruction { return inst.Instruction{Kind: inst.KindControl, ControlOp: inst.ClearW} }
func addlw(k byte) inst.Instruction {
	return inst.Instruction{Kind: inst.KindLiteralOriented, LiteralOp: inst.AddLiteralToW, K: k}
}
func nop() inst.Instruction { return inst.Instruction{Kind: inst.KindControl, ControlOp: inst.Noop} }
func callAt(addr uint16) inst.Instruction {
	return inst.Instruction{Kind: inst.KindControl, ControlOp: inst.Call, Addr: addr}
}
func ret() inst.Instruction { return inst.Instruction{Kind: inst.KindControl, ControlOp: inst.Return} }

func TestXorwfScenario(t *testing.T) {
	// movlw 0x55; movwf 0x20; movlw 0xAA; xorwf 0x20, F
	img := program(movlw(0x55), movwf(0x20), movlw(0xAA), xorwf(0x20, inst.DestF))
	m := vm.New(img)
	for i := 0; i < 4; i++ {
		assert.NoError(t, m.Step(vm.NopTicker{}))
	}
	assert.Equal(t, byte(0xAA), m.W())
	assert.Equal(t, byte(0xFF), m.Registers().Read(0x20))
	assert.False(t, m.Registers().Status().Z())
}

func TestClearWSetsZero(t *testing.T) {
	img := program(movlw(0x12), clrw())
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, byte(0), m.W())
	assert.True(t, m.Registers().Status().Z())
}

func TestAddLiteralToWDigitCarry(t *testing.T) {
	// W=0x0F, addlw 0x01 -> W=0x10, DC=1, C=0, Z=0
	img := program(movlw(0x0F), addlw(0x01))
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, byte(0x10), m.W())
	assert.True(t, m.Registers().Status().DC())
	assert.False(t, m.Registers().Status().C())
	assert.False(t, m.Registers().Status().Z())
}

func TestAddWfCarryAndZero(t *testing.T) {
	// GPR[0x20]=0xFF, W=0x01, addwf 0x20,W -> result 0x00, C=1, Z=1
	img := program(movlw(0xFF), movwf(0x20), movlw(0x01), addwf(0x20, inst.DestW))
	m := vm.New(img)
	for i := 0; i < 4; i++ {
		assert.NoError(t, m.Step(vm.NopTicker{}))
	}
	assert.Equal(t, byte(0x00), m.W())
	assert.True(t, m.Registers().Status().C())
	assert.True(t, m.Registers().Status().Z())
}

func TestAddWfDigitCarry(t *testing.T) {
	// GPR[0x21]=0x0F, W=0x01, addwf 0x21,F -> result 0x10, DC=1
	img := program(movlw(0x0F), movwf(0x21), movlw(0x01), addwf(0x21, inst.DestF))
	m := vm.New(img)
	for i := 0; i < 4; i++ {
		assert.NoError(t, m.Step(vm.NopTicker{}))
	}
	assert.Equal(t, byte(0x10), m.Registers().Read(0x21))
	assert.True(t, m.Registers().Status().DC())
}

func TestAllNoopAdvancesPCTenTimes(t *testing.T) {
	img := program(nop(), nop(), nop(), nop(), nop(), nop(), nop(), nop(), nop(), nop())
	m := vm.New(img)
	for i := 0; i < 10; i++ {
		assert.NoError(t, m.Step(vm.NopTicker{}))
	}
	assert.Equal(t, uint16(20), m.PC())
	assert.Empty(t, m.CallStack())
}

func TestCallPushesReturnAddressAndComposesWithPclath(t *testing.T) {
	// call 0x010 at pc=0, PCLATH=0 -> stack=[0x0002], pc=0x0020
	img := program(callAt(0x010))
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, []uint16{0x0002}, m.CallStack())
	assert.Equal(t, uint16(0x0020), m.PC())
}

func TestCallThenReturnGoesBackToCallSitePlusTwo(t *testing.T) {
	// at pc 0: call 0x002 (subroutine at byte pc 4); subroutine: return
	var img flash.Image
	callWord, _ := inst.Encode(callAt(0x002))
	img[0] = byte(callWord)
	img[1] = byte(callWord >> 8)
	nopWord, _ := inst.Encode(nop())
	img[2] = byte(nopWord)
	img[3] = byte(nopWord >> 8)
	retWord, _ := inst.Encode(ret())
	img[4] = byte(retWord)
	img[5] = byte(retWord >> 8)

	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{})) // call -> pc=4, stack=[2]
	assert.Equal(t, uint16(4), m.PC())
	assert.NoError(t, m.Step(vm.NopTicker{})) // return -> pc=2
	assert.Equal(t, uint16(2), m.PC())
	assert.Empty(t, m.CallStack())
}

func TestEightNestedCallsSucceedNinthFaults(t *testing.T) {
	// A chain of 9 calls, each targeting the next word, all from pc 0 with
	// PCLATH=0 so addr == pc/2 keeps every call landing on the next call
	// instruction; the 9th must overflow the depth-8 stack.
	var img flash.Image
	for i := 0; i < 9; i++ {
		word, _ := inst.Encode(callAt(uint16(i + 1)))
		img[i*2] = byte(word)
		img[i*2+1] = byte(word >> 8)
	}
	m := vm.New(img)
	for i := 0; i < 8; i++ {
		assert.NoError(t, m.Step(vm.NopTicker{}))
	}
	assert.Len(t, m.CallStack(), 8)

	err := m.Step(vm.NopTicker{})
	assert.Error(t, err)
	fault, ok := err.(*vm.Fault)
	assert.True(t, ok)
	assert.Equal(t, vm.StackOverflow, fault.Kind)
}

func TestReturnOnEmptyStackFaults(t *testing.T) {
	img := program(ret())
	m := vm.New(img)
	err := m.Step(vm.NopTicker{})
	assert.Error(t, err)
	fault, ok := err.(*vm.Fault)
	assert.True(t, ok)
	assert.Equal(t, vm.StackUnderflow, fault.Kind)
}

func TestGotoComposesWithPclathPerSection4Formula(t *testing.T) {
	// PCLATH=0x18, goto 0x000 -> pc = 0*2 | (0x18&0x18)<<8 = 0x1800.
	// (spec's own worked example claims 0x3000 for this input, but that
	// number doesn't follow from the stated formula; 0x1800 is what the
	// formula and the reference engine both actually produce.)
	gotoWord, _ := inst.Encode(inst.Instruction{Kind: inst.KindControl, ControlOp: inst.Goto, Addr: 0x000})
	var img flash.Image
	img[0] = byte(gotoWord)
	img[1] = byte(gotoWord >> 8)

	m := vm.New(img)
	assert.NoError(t, m.Registers().Write(0x0A, 0x18)) // PCLATH file address
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, uint16(0x1800), m.PC())
}

func TestDecrementFSkipIfZero(t *testing.T) {
	// GPR[0x30]=1; decfsz 0x30,F -> result 0, skip taken (pc advances by 4)
	img := program(
		movlw(0x01),
		movwf(0x30),
		inst.Instruction{Kind: inst.KindByteOriented, ByteOp: inst.DecrementFSkipIfZ, F: 0x30, Dest: inst.DestF},
		nop(), // skipped
		nop(), // landed on
	)
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	pcBefore := m.PC()
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, pcBefore+4, m.PC())
	assert.Equal(t, byte(0), m.Registers().Read(0x30))
}

func TestBitSetAndSkipIfBitSet(t *testing.T) {
	img := program(
		inst.Instruction{Kind: inst.KindControl, ControlOp: inst.ClearF, F: 0x31},
		inst.Instruction{Kind: inst.KindBitOriented, BitOp: inst.BitSetF, B: 3, F: 0x31},
		inst.Instruction{Kind: inst.KindBitOriented, BitOp: inst.SkipIfFBitSet, B: 3, F: 0x31},
		nop(), // skipped
		nop(), // landed on
	)
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	pcBefore := m.PC()
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, pcBefore+4, m.PC())
}

func TestBitSetAndSkipAtBoundaryBitPositions(t *testing.T) {
	// B=0 and B=7 exercise the lowest and highest bit positions, not just a
	// middle bit.
	for _, b := range []byte{0, 7} {
		img := program(
			inst.Instruction{Kind: inst.KindControl, ControlOp: inst.ClearF, F: 0x33},
			inst.Instruction{Kind: inst.KindBitOriented, BitOp: inst.BitSetF, B: b, F: 0x33},
			inst.Instruction{Kind: inst.KindBitOriented, BitOp: inst.SkipIfFBitSet, B: b, F: 0x33},
			nop(), // skipped
			nop(), // landed on
		)
		m := vm.New(img)
		assert.NoError(t, m.Step(vm.NopTicker{}))
		assert.NoError(t, m.Step(vm.NopTicker{}))
		pcBefore := m.PC()
		assert.NoError(t, m.Step(vm.NopTicker{}))
		assert.Equal(t, pcBefore+4, m.PC())
		assert.Equal(t, byte(1)<<b, m.Registers().Read(0x33))
	}
}

func TestIncrementFSkipIfZero(t *testing.T) {
	// GPR[0x32]=0xFF; incfsz 0x32,F -> result 0, skip taken (pc advances by 4)
	img := program(
		movlw(0xFF),
		movwf(0x32),
		inst.Instruction{Kind: inst.KindByteOriented, ByteOp: inst.IncrementFSkipIfZ, F: 0x32, Dest: inst.DestF},
		nop(), // skipped
		nop(), // landed on
	)
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	pcBefore := m.PC()
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.Equal(t, pcBefore+4, m.PC())
	assert.Equal(t, byte(0), m.Registers().Read(0x32))
}

func TestDecodeFailureFault(t *testing.T) {
	var img flash.Image
	// 0x3B00 falls in the gap between XorLiteralWithW's range
	// (0x3A00-0x3AFF) and SubtractWFromLiteral's (0x3C00-0x3DFF); no
	// byte/bit/literal/control pattern claims it.
	img[0] = 0x00
	img[1] = 0x3B

	m := vm.New(img)
	err := m.Step(vm.NopTicker{})
	assert.Error(t, err)
	fault, ok := err.(*vm.Fault)
	assert.True(t, ok)
	assert.Equal(t, vm.DecodeFailure, fault.Kind)
}

func TestWriteToReservedCellFaults(t *testing.T) {
	// bank 3, address 0x0E is reserved (see reg.addressTable).
	var img flash.Image
	m := vm.New(img)
	assert.NoError(t, m.Registers().Write(0x03, 0x60)) // STATUS, set RP1:RP0=11 -> bank 3
	err := m.Registers().Write(0x0E, 0xFF)
	assert.Error(t, err)
}

func TestByteOrientedWriteToReservedCellFaults(t *testing.T) {
	// bank 3, address 0x0E is reserved (see reg.addressTable). incf 0x0E,F
	// must surface the reserved-write error through Step, the same as bcf/
	// bsf/clrf/movwf already do, rather than discarding it in writeResult.
	img := program(
		movlw(0x60),
		movwf(0x03), // STATUS: RP1:RP0=11 -> bank 3
		inst.Instruction{Kind: inst.KindByteOriented, ByteOp: inst.IncrementF, F: 0x0E, Dest: inst.DestF},
	)
	m := vm.New(img)
	assert.NoError(t, m.Step(vm.NopTicker{}))
	assert.NoError(t, m.Step(vm.NopTicker{}))
	err := m.Step(vm.NopTicker{})
	assert.Error(t, err)
	fault, ok := err.(*vm.Fault)
	assert.True(t, ok)
	assert.Equal(t, vm.ReservedWrite, fault.Kind)
}
