package reg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResetState(t *testing.T) {
	r := New()
	assert.Equal(t, Status(initStatus), r.Status())
	assert.True(t, r.Status().TO())
	assert.True(t, r.Status().PD())
	assert.False(t, r.Status().Z())
	assert.Equal(t, byte(0xFF), r.OptionReg())
	assert.Equal(t, byte(0xFF), r.TRISA())
	assert.Equal(t, byte(0xFF), r.TRISB())
	assert.Equal(t, byte(0x02), r.TXSTA())
}

func selectBank(r *Registers, bank byte) {
	s := r.Status()
	s = s.setBankForTest(bank)
	r.SetStatus(s)
}

// setBankForTest writes the RP1:RP0 bits directly; only used by tests that
// need to pin a bank without going through a full instruction.
func (s Status) setBankForTest(bank byte) Status {
	cleared := s &^ (statusRP1 | statusRP0)
	return cleared | Status(bank<<5)
}

func TestCommonAccessWindowAliasesAcrossBanks(t *testing.T) {
	r := New()
	for f := byte(0x70); f <= 0x7F; f++ {
		selectBank(r, 0)
		assert.NoError(t, r.Write(f, 0xAB))
		for bank := byte(0); bank < 4; bank++ {
			selectBank(r, bank)
			assert.Equal(t, byte(0xAB), r.Read(f), "addr 0x%02x bank %d", f, bank)
		}
	}
}

func TestStatusResolvesInEveryBank(t *testing.T) {
	r := New()
	for bank := byte(0); bank < 4; bank++ {
		selectBank(r, bank)
		assert.Equal(t, cellStatus, r.resolve(0x03).kind)
	}
}

func TestPCLResolvesInEveryBank(t *testing.T) {
	r := New()
	for bank := byte(0); bank < 4; bank++ {
		selectBank(r, bank)
		ref := r.resolve(0x02)
		assert.Equal(t, cellSFR, ref.kind)
		assert.Equal(t, idPCL, ref.sfr)
	}
}

func TestPortABanking(t *testing.T) {
	r := New()

	selectBank(r, 0)
	assert.Equal(t, idPORTA, r.resolve(0x05).sfr)
	selectBank(r, 1)
	assert.Equal(t, idTRISA, r.resolve(0x05).sfr)
	selectBank(r, 2)
	assert.Equal(t, idWDTCON, r.resolve(0x05).sfr)
	selectBank(r, 3)
	assert.Equal(t, cellUnimplemented, r.resolve(0x05).kind)
}

func TestGPRBankingIsDisjointOutsideCommonWindow(t *testing.T) {
	r := New()
	selectBank(r, 0)
	require0 := r.resolve(0x20)
	selectBank(r, 1)
	require1 := r.resolve(0x20)
	assert.Equal(t, cellGPR, require0.kind)
	assert.Equal(t, cellGPR, require1.kind)
	assert.NotEqual(t, require0.idx, require1.idx)
}

func TestUnimplementedReadIsZeroAndNonFatal(t *testing.T) {
	r := New()
	assert.Equal(t, byte(0), r.Read(0x07))
}

func TestUnimplementedWriteIsFatal(t *testing.T) {
	r := New()
	err := r.Write(0x07, 0xFF)
	assert.ErrorIs(t, err, ErrUnimplementedWrite)
}

func TestReservedWriteIsFatal(t *testing.T) {
	r := New()
	selectBank(r, 3)
	err := r.Write(0x0E, 0xFF)
	assert.ErrorIs(t, err, ErrReservedWrite)
}

func TestModifyRoundTrips(t *testing.T) {
	r := New()
	assert.NoError(t, r.Write(0x20, 0x05))
	assert.NoError(t, r.Modify(0x20, func(v byte) byte { return v + 1 }))
	assert.Equal(t, byte(0x06), r.Read(0x20))
}
