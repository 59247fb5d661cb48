// Package reg implements the PIC16F88's banked register file: the 49
// special-function registers plus STATUS, the 368 general-purpose
// registers, the common-access window at 0x70-0x7F, and the bank-resolved
// addressing that ties them together. Grounded on
// original_source/crates/stk_pic_vm/src/vm/mod.rs's reg submodule
// (special_registers!/register_map! macros), adapted from Go struct fields
// and a lookup table instead of Rust macro-generated code.
package reg

import (
	"errors"
	"fmt"
	"log"
)

// numGPR is the count of general-purpose registers across all four banks,
// including the 16 common-access cells (indices 80-95) that every bank's
// 0x70-0x7F window aliases to.
const numGPR = 368

// NumGPR is the exported form of numGPR, for callers (snapshots, tests)
// that need to size an array without reaching into package internals.
const NumGPR = numGPR

var (
	// ErrUnimplementedWrite is returned when firmware writes an
	// unimplemented cell. Reads are not fatal (see Read); only writes are.
	ErrUnimplementedWrite = errors.New("write to unimplemented register")
	// ErrReservedWrite is returned when firmware writes a reserved cell.
	ErrReservedWrite = errors.New("write to reserved register")
	// ErrIndirectUnsupported is returned for a write to INDF (0x00):
	// indirect addressing via FSR is out of scope for this core. A read of
	// INDF returns 0 with a warning, like an unimplemented cell.
	ErrIndirectUnsupported = errors.New("indirect addressing (INDF) is not implemented")
)

// Registers is the whole banked register file. It owns STATUS because bank
// resolution for every other access reads STATUS<6:5> first; keeping it
// here (rather than behind a separate handle the engine also holds) avoids
// the aliasing problem spec's design notes warn about.
type Registers struct {
	status Status
	sfr    [numSFR]byte
	gpr    [numGPR]byte

	warned map[byte]bool // addresses already logged as unimplemented reads
}

// New returns a register file in its post-reset state: STATUS = 0x18
// (TO=1, PD=1), every SFR at its documented init value, every GPR at 0.
func New() *Registers {
	r := &Registers{
		status: Status(initStatus),
		warned: make(map[byte]bool),
	}
	for id, def := range sfrDefs {
		r.sfr[id] = def.init
	}
	return r
}

// Status returns the current STATUS value.
func (r *Registers) Status() Status { return r.status }

// SetStatus overwrites STATUS wholesale; all 8 bits are defined, so any
// pattern is legal.
func (r *Registers) SetStatus(s Status) { r.status = s }

func (r *Registers) resolve(f byte) cellRef {
	bank := r.status.Bank()
	return addressTable[f&0x7F][bank]
}

// Read returns the 8-bit value at file address f, resolved through the
// current bank. Reads never fail: unimplemented and reserved cells read as
// 0 (the former logs a warning, once per address).
func (r *Registers) Read(f byte) byte {
	ref := r.resolve(f)
	switch ref.kind {
	case cellStatus:
		return r.status.Byte()
	case cellSFR:
		return r.sfr[ref.sfr]
	case cellGPR:
		return r.gpr[ref.idx]
	case cellUnimplemented, cellIndirect:
		if !r.warned[f] {
			log.Printf("reg: read of unimplemented register 0x%02x (bank %d)", f, r.status.Bank())
			r.warned[f] = true
		}
		return 0
	case cellReserved:
		return 0
	default:
		return 0
	}
}

// Write stores v at file address f, resolved through the current bank. It
// returns an error for unimplemented/reserved/indirect cells; all other
// writes always succeed.
func (r *Registers) Write(f byte, v byte) error {
	ref := r.resolve(f)
	switch ref.kind {
	case cellStatus:
		r.status = Status(v)
	case cellSFR:
		r.sfr[ref.sfr] = v
	case cellGPR:
		r.gpr[ref.idx] = v
	case cellUnimplemented:
		return fmt.Errorf("%w: 0x%02x", ErrUnimplementedWrite, f)
	case cellIndirect:
		return fmt.Errorf("%w: 0x%02x", ErrIndirectUnsupported, f)
	case cellReserved:
		return fmt.Errorf("%w: 0x%02x", ErrReservedWrite, f)
	}
	return nil
}

// Modify performs a read-modify-write of file address f, applying fn to the
// current value. Used by the bit-oriented set/clear instructions (bsf/bcf).
func (r *Registers) Modify(f byte, fn func(byte) byte) error {
	return r.Write(f, fn(r.Read(f)))
}

// sfrGet/sfrSet are the shared plumbing behind the named per-SFR accessors
// below; they bypass bank resolution since every named accessor already
// knows which SFR it wants.
func (r *Registers) sfrGet(id sfrID) byte     { return r.sfr[id] }
func (r *Registers) sfrSet(id sfrID, v byte)  { r.sfr[id] = v }

func (r *Registers) PCL() byte        { return r.sfrGet(idPCL) }
func (r *Registers) SetPCL(v byte)    { r.sfrSet(idPCL, v) }
func (r *Registers) PCLATH() byte     { return r.sfrGet(idPCLATH) }
func (r *Registers) SetPCLATH(v byte) { r.sfrSet(idPCLATH, v) }
func (r *Registers) PORTA() byte      { return r.sfrGet(idPORTA) }
func (r *Registers) SetPORTA(v byte)  { r.sfrSet(idPORTA, v) }
func (r *Registers) PORTB() byte      { return r.sfrGet(idPORTB) }
func (r *Registers) SetPORTB(v byte)  { r.sfrSet(idPORTB, v) }

func (r *Registers) TMR0() byte          { return r.sfrGet(idTMR0) }
func (r *Registers) SetTMR0(v byte)      { r.sfrSet(idTMR0, v) }
func (r *Registers) FSR() byte           { return r.sfrGet(idFSR) }
func (r *Registers) SetFSR(v byte)       { r.sfrSet(idFSR, v) }
func (r *Registers) INTCON() byte        { return r.sfrGet(idINTCON) }
func (r *Registers) SetINTCON(v byte)    { r.sfrSet(idINTCON, v) }
func (r *Registers) PIR1() byte          { return r.sfrGet(idPIR1) }
func (r *Registers) SetPIR1(v byte)      { r.sfrSet(idPIR1, v) }
func (r *Registers) PIR2() byte          { return r.sfrGet(idPIR2) }
func (r *Registers) SetPIR2(v byte)      { r.sfrSet(idPIR2, v) }
func (r *Registers) TMR1L() byte         { return r.sfrGet(idTMR1L) }
func (r *Registers) SetTMR1L(v byte)     { r.sfrSet(idTMR1L, v) }
func (r *Registers) TMR1H() byte         { return r.sfrGet(idTMR1H) }
func (r *Registers) SetTMR1H(v byte)     { r.sfrSet(idTMR1H, v) }
func (r *Registers) T1CON() byte         { return r.sfrGet(idT1CON) }
func (r *Registers) SetT1CON(v byte)     { r.sfrSet(idT1CON, v) }
func (r *Registers) TMR2() byte          { return r.sfrGet(idTMR2) }
func (r *Registers) SetTMR2(v byte)      { r.sfrSet(idTMR2, v) }
func (r *Registers) T2CON() byte         { return r.sfrGet(idT2CON) }
func (r *Registers) SetT2CON(v byte)     { r.sfrSet(idT2CON, v) }
func (r *Registers) SSPBUF() byte        { return r.sfrGet(idSSPBUF) }
func (r *Registers) SetSSPBUF(v byte)    { r.sfrSet(idSSPBUF, v) }
func (r *Registers) SSPCON() byte        { return r.sfrGet(idSSPCON) }
func (r *Registers) SetSSPCON(v byte)    { r.sfrSet(idSSPCON, v) }
func (r *Registers) CCPR1L() byte        { return r.sfrGet(idCCPR1L) }
func (r *Registers) SetCCPR1L(v byte)    { r.sfrSet(idCCPR1L, v) }
func (r *Registers) CCPR1H() byte        { return r.sfrGet(idCCPR1H) }
func (r *Registers) SetCCPR1H(v byte)    { r.sfrSet(idCCPR1H, v) }
func (r *Registers) CCP1CON() byte       { return r.sfrGet(idCCP1CON) }
func (r *Registers) SetCCP1CON(v byte)   { r.sfrSet(idCCP1CON, v) }
func (r *Registers) RCSTA() byte         { return r.sfrGet(idRCSTA) }
func (r *Registers) SetRCSTA(v byte)     { r.sfrSet(idRCSTA, v) }
func (r *Registers) TXREG() byte         { return r.sfrGet(idTXREG) }
func (r *Registers) SetTXREG(v byte)     { r.sfrSet(idTXREG, v) }
func (r *Registers) RCREG() byte         { return r.sfrGet(idRCREG) }
func (r *Registers) SetRCREG(v byte)     { r.sfrSet(idRCREG, v) }
func (r *Registers) ADRESH() byte        { return r.sfrGet(idADRESH) }
func (r *Registers) SetADRESH(v byte)    { r.sfrSet(idADRESH, v) }
func (r *Registers) ADCON0() byte        { return r.sfrGet(idADCON0) }
func (r *Registers) SetADCON0(v byte)    { r.sfrSet(idADCON0, v) }
func (r *Registers) OptionReg() byte     { return r.sfrGet(idOPTIONREG) }
func (r *Registers) SetOptionReg(v byte) { r.sfrSet(idOPTIONREG, v) }
func (r *Registers) TRISA() byte         { return r.sfrGet(idTRISA) }
func (r *Registers) SetTRISA(v byte)     { r.sfrSet(idTRISA, v) }
func (r *Registers) TRISB() byte         { return r.sfrGet(idTRISB) }
func (r *Registers) SetTRISB(v byte)     { r.sfrSet(idTRISB, v) }
func (r *Registers) PIE1() byte          { return r.sfrGet(idPIE1) }
func (r *Registers) SetPIE1(v byte)      { r.sfrSet(idPIE1, v) }
func (r *Registers) PIE2() byte          { return r.sfrGet(idPIE2) }
func (r *Registers) SetPIE2(v byte)      { r.sfrSet(idPIE2, v) }
func (r *Registers) PCON() byte          { return r.sfrGet(idPCON) }
func (r *Registers) SetPCON(v byte)      { r.sfrSet(idPCON, v) }
func (r *Registers) OSCCON() byte        { return r.sfrGet(idOSCCON) }
func (r *Registers) SetOSCCON(v byte)    { r.sfrSet(idOSCCON, v) }
func (r *Registers) OSCTUNE() byte       { return r.sfrGet(idOSCTUNE) }
func (r *Registers) SetOSCTUNE(v byte)   { r.sfrSet(idOSCTUNE, v) }
func (r *Registers) PR2() byte           { return r.sfrGet(idPR2) }
func (r *Registers) SetPR2(v byte)       { r.sfrSet(idPR2, v) }
func (r *Registers) SSPADD() byte        { return r.sfrGet(idSSPADD) }
func (r *Registers) SetSSPADD(v byte)    { r.sfrSet(idSSPADD, v) }
func (r *Registers) SSPSTAT() byte       { return r.sfrGet(idSSPSTAT) }
func (r *Registers) SetSSPSTAT(v byte)   { r.sfrSet(idSSPSTAT, v) }
func (r *Registers) TXSTA() byte         { return r.sfrGet(idTXSTA) }
func (r *Registers) SetTXSTA(v byte)     { r.sfrSet(idTXSTA, v) }
func (r *Registers) SPBRG() byte         { return r.sfrGet(idSPBRG) }
func (r *Registers) SetSPBRG(v byte)     { r.sfrSet(idSPBRG, v) }
func (r *Registers) ANSEL() byte         { return r.sfrGet(idANSEL) }
func (r *Registers) SetANSEL(v byte)     { r.sfrSet(idANSEL, v) }
func (r *Registers) CMCON() byte         { return r.sfrGet(idCMCON) }
func (r *Registers) SetCMCON(v byte)     { r.sfrSet(idCMCON, v) }
func (r *Registers) CVRCON() byte        { return r.sfrGet(idCVRCON) }
func (r *Registers) SetCVRCON(v byte)    { r.sfrSet(idCVRCON, v) }
func (r *Registers) WDTCON() byte        { return r.sfrGet(idWDTCON) }
func (r *Registers) SetWDTCON(v byte)    { r.sfrSet(idWDTCON, v) }
func (r *Registers) ADRESL() byte        { return r.sfrGet(idADRESL) }
func (r *Registers) SetADRESL(v byte)    { r.sfrSet(idADRESL, v) }
func (r *Registers) ADCON1() byte        { return r.sfrGet(idADCON1) }
func (r *Registers) SetADCON1(v byte)    { r.sfrSet(idADCON1, v) }
func (r *Registers) EEDATA() byte        { return r.sfrGet(idEEDATA) }
func (r *Registers) SetEEDATA(v byte)    { r.sfrSet(idEEDATA, v) }
func (r *Registers) EEADR() byte         { return r.sfrGet(idEEADR) }
func (r *Registers) SetEEADR(v byte)     { r.sfrSet(idEEADR, v) }
func (r *Registers) EEDATH() byte        { return r.sfrGet(idEEDATH) }
func (r *Registers) SetEEDATH(v byte)    { r.sfrSet(idEEDATH, v) }
func (r *Registers) EEADRH() byte        { return r.sfrGet(idEEADRH) }
func (r *Registers) SetEEADRH(v byte)    { r.sfrSet(idEEADRH, v) }
func (r *Registers) EECON1() byte        { return r.sfrGet(idEECON1) }
func (r *Registers) SetEECON1(v byte)    { r.sfrSet(idEECON1, v) }
func (r *Registers) EECON2() byte        { return r.sfrGet(idEECON2) }
func (r *Registers) SetEECON2(v byte)    { r.sfrSet(idEECON2, v) }

// GPR returns the raw general-purpose register array, for snapshotting
// (Ticker observers want the whole register-file view, not just named
// accessors).
func (r *Registers) GPR() [numGPR]byte { return r.gpr }

// SFRName returns the name of the SFR a file address currently resolves to,
// or "" if it resolves to a GPR or a stub cell.
func (r *Registers) SFRName(f byte) string {
	ref := r.resolve(f)
	if ref.kind == cellSFR {
		return sfrDefs[ref.sfr].name
	}
	if ref.kind == cellStatus {
		return "STATUS"
	}
	return ""
}
