package reg

// sfrID identifies one of the 49 non-STATUS special-function registers.
// STATUS is handled separately (see status.go) since it is addressed via
// named flag accessors rather than plain read/write.
type sfrID int

const (
	idTMR0 sfrID = iota
	idPCL
	idFSR
	idPORTA
	idPORTB
	idPCLATH
	idINTCON
	idPIR1
	idPIR2
	idTMR1L
	idTMR1H
	idT1CON
	idTMR2
	idT2CON
	idSSPBUF
	idSSPCON
	idCCPR1L
	idCCPR1H
	idCCP1CON
	idRCSTA
	idTXREG
	idRCREG
	idADRESH
	idADCON0
	idOPTIONREG
	idTRISA
	idTRISB
	idPIE1
	idPIE2
	idPCON
	idOSCCON
	idOSCTUNE
	idPR2
	idSSPADD
	idSSPSTAT
	idTXSTA
	idSPBRG
	idANSEL
	idCMCON
	idCVRCON
	idWDTCON
	idADRESL
	idADCON1
	idEEDATA
	idEEADR
	idEEDATH
	idEEADRH
	idEECON1
	idEECON2

	numSFR
)

// sfrDef is the compile-time-constant part of an SFR: its name (for
// diagnostics), reset value, and the two masks spec.md's register file
// section calls for. Neither mask is enforced on write: they are
// descriptive metadata, not gates, and no bit is rejected on write.
type sfrDef struct {
	name        string
	init        byte
	unimplMask  byte
	unknownMask byte
}

// sfrDefs is indexed by sfrID. Values transcribed from
// original_source/crates/stk_pic_vm/src/vm/mod.rs's special_registers!
// table (which is itself transcribed from the PIC16F88 datasheet's
// register summary).
var sfrDefs = [numSFR]sfrDef{
	idTMR0:      {"TMR0", 0x00, 0x00, 0xFF},
	idPCL:       {"PCL", 0x00, 0x00, 0x00},
	idFSR:       {"FSR", 0x00, 0x00, 0xFF},
	idPORTA:     {"PORTA", 0x00, 0x00, 0xE0},
	idPORTB:     {"PORTB", 0x00, 0x00, 0x3F},
	idPCLATH:    {"PCLATH", 0x00, 0xE0, 0x00},
	idINTCON:    {"INTCON", 0x00, 0x00, 0x01},
	idPIR1:      {"PIR1", 0x00, 0x80, 0x00},
	idPIR2:      {"PIR2", 0x00, 0x2F, 0x00},
	idTMR1L:     {"TMR1L", 0x00, 0x00, 0xFF},
	idTMR1H:     {"TMR1H", 0x00, 0x00, 0xFF},
	idT1CON:     {"T1CON", 0x00, 0x80, 0x00},
	idTMR2:      {"TMR2", 0x00, 0x00, 0x00},
	idT2CON:     {"T2CON", 0x00, 0x80, 0x00},
	idSSPBUF:    {"SSPBUF", 0x00, 0x00, 0xFF},
	idSSPCON:    {"SSPCON", 0x00, 0x00, 0x00},
	idCCPR1L:    {"CCPR1L", 0x00, 0x00, 0xFF},
	idCCPR1H:    {"CCPR1H", 0x00, 0x00, 0xFF},
	idCCP1CON:   {"CCP1CON", 0x00, 0xC0, 0x00},
	idRCSTA:     {"RCSTA", 0x00, 0x00, 0x01},
	idTXREG:     {"TXREG", 0x00, 0x00, 0x00},
	idRCREG:     {"RCREG", 0x00, 0x00, 0x00},
	idADRESH:    {"ADRESH", 0x00, 0x00, 0xFF},
	idADCON0:    {"ADCON0", 0x00, 0x02, 0x00},
	idOPTIONREG: {"OPTION_REG", 0xFF, 0x00, 0x00},
	idTRISA:     {"TRISA", 0xFF, 0x00, 0x00},
	idTRISB:     {"TRISB", 0xFF, 0x00, 0x00},
	idPIE1:      {"PIE1", 0x00, 0x80, 0x00},
	idPIE2:      {"PIE2", 0x00, 0x2F, 0x00},
	idPCON:      {"PCON", 0x00, 0xFC, 0x00},
	idOSCCON:    {"OSCCON", 0x00, 0x80, 0x00},
	idOSCTUNE:   {"OSCTUNE", 0x00, 0xC0, 0x00},
	idPR2:       {"PR2", 0xFF, 0x00, 0x00},
	idSSPADD:    {"SSPADD", 0x00, 0x00, 0x00},
	idSSPSTAT:   {"SSPSTAT", 0x00, 0x00, 0x00},
	idTXSTA:     {"TXSTA", 0x02, 0x08, 0x00},
	idSPBRG:     {"SPBRG", 0x00, 0x00, 0x00},
	idANSEL:     {"ANSEL", 0x7F, 0x80, 0x00},
	idCMCON:     {"CMCON", 0x07, 0x00, 0x00},
	idCVRCON:    {"CVRCON", 0x00, 0x10, 0x00},
	idWDTCON:    {"WDTCON", 0x08, 0xE0, 0x00},
	idADRESL:    {"ADRESL", 0x00, 0x00, 0xFF},
	idADCON1:    {"ADCON1", 0x00, 0x0F, 0x00},
	idEEDATA:    {"EEDATA", 0x00, 0x00, 0xFF},
	idEEADR:     {"EEADR", 0x00, 0x00, 0xFF},
	idEEDATH:    {"EEDATH", 0x00, 0xC0, 0x3F},
	idEEADRH:    {"EEADRH", 0x00, 0xF8, 0x07},
	idEECON1:    {"EECON1", 0x00, 0x60, 0x98},
	idEECON2:    {"EECON2", 0x00, 0xFF, 0x00},
}
